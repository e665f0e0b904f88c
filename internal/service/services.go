package service

import (
	"github.com/voddeck/voddeck/internal/adapter"
	"github.com/voddeck/voddeck/internal/config"
	"github.com/voddeck/voddeck/internal/logger"
	"github.com/voddeck/voddeck/internal/metrics"
	"github.com/voddeck/voddeck/internal/store"
)

type Services struct {
	AuthService    AuthService
	CatalogService CatalogService
}

func NewServices(storages *store.Storages, catalogClient adapter.CatalogClient, cfg *config.StructuredConfig, collector *metrics.Collector, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		CatalogService: NewCatalogService(catalogClient, collector, logger),
	}
}
