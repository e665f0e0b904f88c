package http

import (
	"github.com/voddeck/voddeck/internal/config"
	"github.com/voddeck/voddeck/internal/logger"
	"github.com/voddeck/voddeck/internal/metrics"
	"github.com/voddeck/voddeck/internal/service"
	"github.com/voddeck/voddeck/internal/store"
)

// Handler carries the dependencies shared by all HTTP handlers and
// middleware: the business services, the metrics collector updated on every
// request, the database handle for health pings, and the cookie policy
// derived from configuration.
type Handler struct {
	services  *service.Services
	collector *metrics.Collector
	db        store.Pinger

	// secureCookies mirrors config.App.SecureCookies: the Secure attribute
	// is set on session cookies only for TLS deployments.
	secureCookies bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, collector *metrics.Collector, db store.Pinger, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		collector:     collector,
		db:            db,
		secureCookies: cfg.SecureCookies,
		logger:        logger,
	}
}
