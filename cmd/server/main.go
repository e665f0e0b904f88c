package main

import (
	"context"
	"fmt"

	"github.com/voddeck/voddeck/internal/adapter"
	"github.com/voddeck/voddeck/internal/config"
	myHTTP "github.com/voddeck/voddeck/internal/handler/http"
	"github.com/voddeck/voddeck/internal/logger"
	"github.com/voddeck/voddeck/internal/metrics"
	"github.com/voddeck/voddeck/internal/server"
	"github.com/voddeck/voddeck/internal/service"
	"github.com/voddeck/voddeck/internal/store"
	"github.com/voddeck/voddeck/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("voddeck-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	catalogClient := adapter.NewTMDBClient(cfg.Adapter, log)
	collector := metrics.NewCollector()

	services := service.NewServices(storages, catalogClient, cfg, collector, log)
	handler := myHTTP.NewHandler(services, collector, db, cfg.App, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
