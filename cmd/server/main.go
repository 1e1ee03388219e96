package main

import (
	"context"
	"fmt"

	"github.com/gremahtech/agri-auth/internal/adapter"
	"github.com/gremahtech/agri-auth/internal/config"
	"github.com/gremahtech/agri-auth/internal/handler"
	"github.com/gremahtech/agri-auth/internal/logger"
	"github.com/gremahtech/agri-auth/internal/server"
	"github.com/gremahtech/agri-auth/internal/service"
	"github.com/gremahtech/agri-auth/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("agri-auth")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running database migrations")
	}

	repositories := store.NewRepositories(db, log)

	profileAdapter := adapter.NewHTTPProfileAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Profile.Address,
		Timeout: cfg.Profile.Timeout,
	})

	services := service.NewServices(repositories, profileAdapter, *cfg, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
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
