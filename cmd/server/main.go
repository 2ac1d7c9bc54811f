package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/Luisfetoga2/Tyba-Backend-Engineer/internal/adapter"
	"github.com/Luisfetoga2/Tyba-Backend-Engineer/internal/config"
	httphandler "github.com/Luisfetoga2/Tyba-Backend-Engineer/internal/handler/http"
	"github.com/Luisfetoga2/Tyba-Backend-Engineer/internal/logger"
	"github.com/Luisfetoga2/Tyba-Backend-Engineer/internal/server"
	"github.com/Luisfetoga2/Tyba-Backend-Engineer/internal/service"
	"github.com/Luisfetoga2/Tyba-Backend-Engineer/internal/store"
	"github.com/Luisfetoga2/Tyba-Backend-Engineer/internal/workers"
	"github.com/Luisfetoga2/Tyba-Backend-Engineer/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("tyba-backend")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	storages := store.NewStorages(db, log)
	geo := adapter.NewGeoAPIClient(cfg.Adapter)
	services := service.NewServices(storages, geo, cfg.App, log)
	handler := httphandler.NewHandler(services, log)

	workers.NewWorkers(storages.TokenBlacklist, cfg.Workers, log).Run(ctx)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
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
