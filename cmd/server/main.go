package main

import (
	"fmt"

	"github.com/MKhiriev/go-parking-mate/internal/adapter"
	"github.com/MKhiriev/go-parking-mate/internal/authz"
	"github.com/MKhiriev/go-parking-mate/internal/config"
	"github.com/MKhiriev/go-parking-mate/internal/handler"
	"github.com/MKhiriev/go-parking-mate/internal/logger"
	"github.com/MKhiriev/go-parking-mate/internal/server"
	"github.com/MKhiriev/go-parking-mate/internal/service"
	"github.com/MKhiriev/go-parking-mate/internal/store"
	"github.com/MKhiriev/go-parking-mate/internal/workers"
	"github.com/MKhiriev/go-parking-mate/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("parking-mate-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	var scoring adapter.ScoringAdapter
	if cfg.Adapter.ScoringAddress != "" {
		scoring, err = adapter.NewHTTPScoringAdapter(cfg.Adapter, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating scoring adapter")
		}
	} else {
		log.Warn().Msg("scoring address is not set, score refresh is disabled")
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(storages, scoring, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	enforcer, err := authz.NewEnforcer(cfg.App.AdminEmails)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating access enforcer")
	}

	handlers, err := handler.NewHandlers(services, enforcer, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	bgWorkers := workers.NewWorkers(services, cfg.Workers, log)

	srv, err := server.NewServer(handlers, bgWorkers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
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
