package main

import (
	"fmt"

	"github.com/MKhiriev/go-parking-mate/internal/adapter"
	"github.com/MKhiriev/go-parking-mate/internal/client"
	"github.com/MKhiriev/go-parking-mate/internal/config"
	"github.com/MKhiriev/go-parking-mate/internal/logger"
	"github.com/MKhiriev/go-parking-mate/internal/tui"
	"github.com/MKhiriev/go-parking-mate/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("parking-mate-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	api, err := adapter.NewHTTPAPIAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create api adapter")
	}

	ui, err := tui.New(api, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(api, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
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
