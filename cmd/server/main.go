package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/xbanking-gateway/internal/adapter"
	"github.com/MKhiriev/xbanking-gateway/internal/config"
	"github.com/MKhiriev/xbanking-gateway/internal/handler"
	"github.com/MKhiriev/xbanking-gateway/internal/logger"
	"github.com/MKhiriev/xbanking-gateway/internal/server"
	"github.com/MKhiriev/xbanking-gateway/internal/service"
	"github.com/MKhiriev/xbanking-gateway/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("xbanking-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err := logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	// the Telegram section holds the bot token and is never logged
	log.Debug().
		Any("app", cfg.App).
		Any("server", cfg.Server).
		Any("adapter", cfg.Adapter).
		Msg("received configs")

	marketAdapter, err := adapter.NewMarketAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating market adapter")
	}

	services, err := service.NewServices(marketAdapter, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err := srv.RunServer(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("error running server")
	}
}
