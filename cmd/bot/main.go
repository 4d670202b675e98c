package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/xbanking-gateway/internal/bot"
	"github.com/MKhiriev/xbanking-gateway/internal/config"
	"github.com/MKhiriev/xbanking-gateway/internal/logger"
	"github.com/MKhiriev/xbanking-gateway/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("xbanking-bot")
	cfg, err := config.GetBotConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err := logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	if err := tgbotapi.SetLogger(log); err != nil {
		log.Fatal().Err(err).Msg("error setting telegram client logger")
	}

	api, err := tgbotapi.NewBotAPI(cfg.Telegram.BotToken)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to telegram")
	}
	api.Debug = cfg.Telegram.Debug
	log.Info().Str("username", api.Self.UserName).Msg("authorized on telegram")

	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := bot.New(api, cfg.Telegram, log).Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("error running bot")
	}
}
