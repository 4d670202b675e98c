package service

import (
	"fmt"

	"github.com/MKhiriev/xbanking-gateway/internal/adapter"
	"github.com/MKhiriev/xbanking-gateway/internal/config"
	"github.com/MKhiriev/xbanking-gateway/internal/initdata"
	"github.com/MKhiriev/xbanking-gateway/internal/logger"
)

type Services struct {
	AuthService     AuthService
	MarketService   MarketService
	ReferralService ReferralService
	WithdrawService WithdrawService
	AppInfoService  AppInfoService
}

func NewServices(marketAdapter adapter.MarketAdapter, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	var opts []initdata.Option
	if cfg.Telegram.DecodeInitData {
		opts = append(opts, initdata.WithValueDecoding())
	}

	verifier, err := initdata.NewVerifier(cfg.Telegram.BotToken, opts...)
	if err != nil {
		return nil, fmt.Errorf("error creating init data verifier: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:     NewAuthService(verifier, logger),
		MarketService:   NewMarketService(marketAdapter, logger),
		ReferralService: NewReferralService(logger),
		WithdrawService: NewWithdrawService(logger),
		AppInfoService:  appInfoService,
	}, nil
}
