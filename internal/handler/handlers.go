package handler

import (
	"github.com/MKhiriev/xbanking-gateway/internal/config"
	"github.com/MKhiriev/xbanking-gateway/internal/handler/http"
	"github.com/MKhiriev/xbanking-gateway/internal/logger"
	"github.com/MKhiriev/xbanking-gateway/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger,
			http.WithIndexFile(cfg.App.IndexFile),
			http.WithAllowedOrigins(cfg.Server.AllowedOrigins...),
		),
	}, nil
}
