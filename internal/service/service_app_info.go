package service

import (
	"context"
	"time"

	"github.com/MKhiriev/xbanking-gateway/internal/config"
	"github.com/MKhiriev/xbanking-gateway/internal/logger"
	"github.com/MKhiriev/xbanking-gateway/models"
)

const healthStatusOK = "ok"

type appInfoService struct {
	appVersion  string
	serviceName string

	now func() time.Time

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion:  cfg.Version,
		serviceName: cfg.ServiceName,
		now:         time.Now,
		logger:      logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetHealth(ctx context.Context) models.HealthStatus {
	return models.HealthStatus{
		Status:    healthStatusOK,
		Timestamp: s.now().UTC(),
		Service:   s.serviceName,
		Version:   s.appVersion,
	}
}
