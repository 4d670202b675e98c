package service

import (
	"context"

	"github.com/MKhiriev/xbanking-gateway/internal/logger"
	"github.com/MKhiriev/xbanking-gateway/models"
)

const msgWithdrawDisabled = "Вывод средств временно отключен"

// withdrawService declines every request while withdrawals are switched off.
type withdrawService struct {
	logger *logger.Logger
}

func NewWithdrawService(logger *logger.Logger) WithdrawService {
	return &withdrawService{logger: logger}
}

func (w *withdrawService) RequestWithdraw(ctx context.Context) models.WithdrawResponse {
	logger.FromContext(ctx).Info().Msg("withdraw requested while withdrawals are disabled")

	return models.WithdrawResponse{
		Success: false,
		Message: msgWithdrawDisabled,
	}
}
