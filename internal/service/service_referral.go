package service

import (
	"context"
	"strconv"

	"github.com/MKhiriev/xbanking-gateway/internal/logger"
	"github.com/MKhiriev/xbanking-gateway/models"
)

const (
	referralCodePrefix = "XBANK_"
	referralLinkPrefix = "https://t.me/xbanking_bot?start=ref_"

	msgReferralDisabled = "Реферальная система временно отключена"
)

// referralService serves a fixed, non-persisted referral payload while the
// referral program is switched off.
type referralService struct {
	logger *logger.Logger
}

func NewReferralService(logger *logger.Logger) ReferralService {
	return &referralService{logger: logger}
}

func (r *referralService) GetReferralInfo(ctx context.Context, userID int64) models.ReferralInfo {
	id := strconv.FormatInt(userID, 10)

	return models.ReferralInfo{
		Success:        true,
		ReferralCode:   referralCodePrefix + id,
		ReferralLink:   referralLinkPrefix + id,
		TotalReferrals: 0,
		ReferralBonus:  "0.00",
		IsActive:       false,
		Message:        msgReferralDisabled,
	}
}
