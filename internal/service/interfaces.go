// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the application services behind the HTTP handlers:
// Telegram user authentication, the marketplace passthrough, the referral
// and withdraw placeholders and the application info.
package service

import (
	"context"

	"github.com/MKhiriev/xbanking-gateway/models"
)

// AuthService authenticates mini app users by their signed init data.
type AuthService interface {
	// GetUser verifies initData and returns the normalized user it carries.
	// Any verification failure, and a payload without a user identity, is
	// reported as ErrInvalidTelegramData.
	GetUser(ctx context.Context, initData string) (models.User, error)
}

// MarketService validates marketplace queries and forwards them upstream.
// Every method returns the upstream status and body unmodified.
type MarketService interface {
	GetConfig(ctx context.Context) (models.UpstreamResponse, error)
	GetWalletBalance(ctx context.Context) (models.UpstreamResponse, error)
	ListNFTs(ctx context.Context, query models.NFTListQuery) (models.UpstreamResponse, error)
	SearchNFTs(ctx context.Context, query models.NFTSearchQuery) (models.UpstreamResponse, error)
	GetBackdrops(ctx context.Context) (models.UpstreamResponse, error)
	GetUserNFTs(ctx context.Context) (models.UpstreamResponse, error)
}

// ReferralService reports the referral program state of a user.
type ReferralService interface {
	GetReferralInfo(ctx context.Context, userID int64) models.ReferralInfo
}

// WithdrawService accepts withdraw requests.
type WithdrawService interface {
	RequestWithdraw(ctx context.Context) models.WithdrawResponse
}

// AppInfoService reports the application version and health.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetHealth(ctx context.Context) models.HealthStatus
}
