// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// UserResponse is the success envelope of GET /api/user.
type UserResponse struct {
	Success bool `json:"success"`
	User    User `json:"user"`
}

// ErrorResponse is the JSON body written for every failed request.
// Detail is a short human-readable message and never carries secrets.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ReferralInfo is the referral summary returned for a user. The referral
// programme is disabled, so the values are static placeholders.
type ReferralInfo struct {
	Success        bool   `json:"success"`
	ReferralCode   string `json:"referral_code"`
	ReferralLink   string `json:"referral_link"`
	TotalReferrals int    `json:"total_referrals"`
	ReferralBonus  string `json:"referral_bonus"`
	IsActive       bool   `json:"is_active"`
	Message        string `json:"message"`
}

// WithdrawResponse is the answer to a withdrawal request.
type WithdrawResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// HealthStatus is returned by GET /health.
type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
}
