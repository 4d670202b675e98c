// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TelegramUser is the user record embedded in the `user` field of Telegram
// mini app init data. Fields that the client did not send stay at their zero
// value.
type TelegramUser struct {
	// ID is the Telegram user identifier. Zero means the record carried no
	// identity (absent field or a degraded record).
	ID int64 `json:"id"`

	// IsBot reports whether the user is a bot account.
	IsBot bool `json:"is_bot,omitempty"`

	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Username  string `json:"username,omitempty"`

	// LanguageCode is the IETF language tag of the user's client.
	LanguageCode string `json:"language_code,omitempty"`

	IsPremium       bool `json:"is_premium,omitempty"`
	AllowsWriteToPM bool `json:"allows_write_to_pm,omitempty"`

	// PhotoURL references the user's avatar, when the client shares it.
	PhotoURL string `json:"photo_url,omitempty"`
}
