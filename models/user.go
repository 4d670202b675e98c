// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strconv"

// User is the normalized view of an authenticated Telegram mini app user that
// is returned to the web front end.
type User struct {
	// ID is the Telegram user identifier.
	ID int64 `json:"id"`

	// Username is the Telegram username, or "user_<id>" when the client
	// did not send one.
	Username string `json:"username"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	PhotoURL  string `json:"photo_url"`
	IsPremium bool   `json:"is_premium"`
}

// FallbackUsername returns the deterministic display name used for users
// without a Telegram username.
func FallbackUsername(id int64) string {
	return "user_" + strconv.FormatInt(id, 10)
}

// NewUser normalizes a decoded Telegram user record.
func NewUser(tu TelegramUser) User {
	username := tu.Username
	if username == "" {
		username = FallbackUsername(tu.ID)
	}

	return User{
		ID:        tu.ID,
		Username:  username,
		FirstName: tu.FirstName,
		LastName:  tu.LastName,
		PhotoURL:  tu.PhotoURL,
		IsPremium: tu.IsPremium,
	}
}
