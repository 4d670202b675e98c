// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by validateServer and validateBot when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidTelegramConfigs indicates a missing or placeholder bot token,
	// or an unusable mini app URL.
	ErrInvalidTelegramConfigs = errors.New("invalid telegram configuration")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, missing address or non-positive timeouts).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid upstream client settings
	// (for example, a base URL without scheme or host).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
