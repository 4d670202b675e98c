// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// placeholderBotToken is the well-known token of example deployments.
// Accepting it would let anyone forge init data.
const placeholderBotToken = "YOUR_BOT_TOKEN"

func (cfg *StructuredConfig) validateTelegramToken() error {
	if cfg.Telegram.BotToken == "" {
		return fmt.Errorf("%w: bot token is not set", ErrInvalidTelegramConfigs)
	}
	if cfg.Telegram.BotToken == placeholderBotToken {
		return fmt.Errorf("%w: bot token is a placeholder", ErrInvalidTelegramConfigs)
	}

	return nil
}

// validateServer checks the settings the API server cannot start without.
func (cfg *StructuredConfig) validateServer() error {
	if err := cfg.validateTelegramToken(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.ShutdownTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	u, err := url.Parse(cfg.Adapter.MarketBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: market base url must include scheme and host", ErrInvalidAdapterConfigs)
	}

	return nil
}

// validateBot checks the settings the Telegram bot cannot start without.
// Telegram opens web apps over HTTPS only.
func (cfg *StructuredConfig) validateBot() error {
	if err := cfg.validateTelegramToken(); err != nil {
		return err
	}

	u, err := url.Parse(cfg.Telegram.WebAppURL)
	if err != nil || u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("%w: web app url must be an https url", ErrInvalidTelegramConfigs)
	}

	if cfg.Telegram.PollTimeout < 0 {
		return fmt.Errorf("%w: negative poll timeout", ErrInvalidTelegramConfigs)
	}

	return nil
}
