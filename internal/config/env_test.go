// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var knownEnvVars = []string{
	"CONFIG", "PORT", dotEnvPathVar,
	"APP_VERSION", "APP_SERVICE_NAME", "APP_INDEX_FILE", "APP_LOG_LEVEL",
	"TELEGRAM_BOT_TOKEN", "TELEGRAM_WEB_APP_URL", "TELEGRAM_POLL_TIMEOUT",
	"TELEGRAM_DEBUG", "TELEGRAM_DECODE_INIT_DATA",
	"SERVER_ADDRESS", "SERVER_REQUEST_TIMEOUT", "SERVER_SHUTDOWN_TIMEOUT", "SERVER_ALLOWED_ORIGINS",
	"ADAPTER_MARKET_BASE_URL", "ADAPTER_REQUEST_TIMEOUT", "ADAPTER_REFERER", "ADAPTER_USER_AGENT",
}

// clearEnvVars unsets every variable the config reads and restores the
// previous values when the test ends.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, key := range knownEnvVars {
		if prev, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, prev) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		require.NoError(t, os.Unsetenv(key))
	}
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",
		"PORT":   "9000",

		"APP_VERSION":      "2.0.0",
		"APP_SERVICE_NAME": "xbanking-test",
		"APP_INDEX_FILE":   "/srv/index.html",
		"APP_LOG_LEVEL":    "debug",

		"TELEGRAM_BOT_TOKEN":        "123:ABC",
		"TELEGRAM_WEB_APP_URL":      "https://example.com/app",
		"TELEGRAM_POLL_TIMEOUT":     "45s",
		"TELEGRAM_DEBUG":            "true",
		"TELEGRAM_DECODE_INIT_DATA": "true",

		"SERVER_ADDRESS":          "localhost:8080",
		"SERVER_REQUEST_TIMEOUT":  "15s",
		"SERVER_SHUTDOWN_TIMEOUT": "5s",
		"SERVER_ALLOWED_ORIGINS":  "https://a.example,https://b.example",

		"ADAPTER_MARKET_BASE_URL": "https://market.example/api",
		"ADAPTER_REQUEST_TIMEOUT": "10s",
		"ADAPTER_REFERER":         "https://market.example/",
		"ADAPTER_USER_AGENT":      "test-agent",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, 9000, cfg.Port)

	assert.Equal(t, App{
		Version:     "2.0.0",
		ServiceName: "xbanking-test",
		IndexFile:   "/srv/index.html",
		LogLevel:    "debug",
	}, cfg.App)

	assert.Equal(t, Telegram{
		BotToken:       "123:ABC",
		WebAppURL:      "https://example.com/app",
		PollTimeout:    45 * time.Second,
		Debug:          true,
		DecodeInitData: true,
	}, cfg.Telegram)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)

	assert.Equal(t, Adapter{
		MarketBaseURL:  "https://market.example/api",
		RequestTimeout: 10 * time.Second,
		Referer:        "https://market.example/",
		UserAgent:      "test-agent",
	}, cfg.Adapter)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SERVER_REQUEST_TIMEOUT": "invalid_duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidPort(t *testing.T) {
	setEnvVars(t, map[string]string{"PORT": "eighty"})

	err := parseEnv(&StructuredConfig{})

	require.Error(t, err)
}

func TestLoadDotEnv_MissingDefaultFileIsIgnored(t *testing.T) {
	t.Chdir(t.TempDir())

	assert.NoError(t, loadDotEnv(""))
}

func TestLoadDotEnv_MissingExplicitFileFails(t *testing.T) {
	err := loadDotEnv(filepath.Join(t.TempDir(), "absent.env"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error loading .env file")
}

func TestLoadDotEnv_DoesNotOverrideEnvironment(t *testing.T) {
	setEnvVars(t, map[string]string{"TELEGRAM_BOT_TOKEN": "from-env"})

	path := filepath.Join(t.TempDir(), "test.env")
	body := "TELEGRAM_BOT_TOKEN=from-file\nAPP_VERSION=9.9.9\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	require.NoError(t, loadDotEnv(path))

	assert.Equal(t, "from-env", os.Getenv("TELEGRAM_BOT_TOKEN"))
	assert.Equal(t, "9.9.9", os.Getenv("APP_VERSION"))
}
