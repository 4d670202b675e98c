// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// API server and the Telegram bot. It is populated by merging built-in
// defaults, an optional .env file, environment variables, command-line flags
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: version, service name, the
	// mini app page and the log level.
	App App `envPrefix:"APP_"`

	// Telegram holds the bot secret and the bot/mini app settings.
	Telegram Telegram `envPrefix:"TELEGRAM_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the upstream marketplace API client settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Port is the bare listening port set by hosting platforms.
	// It is used only when no server address is configured explicitly.
	// Env: PORT
	Port int `env:"PORT"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version reported by GET /health.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// ServiceName is the service label reported by GET /health.
	// Env: APP_SERVICE_NAME
	ServiceName string `env:"SERVICE_NAME"`

	// IndexFile is the path of the mini app HTML page served on GET /.
	// Env: APP_INDEX_FILE
	IndexFile string `env:"INDEX_FILE"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Telegram holds the bot credentials and Telegram-facing settings.
type Telegram struct {
	// BotToken is the bot secret shared with Telegram. It signs mini app
	// init data and authenticates the bot. Required; there is no default.
	// Env: TELEGRAM_BOT_TOKEN
	BotToken string `env:"BOT_TOKEN"`

	// WebAppURL is the HTTPS address of the mini app opened by the bot.
	// Env: TELEGRAM_WEB_APP_URL
	WebAppURL string `env:"WEB_APP_URL"`

	// PollTimeout is the long-polling timeout for getUpdates.
	// Env: TELEGRAM_POLL_TIMEOUT
	PollTimeout time.Duration `env:"POLL_TIMEOUT"`

	// Debug enables request logging inside the Telegram client library.
	// Env: TELEGRAM_DEBUG
	Debug bool `env:"DEBUG"`

	// DecodeInitData makes the verifier percent-decode init data values
	// before checking the signature.
	// Env: TELEGRAM_DECODE_INIT_DATA
	DecodeInitData bool `env:"DECODE_INIT_DATA"`
}

// Server holds network and timeout settings for the inbound HTTP server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading a request and writing its response.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds the graceful shutdown of the HTTP server.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// AllowedOrigins lists the CORS origins accepted by the API.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Adapter holds settings of the upstream marketplace API client.
type Adapter struct {
	// MarketBaseURL is the base URL of the marketplace REST API.
	// Env: ADAPTER_MARKET_BASE_URL
	MarketBaseURL string `env:"MARKET_BASE_URL"`

	// RequestTimeout is the timeout of a single upstream request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Referer is sent as the Referer header on every upstream request.
	// Env: ADAPTER_REFERER
	Referer string `env:"REFERER"`

	// UserAgent is sent as the User-Agent header on every upstream request.
	// Env: ADAPTER_USER_AGENT
	UserAgent string `env:"USER_AGENT"`
}

// defaultConfig returns the built-in defaults. They fill only the fields
// that no other source has set. The bot token has no default.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:     "1.0.0",
			ServiceName: "xbanking-api",
			IndexFile:   "index.html",
			LogLevel:    "info",
		},
		Telegram: Telegram{
			WebAppURL:   "https://telega-three.vercel.app/",
			PollTimeout: 60 * time.Second,
		},
		Server: Server{
			HTTPAddress:     "0.0.0.0:8000",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			AllowedOrigins:  []string{"*"},
		},
		Adapter: Adapter{
			MarketBaseURL:  "https://portals-market.com/api",
			RequestTimeout: 30 * time.Second,
			Referer:        "https://portals-market.com/",
			UserAgent:      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
		},
	}
}

// GetServerConfig loads, merges, and validates the configuration of the API
// server from all sources in the following priority order (last source wins
// for non-zero fields):
//  1. .env file (never overrides variables already set in the environment)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 1 to 3)
//
// Built-in defaults fill whatever is left empty.
func GetServerConfig() (*StructuredConfig, error) {
	cfg, err := load(os.Args[1:])
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validateServer()
}

// GetBotConfig is [GetServerConfig] for the Telegram bot process.
func GetBotConfig() (*StructuredConfig, error) {
	cfg, err := load(os.Args[1:])
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validateBot()
}

func load(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(os.Getenv(dotEnvPathVar)).
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
