// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the JSON config file.
// Durations may be written as strings ("30s") or as nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		Version     string `json:"version"`
		ServiceName string `json:"service_name"`
		IndexFile   string `json:"index_file"`
		LogLevel    string `json:"log_level"`
	} `json:"app,omitempty"`

	Telegram struct {
		BotToken       string   `json:"bot_token"`
		WebAppURL      string   `json:"web_app_url"`
		PollTimeout    Duration `json:"poll_timeout"`
		Debug          bool     `json:"debug"`
		DecodeInitData bool     `json:"decode_init_data"`
	} `json:"telegram,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		AllowedOrigins  []string `json:"allowed_origins"`
	} `json:"server,omitempty"`

	Adapter struct {
		MarketBaseURL  string   `json:"market_base_url"`
		RequestTimeout Duration `json:"request_timeout"`
		Referer        string   `json:"referer"`
		UserAgent      string   `json:"user_agent"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:     jsonCfg.App.Version,
			ServiceName: jsonCfg.App.ServiceName,
			IndexFile:   jsonCfg.App.IndexFile,
			LogLevel:    jsonCfg.App.LogLevel,
		},
		Telegram: Telegram{
			BotToken:       jsonCfg.Telegram.BotToken,
			WebAppURL:      jsonCfg.Telegram.WebAppURL,
			PollTimeout:    time.Duration(jsonCfg.Telegram.PollTimeout),
			Debug:          jsonCfg.Telegram.Debug,
			DecodeInitData: jsonCfg.Telegram.DecodeInitData,
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
			AllowedOrigins:  jsonCfg.Server.AllowedOrigins,
		},
		Adapter: Adapter{
			MarketBaseURL:  jsonCfg.Adapter.MarketBaseURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
			Referer:        jsonCfg.Adapter.Referer,
			UserAgent:      jsonCfg.Adapter.UserAgent,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
