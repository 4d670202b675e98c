// Package config provides configuration loading, merging, and validation
// facilities for the API server and the Telegram bot.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. .env file
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// Built-in defaults fill the remaining zero fields. The bot token has no
// default: a missing token fails validation.
//
// The main entry points are [GetServerConfig] and [GetBotConfig].
package config
