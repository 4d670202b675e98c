// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// xbanking API handlers and the Telegram bot.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies, bot replies or log entries to describe the outcome of
// an operation. Keeping them in one place ensures consistent wording
// throughout the API.
package app

// HTTP response details.
const (
	// MsgInvalidTelegramData is returned when init data is malformed, its
	// signature does not match, or it carries no user.
	MsgInvalidTelegramData = "Invalid Telegram data"

	// MsgInitDataRequired is returned when GET /api/user is called without
	// the init_data query parameter.
	MsgInitDataRequired = "init_data query parameter is required"

	// MsgInvalidUserID is returned when the user_id path segment is not an
	// integer.
	MsgInvalidUserID = "user_id must be an integer"

	// MsgFetchConfigFailed is returned when the marketplace configuration
	// could not be fetched.
	MsgFetchConfigFailed = "Failed to fetch config"

	// MsgFetchWalletBalanceFailed is returned when the wallet balance could
	// not be fetched.
	MsgFetchWalletBalanceFailed = "Failed to fetch wallet balance"

	// MsgListNFTsFailed is returned when the NFT listing could not be fetched.
	MsgListNFTsFailed = "Failed to list NFTs"

	// MsgSearchNFTsFailed is returned when the NFT search failed upstream.
	MsgSearchNFTsFailed = "Failed to search NFTs"

	// MsgFetchBackdropsFailed is returned when the backdrop filters could not
	// be fetched.
	MsgFetchBackdropsFailed = "Failed to fetch backdrops"

	// MsgFetchUserNFTsFailed is returned when the user's NFTs could not be
	// fetched.
	MsgFetchUserNFTsFailed = "Failed to fetch user NFTs"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal Server Error"

	// MsgNotFound is returned for unknown routes.
	MsgNotFound = "Not Found"

	// MsgMethodNotAllowed is returned when a route exists but does not
	// accept the request method.
	MsgMethodNotAllowed = "Method Not Allowed"
)

// MiniAppFallbackHTML is served on GET / when the mini app page cannot be
// read.
const MiniAppFallbackHTML = "<h1>Mini App</h1><p>Загрузите index.html</p>"

// Bot replies.
const (
	// MsgBotError is sent to the chat when handling an update fails.
	MsgBotError = "⚠️ Произошла ошибка. Пожалуйста, попробуйте позже."
)
