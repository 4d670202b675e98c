// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client of the upstream marketplace REST API.
//
// The primary abstraction is [MarketAdapter], which decouples the service
// layer from the upstream transport. The package ships an HTTP/REST
// implementation built on resty ([NewMarketAdapter]).
//
// Upstream bodies are forwarded unmodified together with the upstream status
// code. Transport failures are reported as [ErrUpstreamUnavailable] and bodies
// that are not valid JSON as [ErrUpstreamInvalidResponse], so that callers can
// use [errors.Is] regardless of the underlying client library.
package adapter

import (
	"context"

	"github.com/MKhiriev/xbanking-gateway/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/market_adapter_mock.go -package=mock

// MarketAdapter defines read-only access to the marketplace API.
// Implementations must be safe for concurrent use.
type MarketAdapter interface {
	// GetConfig fetches the marketplace configuration (GET /market/config).
	GetConfig(ctx context.Context) (models.UpstreamResponse, error)

	// GetWalletBalance fetches the wallet balances (GET /users/wallets/).
	GetWalletBalance(ctx context.Context) (models.UpstreamResponse, error)

	// ListNFTs fetches one page of listed NFTs (GET /nfts).
	ListNFTs(ctx context.Context, query models.NFTListQuery) (models.UpstreamResponse, error)

	// SearchNFTs searches NFTs (GET /nfts/search). Empty filters are not sent.
	SearchNFTs(ctx context.Context, query models.NFTSearchQuery) (models.UpstreamResponse, error)

	// GetBackdrops fetches the backdrop filter values
	// (GET /collections/filters/backdrops).
	GetBackdrops(ctx context.Context) (models.UpstreamResponse, error)

	// GetUserNFTs fetches the NFTs shown on the user's page. The upstream has
	// no per-user listing yet, so it returns the default NFT listing.
	GetUserNFTs(ctx context.Context) (models.UpstreamResponse, error)
}
