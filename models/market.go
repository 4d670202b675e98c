// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// Paging limits accepted by the marketplace NFT endpoints.
const (
	DefaultNFTListLimit   = 30
	DefaultNFTSearchLimit = 20
	MaxNFTLimit           = 100

	DefaultNFTSearchSortBy = "price asc"
	DefaultNFTSearchStatus = "listed"
)

// UpstreamResponse is a marketplace API response forwarded to the caller
// without modification.
type UpstreamResponse struct {
	// StatusCode is the HTTP status returned by the upstream API.
	StatusCode int

	// Body is the raw JSON body returned by the upstream API.
	Body json.RawMessage
}

// NFTListQuery pages through the marketplace NFT listing.
type NFTListQuery struct {
	Offset int
	Limit  int
}

// NFTSearchQuery describes a marketplace NFT search. Empty filter fields are
// not sent upstream.
type NFTSearchQuery struct {
	Offset int
	Limit  int

	SortBy string
	Status string

	FilterByCollections string
	FilterByBackdrops   string
	FilterBySymbols     string
	FilterByModels      string
}

// DefaultNFTListQuery returns the paging used when the caller sends none.
func DefaultNFTListQuery() NFTListQuery {
	return NFTListQuery{Offset: 0, Limit: DefaultNFTListLimit}
}

// DefaultNFTSearchQuery returns the search parameters used when the caller
// sends none.
func DefaultNFTSearchQuery() NFTSearchQuery {
	return NFTSearchQuery{
		Offset: 0,
		Limit:  DefaultNFTSearchLimit,
		SortBy: DefaultNFTSearchSortBy,
		Status: DefaultNFTSearchStatus,
	}
}
