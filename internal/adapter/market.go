// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/xbanking-gateway/internal/config"
	"github.com/MKhiriev/xbanking-gateway/internal/logger"
	"github.com/MKhiriev/xbanking-gateway/internal/utils"
	"github.com/MKhiriev/xbanking-gateway/models"
	"github.com/go-resty/resty/v2"
)

const (
	pathMarketConfig   = "/market/config"
	pathWalletBalance  = "/users/wallets/"
	pathNFTs           = "/nfts"
	pathNFTSearch      = "/nfts/search"
	pathBackdropFilter = "/collections/filters/backdrops"
)

type httpMarketAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewMarketAdapter constructs an HTTP/REST implementation of [MarketAdapter].
// It normalises and validates the base URL from adapterCfg.MarketBaseURL and
// configures the underlying HTTP client with the resolved base URL, the
// request timeout and the fixed headers every upstream request carries.
//
// Returns an error wrapping [ErrInvalidBaseURL] if the base URL is empty or
// cannot be parsed as a valid URL.
func NewMarketAdapter(adapterCfg config.Adapter, logger *logger.Logger) (MarketAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.MarketBaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	client := utils.NewHTTPClient(
		utils.WithBaseURL(baseURL),
		utils.WithTimeout(adapterCfg.RequestTimeout),
		utils.WithHeader("Accept", "application/json"),
		utils.WithHeader("Accept-Encoding", "identity"),
		utils.WithHeader("Referer", adapterCfg.Referer),
		utils.WithHeader("User-Agent", adapterCfg.UserAgent),
	)

	return &httpMarketAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetConfig implements [MarketAdapter].
func (h *httpMarketAdapter) GetConfig(ctx context.Context) (models.UpstreamResponse, error) {
	return h.get(ctx, "get market config", pathMarketConfig, nil)
}

// GetWalletBalance implements [MarketAdapter].
func (h *httpMarketAdapter) GetWalletBalance(ctx context.Context) (models.UpstreamResponse, error) {
	return h.get(ctx, "get wallet balance", pathWalletBalance, nil)
}

// ListNFTs implements [MarketAdapter]. Offset and limit are sent as given;
// validation is the caller's job.
func (h *httpMarketAdapter) ListNFTs(ctx context.Context, query models.NFTListQuery) (models.UpstreamResponse, error) {
	params := url.Values{}
	params.Set("offset", strconv.Itoa(query.Offset))
	params.Set("limit", strconv.Itoa(query.Limit))

	return h.get(ctx, "list nfts", pathNFTs, params)
}

// SearchNFTs implements [MarketAdapter]. Paging, sort order and status are
// always sent; each filter only when it is non-empty.
func (h *httpMarketAdapter) SearchNFTs(ctx context.Context, query models.NFTSearchQuery) (models.UpstreamResponse, error) {
	params := url.Values{}
	params.Set("offset", strconv.Itoa(query.Offset))
	params.Set("limit", strconv.Itoa(query.Limit))
	params.Set("sort_by", query.SortBy)
	params.Set("status", query.Status)

	setIfNotEmpty(params, "filter_by_collections", query.FilterByCollections)
	setIfNotEmpty(params, "filter_by_backdrops", query.FilterByBackdrops)
	setIfNotEmpty(params, "filter_by_symbols", query.FilterBySymbols)
	setIfNotEmpty(params, "filter_by_models", query.FilterByModels)

	return h.get(ctx, "search nfts", pathNFTSearch, params)
}

// GetBackdrops implements [MarketAdapter].
func (h *httpMarketAdapter) GetBackdrops(ctx context.Context) (models.UpstreamResponse, error) {
	return h.get(ctx, "get backdrops", pathBackdropFilter, nil)
}

// GetUserNFTs implements [MarketAdapter].
func (h *httpMarketAdapter) GetUserNFTs(ctx context.Context) (models.UpstreamResponse, error) {
	return h.get(ctx, "get user nfts", pathNFTs, nil)
}

func (h *httpMarketAdapter) get(ctx context.Context, op, path string, params url.Values) (models.UpstreamResponse, error) {
	req := h.request(ctx)
	if len(params) > 0 {
		req.SetQueryParamsFromValues(params)
	}

	resp, err := req.Get(path)
	if err == nil {
		h.logger.Debug().
			Str("op", op).
			Str("path", path).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Msg("upstream response")
	}

	return mapResponse(op, resp, err)
}

func (h *httpMarketAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

func setIfNotEmpty(params url.Values, key, value string) {
	if value != "" {
		params.Set(key, value)
	}
}
