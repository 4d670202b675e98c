// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/xbanking-gateway/internal/adapter"
	"github.com/MKhiriev/xbanking-gateway/internal/logger"
	"github.com/MKhiriev/xbanking-gateway/models"
)

type marketService struct {
	adapter adapter.MarketAdapter

	logger *logger.Logger
}

// NewMarketService constructs a MarketService that forwards to marketAdapter.
func NewMarketService(marketAdapter adapter.MarketAdapter, logger *logger.Logger) MarketService {
	return &marketService{
		adapter: marketAdapter,
		logger:  logger,
	}
}

func (m *marketService) GetConfig(ctx context.Context) (models.UpstreamResponse, error) {
	return m.forward(ctx, "get config", m.adapter.GetConfig)
}

func (m *marketService) GetWalletBalance(ctx context.Context) (models.UpstreamResponse, error) {
	return m.forward(ctx, "get wallet balance", m.adapter.GetWalletBalance)
}

// ListNFTs validates paging (offset >= 0, 1 <= limit <= 100) before calling
// upstream. Invalid paging is reported as ErrInvalidQuery.
func (m *marketService) ListNFTs(ctx context.Context, query models.NFTListQuery) (models.UpstreamResponse, error) {
	if err := validatePaging(query.Offset, query.Limit); err != nil {
		return models.UpstreamResponse{}, err
	}

	return m.forward(ctx, "list nfts", func(ctx context.Context) (models.UpstreamResponse, error) {
		return m.adapter.ListNFTs(ctx, query)
	})
}

// SearchNFTs validates paging like ListNFTs and fills an empty sort order or
// status with the defaults.
func (m *marketService) SearchNFTs(ctx context.Context, query models.NFTSearchQuery) (models.UpstreamResponse, error) {
	if err := validatePaging(query.Offset, query.Limit); err != nil {
		return models.UpstreamResponse{}, err
	}

	if query.SortBy == "" {
		query.SortBy = models.DefaultNFTSearchSortBy
	}
	if query.Status == "" {
		query.Status = models.DefaultNFTSearchStatus
	}

	return m.forward(ctx, "search nfts", func(ctx context.Context) (models.UpstreamResponse, error) {
		return m.adapter.SearchNFTs(ctx, query)
	})
}

func (m *marketService) GetBackdrops(ctx context.Context) (models.UpstreamResponse, error) {
	return m.forward(ctx, "get backdrops", m.adapter.GetBackdrops)
}

func (m *marketService) GetUserNFTs(ctx context.Context) (models.UpstreamResponse, error) {
	return m.forward(ctx, "get user nfts", m.adapter.GetUserNFTs)
}

func (m *marketService) forward(ctx context.Context, op string, call func(context.Context) (models.UpstreamResponse, error)) (models.UpstreamResponse, error) {
	resp, err := call(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("op", op).Msg("upstream call failed")
		return models.UpstreamResponse{}, fmt.Errorf("%s: %w", op, err)
	}

	return resp, nil
}

func validatePaging(offset, limit int) error {
	if offset < 0 {
		return fmt.Errorf("%w: offset must be greater than or equal to 0", ErrInvalidQuery)
	}
	if limit < 1 || limit > models.MaxNFTLimit {
		return fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidQuery, models.MaxNFTLimit)
	}

	return nil
}
