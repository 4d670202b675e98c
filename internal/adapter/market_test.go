// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/xbanking-gateway/internal/config"
	"github.com/MKhiriev/xbanking-gateway/internal/logger"
	"github.com/MKhiriev/xbanking-gateway/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter creates an httpMarketAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpMarketAdapter {
	t.Helper()
	adapterCfg := config.Adapter{
		MarketBaseURL:  serverURL + "/api",
		RequestTimeout: 2 * time.Second,
		Referer:        "https://portals-market.com/",
		UserAgent:      "test-agent",
	}

	a, err := NewMarketAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpMarketAdapter)
}

func jsonServer(t *testing.T, status int, body string, check func(r *http.Request)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			check(r)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

// ── NewMarketAdapter ────────────────────────────────────────────────────────

func TestNewMarketAdapter_InvalidBaseURL(t *testing.T) {
	for _, raw := range []string{"", "   ", "https://"} {
		_, err := NewMarketAdapter(config.Adapter{MarketBaseURL: raw}, logger.Nop())
		assert.ErrorIs(t, err, ErrInvalidBaseURL, "base url %q", raw)
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "https://portals-market.com/api/", want: "https://portals-market.com/api"},
		{raw: "portals-market.com/api", want: "https://portals-market.com/api"},
		{raw: " http://localhost:8080 ", want: "http://localhost:8080"},
	}

	for _, tt := range tests {
		got, err := normalizeBaseURL(tt.raw)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

// ── fixed headers ───────────────────────────────────────────────────────────

func TestMarketAdapter_SendsFixedHeaders(t *testing.T) {
	srv := jsonServer(t, http.StatusOK, `{}`, func(r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "identity", r.Header.Get("Accept-Encoding"))
		assert.Equal(t, "https://portals-market.com/", r.Header.Get("Referer"))
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
	})

	_, err := newTestAdapter(t, srv.URL).GetConfig(context.Background())
	require.NoError(t, err)
}

// ── paths ───────────────────────────────────────────────────────────────────

func TestMarketAdapter_Paths(t *testing.T) {
	tests := []struct {
		name string
		path string
		call func(a *httpMarketAdapter) (models.UpstreamResponse, error)
	}{
		{name: "config", path: "/api/market/config", call: func(a *httpMarketAdapter) (models.UpstreamResponse, error) {
			return a.GetConfig(context.Background())
		}},
		{name: "wallet balance", path: "/api/users/wallets/", call: func(a *httpMarketAdapter) (models.UpstreamResponse, error) {
			return a.GetWalletBalance(context.Background())
		}},
		{name: "backdrops", path: "/api/collections/filters/backdrops", call: func(a *httpMarketAdapter) (models.UpstreamResponse, error) {
			return a.GetBackdrops(context.Background())
		}},
		{name: "user nfts", path: "/api/nfts", call: func(a *httpMarketAdapter) (models.UpstreamResponse, error) {
			return a.GetUserNFTs(context.Background())
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := jsonServer(t, http.StatusOK, `{"ok":true}`, func(r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, tt.path, r.URL.Path)
			})

			got, err := tt.call(newTestAdapter(t, srv.URL))

			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, got.StatusCode)
			assert.JSONEq(t, `{"ok":true}`, string(got.Body))
		})
	}
}

// ── ListNFTs ────────────────────────────────────────────────────────────────

func TestListNFTs_SendsPaging(t *testing.T) {
	srv := jsonServer(t, http.StatusOK, `{"results":[]}`, func(r *http.Request) {
		assert.Equal(t, "/api/nfts", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("offset"))
		assert.Equal(t, "30", r.URL.Query().Get("limit"))
	})

	got, err := newTestAdapter(t, srv.URL).ListNFTs(context.Background(), models.NFTListQuery{Offset: 10, Limit: 30})

	require.NoError(t, err)
	assert.JSONEq(t, `{"results":[]}`, string(got.Body))
}

// ── SearchNFTs ──────────────────────────────────────────────────────────────

func TestSearchNFTs_OmitsEmptyFilters(t *testing.T) {
	srv := jsonServer(t, http.StatusOK, `[]`, func(r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/api/nfts/search", r.URL.Path)
		assert.Equal(t, "0", q.Get("offset"))
		assert.Equal(t, "20", q.Get("limit"))
		assert.Equal(t, "price asc", q.Get("sort_by"))
		assert.Equal(t, "listed", q.Get("status"))
		assert.Equal(t, "Plush Pepe", q.Get("filter_by_collections"))
		assert.Equal(t, "Black", q.Get("filter_by_backdrops"))
		assert.False(t, q.Has("filter_by_symbols"))
		assert.False(t, q.Has("filter_by_models"))
	})

	_, err := newTestAdapter(t, srv.URL).SearchNFTs(context.Background(), models.NFTSearchQuery{
		Limit:               20,
		SortBy:              "price asc",
		Status:              "listed",
		FilterByCollections: "Plush Pepe",
		FilterByBackdrops:   "Black",
	})

	require.NoError(t, err)
}

// ── passthrough and errors ──────────────────────────────────────────────────

func TestMarketAdapter_ForwardsUpstreamStatus(t *testing.T) {
	srv := jsonServer(t, http.StatusNotFound, `{"detail":"not found"}`, nil)

	got, err := newTestAdapter(t, srv.URL).GetConfig(context.Background())

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, got.StatusCode)
	assert.JSONEq(t, `{"detail":"not found"}`, string(got.Body))
}

func TestMarketAdapter_InvalidJSONBody(t *testing.T) {
	srv := jsonServer(t, http.StatusBadGateway, `<html>bad gateway</html>`, nil)

	_, err := newTestAdapter(t, srv.URL).GetWalletBalance(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstreamInvalidResponse)
}

func TestMarketAdapter_EmptyBody(t *testing.T) {
	srv := jsonServer(t, http.StatusOK, ``, nil)

	_, err := newTestAdapter(t, srv.URL).GetBackdrops(context.Background())

	assert.ErrorIs(t, err, ErrUpstreamInvalidResponse)
}

func TestMarketAdapter_Unavailable(t *testing.T) {
	srv := jsonServer(t, http.StatusOK, `{}`, nil)
	a := newTestAdapter(t, srv.URL)
	srv.Close()

	_, err := a.GetConfig(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
}

func TestMarketAdapter_ContextCanceled(t *testing.T) {
	srv := jsonServer(t, http.StatusOK, `{}`, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestAdapter(t, srv.URL).GetConfig(ctx)

	assert.ErrorIs(t, err, ErrUpstreamUnavailable)
	assert.ErrorIs(t, err, context.Canceled)
}
