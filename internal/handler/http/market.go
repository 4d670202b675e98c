// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/MKhiriev/xbanking-gateway/internal/app"
	"github.com/MKhiriev/xbanking-gateway/internal/logger"
	"github.com/MKhiriev/xbanking-gateway/internal/utils"
	"github.com/MKhiriev/xbanking-gateway/models"
)

func (h *Handler) getMarketConfig(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.MarketService.GetConfig(r.Context())
	h.passthrough(w, r, resp, err, app.MsgFetchConfigFailed)
}

func (h *Handler) getWalletBalance(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.MarketService.GetWalletBalance(r.Context())
	h.passthrough(w, r, resp, err, app.MsgFetchWalletBalanceFailed)
}

// listNFTs handles GET /api/market/nfts?offset=&limit=
func (h *Handler) listNFTs(w http.ResponseWriter, r *http.Request) {
	query, err := parseNFTListQuery(r.URL.Query())
	if err != nil {
		h.invalidQuery(w, r, err)
		return
	}

	resp, err := h.services.MarketService.ListNFTs(r.Context(), query)
	h.passthrough(w, r, resp, err, app.MsgListNFTsFailed)
}

// searchNFTs handles GET /api/market/nfts/search with paging, sort_by,
// status and the optional filter_by_* parameters.
func (h *Handler) searchNFTs(w http.ResponseWriter, r *http.Request) {
	query, err := parseNFTSearchQuery(r.URL.Query())
	if err != nil {
		h.invalidQuery(w, r, err)
		return
	}

	resp, err := h.services.MarketService.SearchNFTs(r.Context(), query)
	h.passthrough(w, r, resp, err, app.MsgSearchNFTsFailed)
}

func (h *Handler) getBackdrops(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.MarketService.GetBackdrops(r.Context())
	h.passthrough(w, r, resp, err, app.MsgFetchBackdropsFailed)
}

func (h *Handler) getUserNFTs(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.MarketService.GetUserNFTs(r.Context())
	h.passthrough(w, r, resp, err, app.MsgFetchUserNFTsFailed)
}

// passthrough forwards the upstream status and body. Validation errors are
// answered with 422 and every other failure with 500 and failMsg.
func (h *Handler) passthrough(w http.ResponseWriter, r *http.Request, resp models.UpstreamResponse, err error, failMsg string) {
	if err != nil {
		status := statusFromError(err)
		if status == http.StatusUnprocessableEntity {
			h.invalidQuery(w, r, err)
			return
		}

		logger.FromRequest(r).Err(err).Msg(failMsg)
		writeError(w, r, failMsg, http.StatusInternalServerError)
		return
	}

	if _, err = utils.WriteRawJSON(w, resp.Body, resp.StatusCode); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing upstream response")
	}
}

func (h *Handler) invalidQuery(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Warn().Err(err).Msg("invalid query")
	writeError(w, r, err.Error(), http.StatusUnprocessableEntity)
}

func parseNFTListQuery(values url.Values) (models.NFTListQuery, error) {
	query := models.DefaultNFTListQuery()

	var err error
	if query.Offset, err = intParam(values, "offset", query.Offset); err != nil {
		return models.NFTListQuery{}, err
	}
	if query.Limit, err = intParam(values, "limit", query.Limit); err != nil {
		return models.NFTListQuery{}, err
	}

	return query, nil
}

func parseNFTSearchQuery(values url.Values) (models.NFTSearchQuery, error) {
	query := models.DefaultNFTSearchQuery()

	var err error
	if query.Offset, err = intParam(values, "offset", query.Offset); err != nil {
		return models.NFTSearchQuery{}, err
	}
	if query.Limit, err = intParam(values, "limit", query.Limit); err != nil {
		return models.NFTSearchQuery{}, err
	}

	if values.Has("sort_by") {
		query.SortBy = values.Get("sort_by")
	}
	if values.Has("status") {
		query.Status = values.Get("status")
	}

	query.FilterByCollections = values.Get("filter_by_collections")
	query.FilterByBackdrops = values.Get("filter_by_backdrops")
	query.FilterBySymbols = values.Get("filter_by_symbols")
	query.FilterByModels = values.Get("filter_by_models")

	return query, nil
}

// intParam returns the integer value of name, or def when it is absent.
func intParam(values url.Values, name string, def int) (int, error) {
	if !values.Has(name) {
		return def, nil
	}

	v, err := strconv.Atoi(values.Get(name))
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", errInvalidQueryParam, name)
	}

	return v, nil
}
