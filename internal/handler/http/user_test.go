// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/MKhiriev/xbanking-gateway/internal/initdata"
	"github.com/MKhiriev/xbanking-gateway/internal/service"
	"github.com/MKhiriev/xbanking-gateway/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUser_Success(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.auth.user = models.User{ID: 42, Username: "alice", FirstName: "Alice", IsPremium: true}

	initData := "auth_date=1&user={}&hash=abc"
	rr := serve(router, http.MethodGet, "/api/user?init_data="+url.QueryEscape(initData))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, initData, deps.auth.gotInitData)
	assert.JSONEq(t, `{
		"success": true,
		"user": {
			"id": 42,
			"username": "alice",
			"first_name": "Alice",
			"last_name": "",
			"photo_url": "",
			"is_premium": true
		}
	}`, rr.Body.String())
}

func TestGetUser_MissingInitData(t *testing.T) {
	router, deps := newTestRouter(t)

	rr := serve(router, http.MethodGet, "/api/user")

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, "init_data query parameter is required", decodeDetail(t, rr))
	assert.Empty(t, deps.auth.gotInitData)
}

func TestGetUser_InvalidTelegramData(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "signature mismatch", err: fmt.Errorf("%w: %w", service.ErrInvalidTelegramData, initdata.ErrSignatureMismatch)},
		{name: "malformed payload", err: fmt.Errorf("%w: %w", service.ErrInvalidTelegramData, initdata.ErrMalformedPayload)},
		{name: "no user", err: fmt.Errorf("%w: no user", service.ErrInvalidTelegramData)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, deps := newTestRouter(t)
			deps.auth.err = tt.err

			rr := serve(router, http.MethodGet, "/api/user?init_data=anything")

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.JSONEq(t, `{"detail":"Invalid Telegram data"}`, rr.Body.String())
		})
	}
}

func TestGetUser_EmptyInitDataIsVerified(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.auth.err = service.ErrInvalidTelegramData

	rr := serve(router, http.MethodGet, "/api/user?init_data=")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGetUser_UnexpectedError(t *testing.T) {
	router, deps := newTestRouter(t)
	deps.auth.err = errors.New("boom")

	rr := serve(router, http.MethodGet, "/api/user?init_data=x")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotContains(t, resp.Detail, "boom")
}
