// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/xbanking-gateway/internal/initdata"
	"github.com/MKhiriev/xbanking-gateway/internal/logger"
	"github.com/MKhiriev/xbanking-gateway/models"
)

// InitDataVerifier checks the signature of mini app init data.
// It is satisfied by *initdata.Verifier.
type InitDataVerifier interface {
	Verify(raw string) (initdata.InitData, error)
}

// authService is the concrete implementation of AuthService.
// It holds no state besides the verifier, which carries the derived signing
// key, so it is safe for concurrent use.
type authService struct {
	verifier InitDataVerifier

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService that trusts only init data
// signed for the bot the verifier was built for.
func NewAuthService(verifier InitDataVerifier, logger *logger.Logger) AuthService {
	return &authService{
		verifier: verifier,
		logger:   logger,
	}
}

// GetUser verifies initData and maps the Telegram user it carries.
//
// Returns ErrInvalidTelegramData (wrapping the verifier error, if any) when:
//   - the payload is malformed or its signature does not match;
//   - the payload has no `user` field;
//   - the `user` field could not be decoded or has no id.
//
// Neither the raw payload nor the expected hash is logged.
func (a *authService) GetUser(ctx context.Context, initData string) (models.User, error) {
	log := logger.FromContext(ctx)

	data, err := a.verifier.Verify(initData)
	if err != nil {
		log.Warn().Err(err).Int("init_data_len", len(initData)).Msg("init data verification failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidTelegramData, err)
	}

	if data.User == nil {
		log.Warn().Msg("verified init data carries no user")
		return models.User{}, fmt.Errorf("%w: no user", ErrInvalidTelegramData)
	}

	if data.UserDegraded || data.User.ID == 0 {
		log.Warn().Bool("degraded", data.UserDegraded).Msg("verified init data carries no user identity")
		return models.User{}, fmt.Errorf("%w: no user identity", ErrInvalidTelegramData)
	}

	return models.NewUser(*data.User), nil
}
