// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package initdata

import "errors"

// Sentinel errors returned by [Verifier.Verify] and [NewVerifier]. Callers can
// match against them with [errors.Is]. None of them carries the bot secret,
// the computed hash or the check string.
var (
	// ErrMalformedPayload indicates a structural parse failure of the raw
	// payload: a segment without `=`, a repeated key, or (with value decoding
	// enabled) an invalid percent-escape. No partial result is returned.
	ErrMalformedPayload = errors.New("malformed init data")

	// ErrSignatureMismatch indicates that the computed signature does not
	// equal the received `hash` value, including when `hash` is absent.
	ErrSignatureMismatch = errors.New("init data signature mismatch")

	// ErrEmptySecret is returned by [NewVerifier] when no bot secret is given.
	ErrEmptySecret = errors.New("empty bot secret")
)
