// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors for request parameters that fail to parse. They map to
// 422 Unprocessable Entity.
var (
	errMissingQueryParam = errors.New("missing query parameter")
	errInvalidQueryParam = errors.New("invalid query parameter")
	errInvalidPathParam  = errors.New("invalid path parameter")
)
