// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package initdata verifies the signed init data that a Telegram client passes
// to a mini app web page.
//
// The payload is a string of `key=value` segments joined by `&`. One segment
// carries the `hash` signature, the remaining segments are the signed data set.
// The signature is an HMAC-SHA256 over the signed segments sorted by key and
// joined by newlines, keyed with HMAC-SHA256("WebAppData", botToken).
//
// Parsing of the top-level segments is strict: a segment without `=` or a key
// that appears twice rejects the whole payload with [ErrMalformedPayload].
// Decoding of the nested `user` record is lenient: once the signature matches,
// a `user` value that is not a JSON object degrades to an empty record and
// [InitData.UserDegraded] is set.
package initdata
