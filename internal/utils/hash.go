// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// Hasher provides keyed HMAC-SHA256 hashing with a fixed key.
// It keeps a pool of hash.Hash instances configured with that key so that
// hot paths (e.g. init data verification on every request) do not allocate a
// new HMAC state per call.
//
// A Hasher is safe for concurrent use.
type Hasher struct {
	pool sync.Pool
}

// NewHasher constructs a *Hasher whose pooled HMAC-SHA256 instances are keyed
// with a copy of key.
//
// Example usage:
//
//	h := utils.NewHasher([]byte("my-secret-key"))
//	digest := h.Sum([]byte("some data"))
func NewHasher(key []byte) *Hasher {
	k := make([]byte, len(key))
	copy(k, key)

	return &Hasher{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, k)
			},
		},
	}
}

// Sum computes the HMAC-SHA256 digest over data.
//
// Behavior:
//   - Retrieves a hash.Hash instance from the pool
//   - Resets it, writes the data, computes the sum
//   - Returns it to the pool
func (h *Hasher) Sum(data []byte) []byte {
	mac := h.pool.Get().(hash.Hash)
	mac.Reset()

	mac.Write(data)
	sum := mac.Sum(nil)

	h.pool.Put(mac)

	return sum
}

// SumHex is Sum encoded as a lowercase hex string.
func (h *Hasher) SumHex(data []byte) string {
	return hex.EncodeToString(h.Sum(data))
}

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// Unlike [Hasher], this function creates a new HMAC instance on each call.
// Suitable for one-off hashing.
//
// Example usage:
//
//	signature := utils.HashString("some data", "my-secret-key")
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(HashBytes([]byte(data), []byte(hashKey)))
}

// HashBytes computes the raw HMAC-SHA256 digest over data keyed with key.
// A new HMAC instance is created on each call.
func HashBytes(data []byte, key []byte) []byte {
	hasher := hmac.New(sha256.New, key)
	hasher.Write(data)
	return hasher.Sum(nil)
}
