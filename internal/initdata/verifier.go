// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package initdata

import (
	"crypto/hmac"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/MKhiriev/xbanking-gateway/internal/utils"
	"github.com/MKhiriev/xbanking-gateway/models"
)

// webAppDataKey keys the HMAC that derives the signing key from the bot token.
const webAppDataKey = "WebAppData"

// Option configures a [Verifier].
type Option func(*Verifier)

// WithValueDecoding makes the verifier percent-decode every key and value
// after splitting the payload into segments. Use it when the caller forwards
// the URL-encoded init data string exactly as the Telegram client produced it.
func WithValueDecoding() Option {
	return func(v *Verifier) {
		v.decodeValues = true
	}
}

// Verifier checks init data signatures for a single bot. The signing key is
// derived once in [NewVerifier]; a Verifier holds no other state and is safe
// for concurrent use.
type Verifier struct {
	hasher       *utils.Hasher
	decodeValues bool
}

// NewVerifier derives the signing key for botToken and returns a ready
// Verifier. It returns [ErrEmptySecret] when botToken is empty.
func NewVerifier(botToken string, opts ...Option) (*Verifier, error) {
	if botToken == "" {
		return nil, ErrEmptySecret
	}

	signingKey := utils.HashBytes([]byte(botToken), []byte(webAppDataKey))

	v := &Verifier{hasher: utils.NewHasher(signingKey)}
	for _, opt := range opts {
		opt(v)
	}

	return v, nil
}

// Verify validates raw against the bot secret with default options.
// It is a convenience wrapper around [NewVerifier] and [Verifier.Verify].
func Verify(raw, botToken string) (InitData, error) {
	v, err := NewVerifier(botToken)
	if err != nil {
		return InitData{}, err
	}

	return v.Verify(raw)
}

// Verify parses raw, recomputes its signature and, on a match, returns the
// signed fields with `user` decoded.
//
// It returns [ErrMalformedPayload] for structural parse failures and
// [ErrSignatureMismatch] when the `hash` field is absent or does not match.
func (v *Verifier) Verify(raw string) (InitData, error) {
	fields, err := v.parse(raw)
	if err != nil {
		return InitData{}, err
	}

	receivedHash := fields[KeyHash]
	delete(fields, KeyHash)

	expectedHash := v.hasher.SumHex([]byte(checkString(fields)))
	if !hmac.Equal([]byte(expectedHash), []byte(receivedHash)) {
		return InitData{}, ErrSignatureMismatch
	}

	result := InitData{Fields: fields}

	if rawUser, ok := fields[KeyUser]; ok {
		delete(fields, KeyUser)

		user := new(models.TelegramUser)
		if err := json.Unmarshal([]byte(rawUser), user); err != nil {
			user = new(models.TelegramUser)
			result.UserDegraded = true
		}
		result.User = user
	}

	return result, nil
}

// parse splits raw into its key/value segments.
func (v *Verifier) parse(raw string) (map[string]string, error) {
	segments := strings.Split(raw, "&")
	fields := make(map[string]string, len(segments))

	for i, segment := range segments {
		key, value, ok := strings.Cut(segment, "=")
		if !ok {
			return nil, fmt.Errorf("%w: segment %d has no '='", ErrMalformedPayload, i)
		}

		if v.decodeValues {
			var err error
			if key, err = url.QueryUnescape(key); err != nil {
				return nil, fmt.Errorf("%w: segment %d has an invalid key escape", ErrMalformedPayload, i)
			}
			if value, err = url.QueryUnescape(value); err != nil {
				return nil, fmt.Errorf("%w: segment %d has an invalid value escape", ErrMalformedPayload, i)
			}
		}

		if _, exists := fields[key]; exists {
			return nil, fmt.Errorf("%w: duplicate key %q", ErrMalformedPayload, key)
		}
		fields[key] = value
	}

	return fields, nil
}

// checkString joins fields as `key=value` lines sorted by key, without a
// trailing newline.
func checkString(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(fields[k])
	}

	return b.String()
}
