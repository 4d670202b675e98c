// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package initdata

import (
	"strconv"
	"time"

	"github.com/MKhiriev/xbanking-gateway/models"
)

// Well-known init data keys.
const (
	KeyHash     = "hash"
	KeyUser     = "user"
	KeyAuthDate = "auth_date"
	KeyQueryID  = "query_id"
)

// InitData is the authenticated result of a successful verification.
type InitData struct {
	// Fields holds every signed field except `hash` and `user`, with values
	// exactly as they were signed.
	Fields map[string]string

	// User is the decoded `user` record. It is nil when the payload had no
	// `user` field.
	User *models.TelegramUser

	// UserDegraded reports that a `user` field was present but could not be
	// decoded, so User holds an empty record.
	UserDegraded bool
}

// Get returns the signed value stored under key. The `user` field is not
// available through Get; use the User field instead.
func (d InitData) Get(key string) (string, bool) {
	v, ok := d.Fields[key]
	return v, ok
}

// QueryID returns the `query_id` field, or an empty string.
func (d InitData) QueryID() string {
	return d.Fields[KeyQueryID]
}

// AuthDate parses the `auth_date` field as a Unix timestamp.
// ok is false when the field is absent or not an integer.
func (d InitData) AuthDate() (t time.Time, ok bool) {
	raw, found := d.Fields[KeyAuthDate]
	if !found {
		return time.Time{}, false
	}

	sec, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, false
	}

	return time.Unix(sec, 0).UTC(), true
}
