// Copyright (c) 2025 Mikhail Lebedev.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"errors"
	"strings"
)

var (
	// ErrMalformedHeader reports a header that is not "Bearer <token>"
	ErrMalformedHeader = errors.New("malformed authentication header")
	// ErrWrongToken reports a well-formed header with the wrong token
	ErrWrongToken = errors.New("wrong access token")
)

// VerifyBearer checks a static bearer token carried in an
// Authentication header value. The comparison is constant-time.
func VerifyBearer(header, token string) error {
	value, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || value == "" || strings.Contains(value, " ") {
		return ErrMalformedHeader
	}
	if !hmac.Equal([]byte(value), []byte(token)) {
		return ErrWrongToken
	}
	return nil
}
