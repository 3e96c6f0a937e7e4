// Package common defines shared constants and sentinel errors used across
// client and server layers of todokeeper. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)
