// Package common contains shared sentinel errors used across BlogSite
// client components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Backend response mapping.
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnavailable  = errors.New("server unavailable")

	// Local (pre-request) validation failures.
	ErrValidation = errors.New("validation error")

	// Generic internal flow control.
	ErrInternal = errors.New("internal error")
)
