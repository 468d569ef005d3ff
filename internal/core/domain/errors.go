package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSourceUnavailable indicates the document supplier could not be
	// reached during index construction. This is the only failure the
	// core propagates to the caller; the caller may retry.
	ErrSourceUnavailable = errors.New("document source unavailable")

	// ErrSessionClosed indicates input arrived on a closed query session.
	ErrSessionClosed = errors.New("session closed")

	// ErrAuthRequired indicates the supplier requires a token but none
	// is configured.
	ErrAuthRequired = errors.New("authentication required")

	// ErrRateLimited indicates the supplier API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
