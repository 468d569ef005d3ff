package tui

import "errors"

// Wiring errors returned by Ports.Validate.
var (
	// ErrMissingSession indicates no query session was provided.
	ErrMissingSession = errors.New("query session is required")

	// ErrMissingResults indicates no results channel was provided.
	ErrMissingResults = errors.New("results channel is required")
)
