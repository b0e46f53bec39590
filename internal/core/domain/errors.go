package domain

import "errors"

// Domain errors represent content access failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested content source does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMalformedContent indicates a content source could not be parsed.
	// The whole source is skipped; the feed never carries partial sources.
	ErrMalformedContent = errors.New("malformed content")
)
