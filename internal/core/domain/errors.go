package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAlreadyLoaded indicates a second load of the write-once record store.
	ErrAlreadyLoaded = errors.New("record store already loaded")

	// ErrNotLoaded indicates the record store has not finished loading.
	ErrNotLoaded = errors.New("record store not loaded")

	// Source Errors.

	// ErrSourceUnavailable indicates the data file could not be fetched.
	ErrSourceUnavailable = errors.New("record source unavailable")

	// ErrMalformedData indicates the data file could not be parsed.
	ErrMalformedData = errors.New("malformed record data")

	// Action Errors.

	// ErrNoSourceURL indicates the record has no external link to open.
	ErrNoSourceURL = errors.New("record has no source url")

	// ErrUnsupportedPlatform indicates clipboard or opener support is missing.
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)
