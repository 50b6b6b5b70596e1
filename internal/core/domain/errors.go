package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrStoreUnavailable indicates a profile database could not be
	// opened (missing file, exclusive lock held by Firefox, or
	// corruption). It is non-fatal: the profile is skipped for the
	// current operation and the search continues.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)
