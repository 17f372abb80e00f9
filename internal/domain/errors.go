package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. negative duration, tag name too long).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned by repo functions when a write violates a
// uniqueness constraint, e.g. two callers creating the same tag name at once.
// The row already exists, so callers may reload it and retry.
// Handlers should map this to HTTP 409.
var ErrConflict = errors.New("conflict")
