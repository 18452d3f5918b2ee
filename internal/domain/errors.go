package domain

import "errors"

// ErrNotFound is returned by service functions when the requested record does
// not exist. The store's state is left untouched.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing title, end date before start date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned when an operation would break a reference held by
// other records, such as deleting a gear category that items still use.
// Handlers should map this to HTTP 409.
var ErrConflict = errors.New("conflict")
