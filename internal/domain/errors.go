package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing country, end date before visit date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
//
// Note that unparseable text is NOT a validation error: the parser degrades
// to zero suggestions and the parse endpoints return an empty array.
var ErrValidation = errors.New("validation error")
