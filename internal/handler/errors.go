package handler

import (
	"errors"
	"strings"

	"github.com/wandermap/tripsuggest/internal/domain"
)

// errorDetail is the machine-readable error code plus a human message.
type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorResponse is the uniform error body for all endpoints.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

func isNotFound(err error) bool   { return errors.Is(err, domain.ErrNotFound) }
func isValidation(err error) bool { return errors.Is(err, domain.ErrValidation) }

// notFoundBody returns an errorResponse for a missing resource.
// The caller supplies the human-readable message (e.g. "trip not found")
// because the handler is the layer that knows what was being looked up.
func notFoundBody(message string) errorResponse {
	return errorResponse{Error: errorDetail{Code: "not_found", Message: message}}
}

// validationBody returns an errorResponse for a domain validation failure.
// The message is extracted from the wrapped domain.ErrValidation error.
func validationBody(err error) errorResponse {
	return errorResponse{Error: errorDetail{Code: "validation_error", Message: unwrapMessage(err)}}
}

// requestBody returns an errorResponse for a bad request rejected before
// reaching the service layer (e.g. missing or malformed body).
func requestBody(message string) errorResponse {
	return errorResponse{Error: errorDetail{Code: "validation_error", Message: message}}
}

// internalBody returns the opaque 500 response; details stay in the log.
func internalBody() errorResponse {
	return errorResponse{Error: errorDetail{Code: "internal_error", Message: "internal server error"}}
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel
// error, e.g. "service.TripService.Create: validation error: country name is
// required" → "country name is required".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	const marker = "validation error: "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}
