// Package apierror provides the standardized error envelope for the API.
// All errors returned to clients go through this package to ensure
// consistency and to prevent leaking internal details.
package apierror

import (
	"errors"
	"net/http"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
// Status travels with the error but stays out of the JSON body.
type APIError struct {
	Status int    `json:"-"`
	Detail string `json:"detail"`
}

func (e *APIError) Error() string {
	return e.Detail
}

func New(status int, msg string) *APIError {
	return &APIError{Status: status, Detail: msg}
}

// NotFound marks an entity id that does not resolve.
func NotFound(msg string) *APIError {
	return New(http.StatusNotFound, msg)
}

// Validation marks missing/malformed input or a business-rule violation.
func Validation(msg string) *APIError {
	return New(http.StatusBadRequest, msg)
}

// Conflict marks an operation against an entity in the wrong state, like
// editing a completed order or double-paying a debt.
func Conflict(msg string) *APIError {
	return New(http.StatusBadRequest, msg)
}

func Internal(msg string) *APIError {
	return New(http.StatusInternalServerError, msg)
}

// StatusOf extracts the HTTP status carried by err, defaulting to 500.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return http.StatusInternalServerError
}

// ValidationError wraps multiple field errors from request binding.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}
