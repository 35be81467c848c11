package util

import (
	"errors"
	"fmt"
	"net/http"
)

// DomainError standardizes application errors. The Message is the full
// client-facing error string; the wrapped cause is never surfaced past the
// response boundary.
type DomainError struct {
	Message    string
	HTTPStatus int
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewNotFound reports an absent entity, e.g. "User not found".
func NewNotFound(entity string) error {
	return &DomainError{
		Message:    fmt.Sprintf("%s not found", entity),
		HTTPStatus: http.StatusNotFound,
	}
}

// NewValidation reports a rejected request payload.
func NewValidation(message string) error {
	return &DomainError{Message: message, HTTPStatus: http.StatusBadRequest}
}

// NewUnauthorized reports a failed session check.
func NewUnauthorized(message string) error {
	return &DomainError{Message: message, HTTPStatus: http.StatusUnauthorized}
}

// NewInternal wraps an unexpected failure behind a fixed per-operation
// message such as "Failed to fetch orders".
func NewInternal(message string, err error) error {
	return &DomainError{
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Message:    "Internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}
