package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error into the fixed taxonomy the HTTP layer maps
// onto status codes. Control flow branches on Kind, never on message text.
type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindConflict
	KindRateLimited
)

type AppError struct {
	Kind    Kind
	Message string
	Details any
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func (e *AppError) StatusCode() int {
	switch e.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func New(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

func BadRequest(message string) *AppError   { return New(KindBadRequest, message) }
func Unauthorized(message string) *AppError { return New(KindUnauthorized, message) }
func Forbidden(message string) *AppError    { return New(KindForbidden, message) }
func NotFound(message string) *AppError     { return New(KindNotFound, message) }
func Conflict(message string) *AppError     { return New(KindConflict, message) }

func Internal(err error) *AppError {
	return &AppError{Kind: KindInternal, Message: "Internal Server Error", Err: err}
}

func (e *AppError) WithDetails(details any) *AppError {
	e.Details = details
	return e
}

// From normalizes any error into an *AppError. Errors that are not
// already classified become KindInternal so no internal detail leaks
// past the handler boundary.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}
