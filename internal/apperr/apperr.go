// Package apperr defines the error taxonomy shared by repositories, services
// and handlers. Storage-level failures are re-typed at the repository boundary
// so raw database errors never reach a response body.
package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies an error into the taxonomy the HTTP layer understands
type Kind int

const (
	KindValidation Kind = iota + 1
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindConflict
	KindInternal
)

// Error carries a user-facing message plus optional per-field detail
type Error struct {
	Kind    Kind
	Message string
	Errors  []string
}

func (e *Error) Error() string {
	return e.Message
}

// HTTPStatus maps the error kind to its response status code
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Validation builds a 400 error with the individual rule failures
func Validation(message string, details ...string) *Error {
	return &Error{Kind: KindValidation, Message: message, Errors: details}
}

// Unauthenticated builds a 401 error
func Unauthenticated(message string) *Error {
	return &Error{Kind: KindUnauthenticated, Message: message}
}

// Forbidden builds a 403 error
func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

// NotFound builds a 404 error
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Conflict builds a 409 error for foreign-key dependency rejections
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Internal builds a 500 error. The message should stay generic; details
// belong in the log, not the response.
func Internal(message string) *Error {
	return &Error{Kind: KindInternal, Message: message}
}

// From normalizes any error into an *Error. Unknown errors become a generic
// internal error so storage and transport internals never leak.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("Something went wrong")
}

// IsKind reports whether err is an *Error of the given kind
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}

// IsNotFound reports whether err is a not-found error
func IsNotFound(err error) bool {
	return IsKind(err, KindNotFound)
}

// IsConflict reports whether err is a conflict error
func IsConflict(err error) bool {
	return IsKind(err, KindConflict)
}
