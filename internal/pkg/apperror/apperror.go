// Package apperror carries the business error taxonomy of the admin service.
package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies an error for transport mapping
type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindUnauthorized
	KindForbidden
	KindConflict
	KindNotFound
)

// Error is a business error with a client-safe message. Err holds the
// underlying cause for logs and is never rendered.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return "application error"
	}
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches on kind and message so sentinels can be compared with errors.Is
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

func newError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

func BadRequest(message string) *Error { return newError(KindBadRequest, message, nil) }
func Unauthorized(message string) *Error { return newError(KindUnauthorized, message, nil) }
func Forbidden(message string) *Error { return newError(KindForbidden, message, nil) }
func Conflict(message string) *Error { return newError(KindConflict, message, nil) }
func NotFound(message string) *Error { return newError(KindNotFound, message, nil) }

// Internal wraps cause behind a generic client message
func Internal(message string, cause error) *Error {
	return newError(KindInternal, message, cause)
}

// KindOf returns the kind of the first *Error in the chain, or KindInternal
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// HTTPStatus maps err to the status code it should be rendered with
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage is the text a client may see. Untyped errors are normalised.
func PublicMessage(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return "Internal server error"
}
