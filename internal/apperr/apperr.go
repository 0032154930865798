// Package apperr defines the error kinds surfaced by the inference and chart
// paths and their HTTP status mapping.
package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies an error for callers.
type Kind string

const (
	KindInternal           Kind = "INTERNAL"
	KindBadRequest         Kind = "BAD_REQUEST"
	KindServiceUnavailable Kind = "SERVICE_UNAVAILABLE"
	KindNotFound           Kind = "NOT_FOUND"
	KindUnrenderable       Kind = "UNRENDERABLE"
)

// Error carries a Kind, a message and an optional cause.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error returns the raw message, followed by the cause when there is one.
// Inference errors are surfaced verbatim, so no kind prefix is added.
func (e *Error) Error() string {
	switch {
	case e.Message == "" && e.Cause != nil:
		return e.Cause.Error()
	case e.Cause != nil:
		return e.Message + ": " + e.Cause.Error()
	default:
		return e.Message
	}
}

func (e *Error) Unwrap() error { return e.Cause }

// Is matches any *Error of the same kind, so errors.Is(err, apperr.ErrNotFound) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Message == "" && t.Cause == nil && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrBadRequest         = &Error{Kind: KindBadRequest}
	ErrServiceUnavailable = &Error{Kind: KindServiceUnavailable}
	ErrNotFound           = &Error{Kind: KindNotFound}
	ErrUnrenderable       = &Error{Kind: KindUnrenderable}
)

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches kind to err keeping err's text as the message.
func Wrap(kind Kind, err error) *Error {
	return &Error{Kind: kind, Cause: err}
}

func BadRequest(err error) *Error { return Wrap(KindBadRequest, err) }

func NotFound(message string) *Error { return New(KindNotFound, message) }

func Unrenderable(message string) *Error { return New(KindUnrenderable, message) }

func ServiceUnavailable(message string) *Error { return New(KindServiceUnavailable, message) }

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// HTTPStatus maps err's kind onto a status code.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindServiceUnavailable:
		return http.StatusServiceUnavailable
	case KindNotFound:
		return http.StatusNotFound
	case KindUnrenderable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
