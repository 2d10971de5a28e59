// Package apperr defines the error taxonomy shared by every store and handler.
//
// Exactly three caller-visible kinds exist — NotFound, InvalidArgument, and
// Unauthenticated — plus Internal for everything else. Handlers map kinds to
// HTTP status codes; the kinds are never collapsed into a generic failure.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for callers.
type Kind int

const (
	// Internal is the default for unexpected failures (DB errors, bugs).
	Internal Kind = iota
	// NotFound means the referenced user, profile, or roster entry does not
	// exist where the operation requires it to.
	NotFound
	// InvalidArgument means a supplied value violates a stated precondition
	// (negative XP amount, empty badge name, bad role).
	InvalidArgument
	// Unauthenticated means an operation that requires a resolved identity
	// received none.
	Unauthenticated
)

// Error carries a kind and a caller-safe message.
type Error struct {
	Kind Kind
	Msg  string
	Err  error // wrapped cause, optional
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// New builds an error of the given kind.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Newf builds an error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to an underlying cause.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf extracts the kind from err. Non-apperr errors are Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// IsNotFound reports whether err is a NotFound error.
func IsNotFound(err error) bool { return KindOf(err) == NotFound }

// IsInvalidArgument reports whether err is an InvalidArgument error.
func IsInvalidArgument(err error) bool { return KindOf(err) == InvalidArgument }

// IsUnauthenticated reports whether err is an Unauthenticated error.
func IsUnauthenticated(err error) bool { return KindOf(err) == Unauthenticated }

// HTTPStatus maps a kind to its HTTP status code.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case NotFound:
		return http.StatusNotFound
	case InvalidArgument:
		return http.StatusBadRequest
	case Unauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the caller-safe message for err. Internal errors get a
// generic message so DB details never leak to clients.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != Internal {
		return e.Msg
	}
	return "internal error"
}
