// Package apperr defines the closed set of error kinds the service layer
// produces. Handlers map kinds to HTTP statuses; nobody matches on message
// text.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	// Validation covers malformed input rejected before any storage call.
	Validation Kind = iota
	// Conflict is a uniqueness violation; Field names the offending column.
	Conflict
	NotFound
	// Auth is a failed login. Wrong password and unknown account share it.
	Auth
	Internal
)

type Error struct {
	Kind  Kind
	Field string
	Msg   string
	Err   error
}

func (e *Error) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

func (e *Error) Unwrap() error { return e.Err }

func Validationf(format string, args ...any) *Error {
	return &Error{Kind: Validation, Msg: fmt.Sprintf(format, args...)}
}

func Conflictf(field, format string, args ...any) *Error {
	return &Error{Kind: Conflict, Field: field, Msg: fmt.Sprintf(format, args...)}
}

func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: NotFound, Msg: fmt.Sprintf(format, args...)}
}

func Authf(format string, args ...any) *Error {
	return &Error{Kind: Auth, Msg: fmt.Sprintf(format, args...)}
}

func Internalf(err error, format string, args ...any) *Error {
	return &Error{Kind: Internal, Msg: fmt.Sprintf(format, args...), Err: err}
}

// KindOf reports the kind of err. Errors that are not *Error count as
// Internal so unexpected failures never leak details to the client.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

func IsNotFound(err error) bool { return KindOf(err) == NotFound }
