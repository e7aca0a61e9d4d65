package apperr

import "errors"

type Code string

const (
	CodeValidation   Code = "validation"
	CodeConflict     Code = "conflict"
	CodeNotFound     Code = "not_found"
	CodeForbidden    Code = "forbidden"
	CodeUnauthorized Code = "unauthorized"
)

// Error carries a machine-readable code alongside the message so controllers
// can pick the HTTP status without string matching.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Err }

func New(code Code, msg string) *Error {
	return &Error{Code: code, Message: msg}
}

func Wrap(code Code, msg string, err error) *Error {
	return &Error{Code: code, Message: msg, Err: err}
}

func Validation(msg string) *Error   { return New(CodeValidation, msg) }
func Conflict(msg string) *Error     { return New(CodeConflict, msg) }
func NotFound(msg string) *Error     { return New(CodeNotFound, msg) }
func Forbidden(msg string) *Error    { return New(CodeForbidden, msg) }
func Unauthorized(msg string) *Error { return New(CodeUnauthorized, msg) }

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// CodeOf returns the code of err, or empty when err is not a domain error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
