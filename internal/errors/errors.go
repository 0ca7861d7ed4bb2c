package errors

import "fmt"

// Kind represents the type of error
type Kind int

const (
	ErrInternal Kind = iota
	ErrNotFound
	ErrValidation
	ErrNoActiveContext
	ErrStorage
)

// Error is an application-level error with a kind for classification
type Error struct {
	Kind    Kind
	Message string
	Err     error // underlying error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of err if it is an *Error, ErrInternal otherwise.
func KindOf(err error) Kind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return ErrInternal
}

// Constructor functions for common error types

func NotFound(msg string) *Error {
	return &Error{Kind: ErrNotFound, Message: msg}
}

func NotFoundf(format string, args ...interface{}) *Error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

func Validation(msg string) *Error {
	return &Error{Kind: ErrValidation, Message: msg}
}

func Validationf(format string, args ...interface{}) *Error {
	return &Error{Kind: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

// NoActiveContext signals that an operation requiring an open event was
// called with none open.
func NoActiveContext(msg string) *Error {
	return &Error{Kind: ErrNoActiveContext, Message: msg}
}

// Storage wraps a failure from the storage collaborator. The underlying
// error is passed through, not reinterpreted.
func Storage(err error, msg string) *Error {
	return &Error{Kind: ErrStorage, Message: msg, Err: err}
}

func Internal(err error) *Error {
	return &Error{Kind: ErrInternal, Message: "internal error", Err: err}
}

// Wrap wraps an error with additional context
func Wrap(err error, kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}
