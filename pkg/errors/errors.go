package errors

import (
	"errors"
	"fmt"
)

// Error represents a typed domain error surfaced to the user.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code string, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, message string) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// Predefined errors for common scenarios.
var (
	ErrUnsupportedMediaType = New("UNSUPPORTED_MEDIA_TYPE", "selected file is not a JSON document")
	ErrUnparsableDocument   = New("UNPARSABLE_DOCUMENT", "saved document could not be parsed")
	ErrMissingCourses       = New("MISSING_COURSES", "saved document has no courses collection")
	ErrNoValidCourses       = New("NO_VALID_COURSES", "saved document contains no valid courses")
	ErrNothingToRender      = New("NOTHING_TO_RENDER", "no courses available for the transcript")
	ErrNotFound             = New("NOT_FOUND", "resource not found")
	ErrValidation           = New("VALIDATION_ERROR", "validation failed")
	ErrInternal             = New("INTERNAL_ERROR", "internal error")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}
