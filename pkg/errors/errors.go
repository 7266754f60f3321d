// Package errors provides structured error types for the canvas engine.
//
// Core operations never panic on bad input. They return an *Error whose
// [Code] tells the caller what kind of no-op happened, and callers are free
// to ignore it:
//
//	if err := layout.Align(store, geom.Vertical); errors.Is(err, errors.ErrCodeDegenerateSelection) {
//	    // fewer than two elements selected, nothing moved
//	}
//
// Codes follow a loose naming convention:
//   - INVALID_*: references or input that do not resolve
//   - *_STATE: gesture or persisted state that cannot be used
//   - PERSISTENCE / INTERNAL_ERROR: storage and unexpected failures
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput     Code = "INVALID_INPUT"
	ErrCodeInvalidReference Code = "INVALID_REFERENCE"
	ErrCodeInvalidKey       Code = "INVALID_KEY"

	// Selection and element state
	ErrCodeDegenerateSelection Code = "DEGENERATE_SELECTION"
	ErrCodeLocked              Code = "LOCKED"
	ErrCodeGestureState        Code = "GESTURE_STATE"

	// Storage errors
	ErrCodePersistence    Code = "PERSISTENCE"
	ErrCodeMalformedState Code = "MALFORMED_STATE"
	ErrCodeNotFound       Code = "NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err carries the given code anywhere in its chain.
func Is(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}
	return false
}

// GetCode extracts the outermost error code, or "" if err is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// Unknown builds the INVALID_REFERENCE error returned for ids that do not
// resolve to a live element.
func Unknown(id string) *Error {
	return New(ErrCodeInvalidReference, "unknown element %q", id)
}

// Degenerate builds the DEGENERATE_SELECTION error for an operation that
// needs at least want selected elements.
func Degenerate(op string, have, want int) *Error {
	return New(ErrCodeDegenerateSelection, "%s needs at least %d selected elements, have %d", op, want, have)
}
