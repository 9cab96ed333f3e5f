// File: error.go
// Title: Core Error Implementation
// Description: Implements the structured Error type used across the qLib
//              foundation. Errors carry a code, the failed operation and a
//              detail map while staying compatible with Go's standard
//              errors package (Unwrap, Is, As).
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-02-10
//
// Change History:
// - 2025-02-10 v0.1.0: Initial implementation with contextual errors

package error

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Error represents a structured error with code, operation and metadata
type Error struct {
	message   string
	cause     error
	code      Code
	operation string
	details   map[string]any
}

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message: message,
		code:    CodeUnknown,
	}
}

// Newf creates a new Error with a formatted message
func Newf(format string, args ...any) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with an additional message. Wrapping nil
// returns nil so call sites can wrap unconditionally.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}
	wrapped := &Error{
		message: message,
		cause:   err,
		code:    CodeUnknown,
	}
	// Preserve classification when wrapping one of our own errors
	var qerr *Error
	if errors.As(err, &qerr) {
		wrapped.code = qerr.code
	}
	return wrapped
}

// WithCode sets the error code
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	return e
}

// WithOperation records the operation that failed, e.g. "config.Load"
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// WithDetail attaches a key/value pair of diagnostic metadata
func (e *Error) WithDetail(key string, value any) *Error {
	if e.details == nil {
		e.details = make(map[string]any)
	}
	e.details[key] = value
	return e
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Operation returns the recorded operation
func (e *Error) Operation() string {
	return e.operation
}

// Details returns the diagnostic metadata map (may be nil)
func (e *Error) Details() map[string]any {
	return e.details
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder
	if e.operation != "" {
		b.WriteString(e.operation)
		b.WriteString(": ")
	}
	b.WriteString(e.message)
	if len(e.details) > 0 {
		keys := make([]string, 0, len(e.details))
		for k := range e.details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteString(" (")
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s=%v", k, e.details[k])
		}
		b.WriteString(")")
	}
	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}
	return b.String()
}

// Unwrap returns the wrapped cause for errors.Is / errors.As chains
func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches another *Error by code, enabling sentinel-style comparisons
// against template errors created with New("").WithCode(...)
func (e *Error) Is(target error) bool {
	var qerr *Error
	if !errors.As(target, &qerr) {
		return false
	}
	return e.code == qerr.code && (qerr.message == "" || qerr.message == e.message)
}

// CodeOf extracts the code from any error, returning CodeUnknown for
// errors outside this package
func CodeOf(err error) Code {
	var qerr *Error
	if errors.As(err, &qerr) {
		return qerr.code
	}
	return CodeUnknown
}
