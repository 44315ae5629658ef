// Package errors provides error handling utilities.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeInput indicates an input validation error
	TypeInput Type = "INPUT_ERROR"

	// TypeUnknownGrade indicates an unrecognized IT grade code
	TypeUnknownGrade Type = "UNKNOWN_GRADE"

	// TypeUnknownDeviation indicates an unrecognized fundamental-deviation letter
	TypeUnknownDeviation Type = "UNKNOWN_DEVIATION"

	// TypeOutOfRange indicates a size outside the 0-3150 mm standard range
	TypeOutOfRange Type = "OUT_OF_RANGE"

	// TypeUndefined indicates a size/deviation/grade combination the
	// standard does not define
	TypeUndefined Type = "UNDEFINED_COMBINATION"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeNotFound indicates a resource not found error
	TypeNotFound Type = "NOT_FOUND"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error is of a specific type
func (e *Error) Is(t Type) bool {
	return e.Type == t
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == t
	}
	return false
}

// Input creates an input error
func Input(message string) *Error {
	return New(TypeInput, message)
}

// UnknownGrade creates an unknown grade error
func UnknownGrade(code string) *Error {
	return Newf(TypeUnknownGrade, "unrecognized IT grade: %q", code)
}

// UnknownDeviation creates an unknown deviation error
func UnknownDeviation(letter string) *Error {
	return Newf(TypeUnknownDeviation, "unrecognized fundamental deviation: %q", letter)
}

// OutOfRange creates an out of range error
func OutOfRange(size float64) *Error {
	return Newf(TypeOutOfRange, "size %g mm is outside the 0-3150 mm standard range", size)
}

// Undefined creates an undefined combination error
func Undefined(size float64, deviation, grade string) *Error {
	return Newf(TypeUndefined, "%s%s is not defined at %g mm", deviation, grade, size)
}

// NotFound creates a not found error
func NotFound(resourceType, identifier string) *Error {
	return Newf(TypeNotFound, "%s not found: %s", resourceType, identifier)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
