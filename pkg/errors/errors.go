// Package errors provides structured error types for graphstab.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and library packages
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures (matrix shape, symmetry, file format)
//   - LENGTH_MISMATCH, MALFORMED_GENERATORS, TOO_MANY_QUBITS: algebra failures
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidShape, "row %d has %d entries, want %d", i, len(row), n)
//	if errors.Is(err, errors.ErrCodeInvalidShape) {
//	    // Handle malformed matrix
//	}
//
//	// Wrap a package sentinel so both errors.Is checks keep working
//	err := errors.Wrap(errors.ErrCodeLengthMismatch, pauli.ErrLengthMismatch, "lengths %d and %d", a, b)
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
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidShape    Code = "INVALID_SHAPE"
	ErrCodeInvalidSymmetry Code = "INVALID_SYMMETRY"
	ErrCodeInvalidDiagonal Code = "INVALID_DIAGONAL"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidPath     Code = "INVALID_PATH"

	// Algebra errors
	ErrCodeLengthMismatch      Code = "LENGTH_MISMATCH"
	ErrCodeMalformedGenerators Code = "MALFORMED_GENERATORS"
	ErrCodeTooManyQubits       Code = "TOO_MANY_QUBITS"

	// Resource not found errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// CollisionError reports two coefficient vectors that produced the same
// group element. It carries the vectors so callers can point at the
// dependent generators.
type CollisionError struct {
	First  uint64 // earlier coefficient vector, bit i selects generator i
	Second uint64 // later coefficient vector
	Qubits int    // number of generators
	Pauli  string // colliding element in text form
}

// Error implements the error interface.
func (e *CollisionError) Error() string {
	return fmt.Sprintf("coefficient vectors %0*b and %0*b both yield %s",
		e.Qubits, e.First, e.Qubits, e.Second, e.Pauli)
}

// Code returns the error code for this error type.
func (e *CollisionError) Code() Code {
	return ErrCodeMalformedGenerators
}
