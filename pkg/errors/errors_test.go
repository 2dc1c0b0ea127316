package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidShape, "row %d has %d entries", 1, 2)

	if err.Code != ErrCodeInvalidShape {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidShape)
	}

	if err.Message != "row 1 has 2 entries" {
		t.Errorf("Message = %v, want %v", err.Message, "row 1 has 2 entries")
	}

	expected := "INVALID_SHAPE: row 1 has 2 entries"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeLengthMismatch, cause, "multiply")

	if err.Code != ErrCodeLengthMismatch {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeLengthMismatch)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	if unwrapped := errors.Unwrap(err); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	expected := "LENGTH_MISMATCH: multiply: underlying error"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInvalidShape, "test"),
			code:     ErrCodeInvalidShape,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidShape, "test"),
			code:     ErrCodeTooManyQubits,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeMalformedGenerators, New(ErrCodeInvalidInput, "inner"), "outer"),
			code:     ErrCodeMalformedGenerators,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidSymmetry, "test"),
			expected: ErrCodeInvalidSymmetry,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidInput, "friendly message"),
			expected: "friendly message",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCollisionError(t *testing.T) {
	err := &CollisionError{First: 0b001, Second: 0b110, Qubits: 3, Pauli: "+XZZ"}

	if err.Code() != ErrCodeMalformedGenerators {
		t.Errorf("Code() = %v, want %v", err.Code(), ErrCodeMalformedGenerators)
	}

	msg := err.Error()
	for _, want := range []string{"001", "110", "+XZZ"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, want it to contain %q", msg, want)
		}
	}
}
