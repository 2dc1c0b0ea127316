package pauli

import "errors"

var (
	// ErrLengthMismatch is returned when two Pauli strings of different
	// lengths are multiplied. Strings are never truncated or padded.
	ErrLengthMismatch = errors.New("pauli: length mismatch")

	// ErrInvalidSymbol is returned when parsing a letter outside IXYZ.
	ErrInvalidSymbol = errors.New("pauli: invalid symbol")

	// ErrInvalidPhase is returned when parsing a phase outside {±1, ±i}.
	ErrInvalidPhase = errors.New("pauli: invalid phase")
)
