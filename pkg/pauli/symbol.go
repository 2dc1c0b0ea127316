package pauli

import "fmt"

// Symbol is a single-qubit Pauli operator.
type Symbol uint8

// The four Pauli symbols. The numeric order I < X < Y < Z is the sort order
// used by [Compare].
const (
	I Symbol = iota
	X
	Y
	Z
)

const symbolLetters = "IXYZ"

// String returns the letter for s, or "?" for an invalid symbol.
func (s Symbol) String() string {
	if !s.Valid() {
		return "?"
	}
	return symbolLetters[s : s+1]
}

// Valid reports whether s is one of I, X, Y, Z.
func (s Symbol) Valid() bool { return s <= Z }

// ParseSymbol converts a letter (case-insensitive) to a Symbol.
func ParseSymbol(r rune) (Symbol, error) {
	switch r {
	case 'I', 'i':
		return I, nil
	case 'X', 'x':
		return X, nil
	case 'Y', 'y':
		return Y, nil
	case 'Z', 'z':
		return Z, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, r)
}

// product is one entry of the multiplication table.
type product struct {
	sym   Symbol
	phase Phase
}

// table[a][b] is a·b. Off-diagonal products of distinct non-identity symbols
// carry ±i; the sign flips when the operands are swapped.
var table = [4][4]product{
	I: {I: {I, PlusOne}, X: {X, PlusOne}, Y: {Y, PlusOne}, Z: {Z, PlusOne}},
	X: {I: {X, PlusOne}, X: {I, PlusOne}, Y: {Z, PlusI}, Z: {Y, MinusI}},
	Y: {I: {Y, PlusOne}, X: {Z, MinusI}, Y: {I, PlusOne}, Z: {X, PlusI}},
	Z: {I: {Z, PlusOne}, X: {Y, PlusI}, Y: {X, MinusI}, Z: {I, PlusOne}},
}

// MultiplySymbol returns a·b as a symbol and phase.
// Both arguments must be valid symbols.
func MultiplySymbol(a, b Symbol) (Symbol, Phase) {
	p := table[a][b]
	return p.sym, p.phase
}

// anticommute reports whether two symbols anti-commute: both non-identity and
// different.
func anticommute(a, b Symbol) bool {
	return a != I && b != I && a != b
}
