package pauli

import (
	"slices"
	"strings"

	errs "github.com/matzehuels/graphstab/pkg/errors"
)

// String is an ordered sequence of Pauli symbols; position k acts on qubit k.
type String []Symbol

// Identity returns the all-I string on n qubits. Identity(0) is the empty
// string.
func Identity(n int) String {
	return make(String, n)
}

// Parse converts text such as "XZZ" into a String. Letters are
// case-insensitive. The empty text parses to the empty string.
func Parse(text string) (String, error) {
	out := make(String, 0, len(text))
	for _, r := range text {
		s, err := ParseSymbol(r)
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "parse pauli string %q", text)
		}
		out = append(out, s)
	}
	return out, nil
}

// MustParse is like Parse but panics on error. Intended for literals in
// tests and examples.
func MustParse(text string) String {
	p, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the letters of p, e.g. "XZZ".
func (p String) String() string {
	var b strings.Builder
	b.Grow(len(p))
	for _, s := range p {
		b.WriteString(s.String())
	}
	return b.String()
}

// Clone returns an independent copy of p.
func (p String) Clone() String {
	return slices.Clone(p)
}

// Equal reports whether p and q are the same string.
func (p String) Equal(q String) bool {
	return slices.Equal(p, q)
}

// IsIdentity reports whether every position of p is I.
func (p String) IsIdentity() bool {
	for _, s := range p {
		if s != I {
			return false
		}
	}
	return true
}

// Weight returns the number of non-identity positions.
func (p String) Weight() int {
	n := 0
	for _, s := range p {
		if s != I {
			n++
		}
	}
	return n
}

// MultiplyStrings returns p1·p2 and the accumulated phase. It fails with
// ErrLengthMismatch (code LENGTH_MISMATCH) when the lengths differ.
func MultiplyStrings(p1, p2 String) (String, Phase, error) {
	if len(p1) != len(p2) {
		return nil, PlusOne, lengthMismatch(len(p1), len(p2))
	}
	out := make(String, len(p1))
	phase := mulInto(out, p1, p2)
	return out, phase, nil
}

// mulInto writes a·b into dst and returns the accumulated phase. dst may alias
// a. The caller guarantees equal lengths.
func mulInto(dst, a, b String) Phase {
	phase := PlusOne
	for k := range a {
		s, ph := MultiplySymbol(a[k], b[k])
		dst[k] = s
		phase = phase.Mul(ph)
	}
	return phase
}

// Commutes reports whether p and q commute. Two strings commute exactly when
// they anti-commute at an even number of positions.
func Commutes(p, q String) (bool, error) {
	if len(p) != len(q) {
		return false, lengthMismatch(len(p), len(q))
	}
	odd := false
	for k := range p {
		if anticommute(p[k], q[k]) {
			odd = !odd
		}
	}
	return !odd, nil
}

// compareStrings orders strings lexicographically by symbol (I < X < Y < Z);
// a shorter string that is a prefix of a longer one sorts first.
func compareStrings(a, b String) int {
	return slices.Compare(a, b)
}

func lengthMismatch(a, b int) error {
	return errs.Wrap(errs.ErrCodeLengthMismatch, ErrLengthMismatch,
		"cannot multiply %d-qubit string by %d-qubit string", a, b)
}
