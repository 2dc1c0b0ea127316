package pauli

import (
	"cmp"
	"encoding/json"
	"fmt"
	"strings"
)

// Phased is a Pauli string with a global phase: one element of a stabilizer
// group.
type Phased struct {
	Pauli String
	Phase Phase
}

// NewIdentity returns (I…I, +1) on n qubits.
func NewIdentity(n int) Phased {
	return Phased{Pauli: Identity(n), Phase: PlusOne}
}

// Mul returns e·o. Phases multiply and the string product contributes its
// own phase.
func (e Phased) Mul(o Phased) (Phased, error) {
	p, ph, err := MultiplyStrings(e.Pauli, o.Pauli)
	if err != nil {
		return Phased{}, err
	}
	return Phased{Pauli: p, Phase: e.Phase.Mul(o.Phase).Mul(ph)}, nil
}

// MulInPlace replaces e with e·o, reusing e's storage.
func (e *Phased) MulInPlace(o String) error {
	if len(e.Pauli) != len(o) {
		return lengthMismatch(len(e.Pauli), len(o))
	}
	ph := mulInto(e.Pauli, e.Pauli, o)
	e.Phase = e.Phase.Mul(ph)
	return nil
}

// Clone returns a copy of e that shares no storage.
func (e Phased) Clone() Phased {
	return Phased{Pauli: e.Pauli.Clone(), Phase: e.Phase}
}

// Equal reports whether e and o have the same string and phase.
func (e Phased) Equal(o Phased) bool {
	return e.Phase == o.Phase && e.Pauli.Equal(o.Pauli)
}

// Key returns a compact map key for e.
func (e Phased) Key() string {
	return e.Phase.prefix() + e.Pauli.String()
}

// String returns e as "+XZZ", "-iYY", "+I" and so on. The zero-qubit
// identity is "+".
func (e Phased) String() string {
	return e.Key()
}

// Compare orders by string first, then by phase (+1 < +i < -1 < -i).
func Compare(a, b Phased) int {
	if c := compareStrings(a.Pauli, b.Pauli); c != 0 {
		return c
	}
	return cmp.Compare(a.Phase, b.Phase)
}

// ParsePhased parses the output of Phased.String: a sign prefix of "+", "-",
// "+i" or "-i" followed by uppercase Pauli letters. A lowercase "i" right after
// the sign is always read as the imaginary unit.
func ParsePhased(text string) (Phased, error) {
	var ph Phase
	rest := text
	switch {
	case strings.HasPrefix(rest, "+i"):
		ph, rest = PlusI, rest[2:]
	case strings.HasPrefix(rest, "-i"):
		ph, rest = MinusI, rest[2:]
	case strings.HasPrefix(rest, "+"):
		ph, rest = PlusOne, rest[1:]
	case strings.HasPrefix(rest, "-"):
		ph, rest = MinusOne, rest[1:]
	default:
		return Phased{}, fmt.Errorf("%w: missing sign in %q", ErrInvalidPhase, text)
	}
	p, err := Parse(rest)
	if err != nil {
		return Phased{}, err
	}
	return Phased{Pauli: p, Phase: ph}, nil
}

type phasedJSON struct {
	Pauli string     `json:"pauli"`
	Phase Phase      `json:"phase"`
	Value [2]float64 `json:"value"`
}

// MarshalJSON encodes e as {"pauli":"XZZ","phase":"+1","value":[1,0]}, where
// value is the phase as [real, imag].
func (e Phased) MarshalJSON() ([]byte, error) {
	c := e.Phase.Complex()
	return json.Marshal(phasedJSON{
		Pauli: e.Pauli.String(),
		Phase: e.Phase,
		Value: [2]float64{real(c), imag(c)},
	})
}

// UnmarshalJSON decodes the MarshalJSON format. The value field is ignored.
func (e *Phased) UnmarshalJSON(data []byte) error {
	var raw phasedJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p, err := Parse(raw.Pauli)
	if err != nil {
		return err
	}
	e.Pauli = p
	e.Phase = raw.Phase
	return nil
}
