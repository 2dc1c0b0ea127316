package pauli

import (
	"fmt"
	"math/cmplx"
)

// Phase is a global factor from {+1, +i, -1, -i}, stored as the power of i.
type Phase uint8

// The four phases, in the order used by [Compare].
const (
	PlusOne Phase = iota
	PlusI
	MinusOne
	MinusI
)

var phaseText = [4]string{"+1", "+i", "-1", "-i"}

// Mul returns p·q.
func (p Phase) Mul(q Phase) Phase { return (p + q) & 3 }

// Conj returns the complex conjugate of p.
func (p Phase) Conj() Phase { return (4 - p&3) & 3 }

// Neg returns -p.
func (p Phase) Neg() Phase { return p.Mul(MinusOne) }

// Complex returns p as a complex scalar.
func (p Phase) Complex() complex128 {
	switch p & 3 {
	case PlusI:
		return 1i
	case MinusOne:
		return -1
	case MinusI:
		return -1i
	}
	return 1
}

// String returns "+1", "+i", "-1" or "-i".
func (p Phase) String() string { return phaseText[p&3] }

// prefix returns the compact prefix used in Phased text: "+", "+i", "-", "-i".
func (p Phase) prefix() string {
	switch p & 3 {
	case PlusI:
		return "+i"
	case MinusOne:
		return "-"
	case MinusI:
		return "-i"
	}
	return "+"
}

// ParsePhase parses "+1", "1", "+i", "i", "-1", "-i".
func ParsePhase(s string) (Phase, error) {
	switch s {
	case "+1", "1", "+":
		return PlusOne, nil
	case "+i", "i":
		return PlusI, nil
	case "-1", "-":
		return MinusOne, nil
	case "-i":
		return MinusI, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPhase, s)
}

// PhaseFromComplex converts c to a Phase. c must be within 1e-9 of one of
// the four phases.
func PhaseFromComplex(c complex128) (Phase, error) {
	const eps = 1e-9
	for p := PlusOne; p <= MinusI; p++ {
		if cmplx.Abs(c-p.Complex()) < eps {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %v", ErrInvalidPhase, c)
}

// MarshalText implements encoding.TextMarshaler.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Phase) UnmarshalText(text []byte) error {
	v, err := ParsePhase(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
