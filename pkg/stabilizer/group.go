package stabilizer

import (
	"encoding/json"
	"fmt"
	"iter"
	"slices"

	errs "github.com/matzehuels/graphstab/pkg/errors"
	"github.com/matzehuels/graphstab/pkg/pauli"
)

// Group is a stabilizer group: the sorted, distinct products of every subset
// of its generators. A Group is read-only once built.
type Group struct {
	width      int
	generators []pauli.String
	elements   []pauli.Phased
}

// Len returns the number of elements, 2^N for N generators.
func (g *Group) Len() int { return len(g.elements) }

// Qubits returns the length of every element's Pauli string.
func (g *Group) Qubits() int { return g.width }

// Generators returns a copy of the generators the group was built from.
func (g *Group) Generators() []pauli.String { return cloneStrings(g.generators) }

// At returns the i-th element in sorted order. The returned string must not
// be modified.
func (g *Group) At(i int) pauli.Phased { return g.elements[i] }

// All yields the elements in sorted order. The yielded strings must not be
// modified.
func (g *Group) All() iter.Seq[pauli.Phased] {
	return slices.Values(g.elements)
}

// Elements returns a deep copy of the sorted elements.
func (g *Group) Elements() []pauli.Phased {
	out := make([]pauli.Phased, len(g.elements))
	for i, e := range g.elements {
		out[i] = e.Clone()
	}
	return out
}

// Identity returns (I…I, +1) for the group's width.
func (g *Group) Identity() pauli.Phased { return pauli.NewIdentity(g.width) }

// Contains reports whether e is an element of g.
func (g *Group) Contains(e pauli.Phased) bool {
	_, ok := slices.BinarySearchFunc(g.elements, e, pauli.Compare)
	return ok
}

// Lookup returns the phase with which p appears in g. When the generators
// commute each string appears at most once.
func (g *Group) Lookup(p pauli.String) (pauli.Phase, bool) {
	i, _ := slices.BinarySearchFunc(g.elements, p, func(e pauli.Phased, p pauli.String) int {
		return slices.Compare(e.Pauli, p)
	})
	if i < len(g.elements) && g.elements[i].Pauli.Equal(p) {
		return g.elements[i].Phase, true
	}
	return 0, false
}

// Verify checks the group invariants: 2^N strictly increasing elements of
// equal width, the identity with phase +1, pairwise commuting generators and
// closure under multiplication by every generator. Closure by generators
// implies closure under the whole group since every element is a product of
// generators.
func (g *Group) Verify() error {
	n := len(g.generators)
	if n > errs.MaxQubitsCeiling {
		return errs.New(errs.ErrCodeTooManyQubits, "%d generators exceed the ceiling of %d", n, errs.MaxQubitsCeiling)
	}
	if want := 1 << n; len(g.elements) != want {
		return errs.New(errs.ErrCodeMalformedGenerators, "group has %d elements, want %d", len(g.elements), want)
	}
	for k, e := range g.elements {
		if len(e.Pauli) != g.width {
			return errs.New(errs.ErrCodeLengthMismatch, "element %d has length %d, want %d", k, len(e.Pauli), g.width)
		}
		if k > 0 && pauli.Compare(g.elements[k-1], e) >= 0 {
			return errs.New(errs.ErrCodeInternal, "elements %d and %d are not strictly ordered", k-1, k)
		}
	}
	if !g.Contains(g.Identity()) {
		return errs.New(errs.ErrCodeMalformedGenerators, "identity with phase +1 is missing")
	}
	for i := range g.generators {
		for j := i + 1; j < n; j++ {
			ok, err := pauli.Commutes(g.generators[i], g.generators[j])
			if err != nil {
				return err
			}
			if !ok {
				return errs.New(errs.ErrCodeMalformedGenerators,
					"generators %d (%s) and %d (%s) anti-commute", i, g.generators[i], j, g.generators[j])
			}
		}
	}
	for _, e := range g.elements {
		for i, gen := range g.generators {
			p, err := e.Mul(pauli.Phased{Pauli: gen, Phase: pauli.PlusOne})
			if err != nil {
				return err
			}
			if !g.Contains(p) {
				return errs.New(errs.ErrCodeMalformedGenerators,
					"not closed: %s · generator %d = %s is missing", e, i, p)
			}
		}
	}
	return nil
}

// String returns a short summary such as "group(3 qubits, 8 elements)".
func (g *Group) String() string {
	return fmt.Sprintf("group(%d qubits, %d elements)", g.width, len(g.elements))
}

type groupJSON struct {
	Qubits     int            `json:"qubits"`
	Generators []string       `json:"generators"`
	Elements   []pauli.Phased `json:"elements"`
}

// MarshalJSON encodes the group with its generators and sorted elements.
func (g *Group) MarshalJSON() ([]byte, error) {
	return json.Marshal(groupJSON{
		Qubits:     g.width,
		Generators: FormatGenerators(g.generators),
		Elements:   g.elements,
	})
}

// UnmarshalJSON decodes the MarshalJSON format and re-checks the element
// count, order and width. Closure is not re-checked; call Verify for that.
func (g *Group) UnmarshalJSON(data []byte) error {
	var raw groupJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw.Generators) > errs.MaxQubitsCeiling {
		return errs.New(errs.ErrCodeInvalidFormat, "%d generators exceed the ceiling of %d",
			len(raw.Generators), errs.MaxQubitsCeiling)
	}
	gens, err := ParseGenerators(raw.Generators)
	if err != nil {
		return err
	}
	if want := 1 << len(gens); len(raw.Elements) != want {
		return errs.New(errs.ErrCodeInvalidFormat, "group has %d elements, want %d", len(raw.Elements), want)
	}
	for k, e := range raw.Elements {
		if len(e.Pauli) != raw.Qubits {
			return errs.New(errs.ErrCodeInvalidFormat, "element %d has length %d, want %d", k, len(e.Pauli), raw.Qubits)
		}
		if k > 0 && pauli.Compare(raw.Elements[k-1], e) >= 0 {
			return errs.New(errs.ErrCodeInvalidFormat, "elements %d and %d are not strictly ordered", k-1, k)
		}
	}
	g.width = raw.Qubits
	g.generators = gens
	g.elements = raw.Elements
	return nil
}

// Decompose returns the coefficient vector whose product is e. It reads
// the vector off the pivot positions, where only generator i carries X, so
// it applies to generators with X at their pivot and I or Z elsewhere. ok is
// false when that reading does not reproduce e.
func (g *Group) Decompose(e pauli.Phased) (c uint64, ok bool) {
	if len(e.Pauli) != g.width || len(g.generators) != g.width {
		return 0, false
	}
	for i, s := range e.Pauli {
		if s == pauli.X || s == pauli.Y {
			c |= 1 << uint(i)
		}
	}
	return c, Element(g.generators, g.width, c).Equal(e)
}
