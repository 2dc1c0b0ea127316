package stabilizer

import (
	"github.com/matzehuels/graphstab/pkg/adjacency"
	"github.com/matzehuels/graphstab/pkg/pauli"
)

// DeriveGenerators returns the N stabilizer generators of the graph state
// described by m, in pivot order 0..N-1. Each generator has implicit phase +1.
//
// m must be square; symmetry and the diagonal are not checked (see
// adjacency.Matrix.ValidateStrict). An empty matrix yields an empty,
// non-nil slice.
func DeriveGenerators(m adjacency.Matrix) ([]pauli.String, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	n := m.Size()
	gens := make([]pauli.String, n)
	for i := range n {
		g := pauli.Identity(n)
		g[i] = pauli.X
		for j := range n {
			if m.HasEdge(i, j) {
				g[j] = toggleZ(g[j])
			}
		}
		gens[i] = g
	}
	return gens, nil
}

// toggleZ flips a position between I and Z. Any other symbol becomes I.
func toggleZ(s pauli.Symbol) pauli.Symbol {
	if s == pauli.I {
		return pauli.Z
	}
	return pauli.I
}

// FormatGenerators returns the text form of each generator.
func FormatGenerators(gens []pauli.String) []string {
	out := make([]string, len(gens))
	for i, g := range gens {
		out[i] = g.String()
	}
	return out
}

// ParseGenerators parses text generators, e.g. from a cache entry.
func ParseGenerators(text []string) ([]pauli.String, error) {
	out := make([]pauli.String, len(text))
	for i, s := range text {
		p, err := pauli.Parse(s)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}
