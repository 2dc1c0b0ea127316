package circuit

import (
	"fmt"
	"strings"

	"github.com/matzehuels/graphstab/pkg/adjacency"
	errs "github.com/matzehuels/graphstab/pkg/errors"
)

// GateType names a gate in the circuit.
type GateType string

const (
	H  GateType = "h"
	CZ GateType = "cz"
)

// Gate is one gate application. Control is -1 for single-qubit gates.
type Gate struct {
	Type    GateType `json:"type"`
	Target  int      `json:"target"`
	Control int      `json:"control"`
	Step    int      `json:"step"`
}

// String returns the gate in OpenQASM statement form without the semicolon,
// e.g. "h q[0]" or "cz q[0],q[1]".
func (g Gate) String() string {
	if g.Control < 0 {
		return fmt.Sprintf("%s q[%d]", g.Type, g.Target)
	}
	return fmt.Sprintf("%s q[%d],q[%d]", g.Type, g.Control, g.Target)
}

// EdgeMode selects how matrix entries map to CZ gates.
type EdgeMode string

const (
	// EdgesUnique emits one CZ per unordered pair {i<j} with a non-zero
	// entry in either direction.
	EdgesUnique EdgeMode = "unique"
	// EdgesPerEntry emits one CZ per non-zero off-diagonal entry, in
	// row-major order.
	EdgesPerEntry EdgeMode = "per-entry"
)

// ParseEdgeMode parses "unique" or "per-entry". The empty string is
// EdgesUnique.
func ParseEdgeMode(s string) (EdgeMode, error) {
	switch EdgeMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", EdgesUnique:
		return EdgesUnique, nil
	case EdgesPerEntry:
		return EdgesPerEntry, nil
	}
	return "", errs.New(errs.ErrCodeInvalidInput, "unknown edge mode %q (want unique or per-entry)", s)
}

// Options configures Build.
type Options struct {
	EdgeMode EdgeMode
}

// Circuit holds the gate list of a graph-state preparation circuit.
type Circuit struct {
	NumQubits int    `json:"qubits"`
	Gates     []Gate `json:"gates"`
	Steps     int    `json:"steps"`
}

// Build returns the preparation circuit for m: H on every qubit in step 0,
// then one CZ per edge in its own step. m must be square. Diagonal entries
// never produce gates.
func Build(m adjacency.Matrix, opts Options) (*Circuit, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	mode := opts.EdgeMode
	if mode == "" {
		mode = EdgesUnique
	}

	n := m.Size()
	c := &Circuit{NumQubits: n}
	for q := range n {
		c.add(H, q, -1, 0)
	}

	var edges []adjacency.Edge
	switch mode {
	case EdgesUnique:
		edges = m.Edges()
	case EdgesPerEntry:
		for _, e := range m.Entries() {
			if e.From != e.To {
				edges = append(edges, e)
			}
		}
	default:
		return nil, errs.New(errs.ErrCodeInvalidInput, "unknown edge mode %q", mode)
	}
	for k, e := range edges {
		c.add(CZ, e.To, e.From, k+1)
	}
	return c, nil
}

func (c *Circuit) add(t GateType, target, control, step int) {
	c.Gates = append(c.Gates, Gate{Type: t, Target: target, Control: control, Step: step})
	if step >= c.Steps {
		c.Steps = step + 1
	}
}

// Count returns the number of gates of type t.
func (c *Circuit) Count(t GateType) int {
	n := 0
	for _, g := range c.Gates {
		if g.Type == t {
			n++
		}
	}
	return n
}

// String lists one gate per line.
func (c *Circuit) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "circuit(%d qubits, %d gates)\n", c.NumQubits, len(c.Gates))
	for _, g := range c.Gates {
		fmt.Fprintf(&b, "  %d: %s\n", g.Step, g)
	}
	return b.String()
}
