package adjacency

import (
	"slices"
	"strings"

	errs "github.com/matzehuels/graphstab/pkg/errors"
)

// Matrix is a square adjacency matrix. Entry (i, j) != 0 denotes an edge.
type Matrix [][]float64

// Edge is an ordered pair of qubits with a non-zero matrix entry.
type Edge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// New returns an n×n zero matrix.
func New(n int) Matrix {
	m := make(Matrix, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	return m
}

// FromEdges builds a symmetric n×n matrix with a 1 at (a, b) and (b, a) for
// every edge. Self-loops are kept on the diagonal.
func FromEdges(n int, edges []Edge) (Matrix, error) {
	m := New(n)
	for _, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, errs.Wrap(errs.ErrCodeInvalidInput, ErrOutOfRange,
				"edge %d-%d on %d qubits", e.From, e.To, n)
		}
		m[e.From][e.To] = 1
		m[e.To][e.From] = 1
	}
	return m, nil
}

// Complete returns the all-ones off-diagonal matrix on n qubits.
func Complete(n int) Matrix {
	m := New(n)
	for i := range m {
		for j := range m[i] {
			if i != j {
				m[i][j] = 1
			}
		}
	}
	return m
}

// Size returns N, the number of qubits.
func (m Matrix) Size() int { return len(m) }

// HasEdge reports whether entry (i, j) is non-zero. It does not look at (j, i).
func (m Matrix) HasEdge(i, j int) bool { return m[i][j] != 0 }

// Clone returns a deep copy of m.
func (m Matrix) Clone() Matrix {
	if m == nil {
		return nil
	}
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = slices.Clone(row)
	}
	return out
}

// Validate checks that m is square. An empty matrix is valid (N = 0).
func (m Matrix) Validate() error {
	n := len(m)
	for i, row := range m {
		if len(row) != n {
			return errs.Wrap(errs.ErrCodeInvalidShape, ErrNonSquare,
				"row %d has %d entries, want %d", i, len(row), n)
		}
	}
	return nil
}

// ValidateStrict checks that m is square, has a zero diagonal and has a
// symmetric edge pattern. Checks run in that order and the first failure
// is returned.
func (m Matrix) ValidateStrict() error {
	if err := m.Validate(); err != nil {
		return err
	}
	for i := range m {
		if m.HasEdge(i, i) {
			return errs.Wrap(errs.ErrCodeInvalidDiagonal, ErrNonZeroDiagonal,
				"qubit %d has a self-loop", i)
		}
	}
	if i, j, ok := m.firstAsymmetry(); ok {
		return errs.Wrap(errs.ErrCodeInvalidSymmetry, ErrAsymmetry,
			"entry (%d,%d) is an edge but (%d,%d) is not", i, j, j, i)
	}
	return nil
}

// IsSymmetric reports whether the edge pattern of m is symmetric.
// m must be square.
func (m Matrix) IsSymmetric() bool {
	_, _, ok := m.firstAsymmetry()
	return !ok
}

// SelfLoops returns the qubits with a non-zero diagonal entry.
func (m Matrix) SelfLoops() []int {
	var out []int
	for i := range m {
		if m.HasEdge(i, i) {
			out = append(out, i)
		}
	}
	return out
}

// firstAsymmetry scans the upper triangle in row-major order.
func (m Matrix) firstAsymmetry() (int, int, bool) {
	for i := range m {
		for j := i + 1; j < len(m); j++ {
			if m.HasEdge(i, j) != m.HasEdge(j, i) {
				if m.HasEdge(i, j) {
					return i, j, true
				}
				return j, i, true
			}
		}
	}
	return 0, 0, false
}

// Entries returns every (i, j) with a non-zero entry in row-major order,
// including both directions of a symmetric edge and any diagonal entries.
func (m Matrix) Entries() []Edge {
	var out []Edge
	for i, row := range m {
		for j, v := range row {
			if v != 0 {
				out = append(out, Edge{From: i, To: j})
			}
		}
	}
	return out
}

// Edges returns each unordered pair {i<j} with an entry in either direction,
// ordered by (i, j). Diagonal entries are not edges.
func (m Matrix) Edges() []Edge {
	var out []Edge
	for i := range m {
		for j := i + 1; j < len(m); j++ {
			if m.HasEdge(i, j) || m.HasEdge(j, i) {
				out = append(out, Edge{From: i, To: j})
			}
		}
	}
	return out
}

// Neighbors returns the columns j with a non-zero entry in row i, in
// increasing order.
func (m Matrix) Neighbors(i int) []int {
	var out []int
	for j, v := range m[i] {
		if v != 0 {
			out = append(out, j)
		}
	}
	return out
}

// Pattern returns the zero/non-zero pattern of m as rows of '0' and '1'
// joined by '/'. Two matrices with the same pattern describe the same graph
// state, so the pattern is what cache keys are derived from.
func (m Matrix) Pattern() string {
	var b strings.Builder
	for i, row := range m {
		if i > 0 {
			b.WriteByte('/')
		}
		for _, v := range row {
			if v != 0 {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
	}
	return b.String()
}
