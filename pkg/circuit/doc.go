// Package circuit builds the preparation circuit of a graph state.
//
// A graph state on N qubits is prepared by a Hadamard on every qubit followed
// by a controlled-Z for every edge of the graph. The circuit is a plain gate
// list; it is never simulated. [Circuit.QASM] exports it as OpenQASM 2.0 and
// [Circuit.String] gives a one-gate-per-line text listing.
//
// # Edge modes
//
// The adjacency matrix may list an edge twice (once as (i,j) and once as
// (j,i)). [EdgesUnique], the default, emits one CZ per unordered pair.
// [EdgesPerEntry] emits one CZ per non-zero entry; since CZ is self-inverse
// a symmetric edge then cancels itself, which is rarely what callers want.
package circuit
