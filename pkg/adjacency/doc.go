// Package adjacency defines the adjacency matrix that describes a graph state.
//
// A [Matrix] is an N×N numeric matrix over qubits 0..N-1. Entries are read as
// booleans: (i, j) != 0 means an edge between qubit i and qubit j. The matrix
// is caller-owned; nothing in this module mutates it.
//
// # Validation
//
// [Matrix.Validate] only requires the matrix to be square. Symmetry and a zero
// diagonal are physical requirements for a graph state but the generator
// derivation reads each row independently, so permissive callers get the
// row-wise result for asymmetric input. [Matrix.ValidateStrict] rejects both.
//
// All failures carry a code from pkg/errors and wrap one of the sentinels in
// this package so either errors.Is check works.
package adjacency
