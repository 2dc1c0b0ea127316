// Package stabilizer derives the stabilizer description of a graph state.
//
// The pipeline is one-way and pure:
//
//	adjacency.Matrix --DeriveGenerators--> []pauli.String --EnumerateGroup--> *Group
//
// # Generators
//
// [DeriveGenerators] produces one generator per qubit. Generator i has X on
// qubit i and Z on every neighbor of i, read from row i of the matrix:
//
//	triangle (all-ones off-diagonal) -> XZZ, ZXZ, ZZX
//
// Each non-zero entry (i, j) toggles position j: I becomes Z and anything else
// becomes I. A repeated toggle cancels, and a diagonal entry clears the
// pivot's X.
//
// # Group
//
// [EnumerateGroup] multiplies every subset of the generators, selected by a
// coefficient vector c ∈ {0,1}^N, left to right in generator order. The 2^N
// results are sorted with [pauli.Compare], so the output does not depend on
// enumeration order or worker count. A repeated element means the generators
// were not independent and is reported as MALFORMED_GENERATORS.
//
// Group size is exponential in N. [EnumerateOptions.MaxQubits] bounds N
// (default [DefaultMaxQubits]) and is itself capped at 30.
package stabilizer
