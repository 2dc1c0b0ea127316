// Package io reads and writes adjacency matrices and stabilizer results.
//
// # Matrix Files
//
// A graph is stored as its adjacency matrix plus an optional name. Three
// encodings are supported, chosen by file extension:
//
//	// triangle.json
//	{"name": "triangle", "matrix": [[0,1,1],[1,0,1],[1,1,0]]}
//
//	# triangle.toml
//	name = "triangle"
//	matrix = [[0,1,1],[1,0,1],[1,1,0]]
//
//	# triangle.yaml
//	name: triangle
//	matrix:
//	  - [0, 1, 1]
//	  - [1, 0, 1]
//	  - [1, 1, 0]
//
// JSON input may also be a bare array of rows. Entries are numbers; only
// zero versus non-zero matters. Every reader checks that the matrix is
// square; symmetry and the diagonal are left to the caller.
//
// Use [ImportFile] to read a file by path or [ReadMatrix] to read from any
// io.Reader with an explicit [Format]. [ExportFile] and [WriteMatrix] are
// the inverse and round-trip the matrix exactly.
//
// # Results
//
// [WriteGenerators] and [WriteGroup] encode derivation results as indented
// JSON:
//
//	{"qubits": 3, "generators": ["XZZ", "ZXZ", "ZZX"]}
//
// Group elements carry their phase both as text and as [real, imag]:
//
//	{"pauli": "XXX", "phase": "-1", "value": [-1, 0]}
package io
