// Package pkg provides the libraries behind graphstab, which derives the
// stabilizer formalism of graph states.
//
// # Overview
//
// A graph state on N qubits is described by an N×N adjacency matrix. Its
// stabilizer group is generated by N Pauli strings, one per vertex, and
// holds 2^N phased Pauli strings. The pkg directory is organized as:
//
//  1. [pauli] - Pauli symbols, phases, strings and their products
//  2. [adjacency] - Adjacency matrices and their validation
//  3. [stabilizer] - Generator derivation and group enumeration
//  4. [circuit] - Preparation circuits and OpenQASM export
//  5. [io] - Matrix files (JSON, TOML, YAML) and result encoding
//  6. [cache] - Result caching (file, Redis)
//  7. [pipeline] - Orchestration (validate → derive → enumerate → render)
//
// # Architecture
//
// The typical data flow through graphstab:
//
//	Matrix file (.json, .toml, .yaml)
//	         ↓
//	    [io] package (decode)
//	         ↓
//	    [adjacency] package (validate)
//	         ↓
//	    [stabilizer] package (generators, then the 2^N group)
//	         ↓
//	    text / JSON / OpenQASM output
//
// # Quick Start
//
//	g, _ := io.ImportFile("examples/triangle.json")
//	gens, _ := stabilizer.DeriveGenerators(g.Matrix)
//	group, _ := stabilizer.EnumerateGroup(ctx, gens, stabilizer.EnumerateOptions{Workers: 4})
//	for e := range group.All() {
//	    fmt.Println(e) // +III, +IYY, -XXX, ...
//	}
//
// [pauli]: github.com/matzehuels/graphstab/pkg/pauli
// [adjacency]: github.com/matzehuels/graphstab/pkg/adjacency
// [stabilizer]: github.com/matzehuels/graphstab/pkg/stabilizer
// [circuit]: github.com/matzehuels/graphstab/pkg/circuit
// [io]: github.com/matzehuels/graphstab/pkg/io
// [cache]: github.com/matzehuels/graphstab/pkg/cache
// [pipeline]: github.com/matzehuels/graphstab/pkg/pipeline
package pkg
