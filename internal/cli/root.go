// Package cli implements the graphstab command-line interface.
//
// This package provides commands for deriving stabilizer generators,
// enumerating stabilizer groups and printing the preparation circuit of a
// graph state, plus management of the result cache. The CLI is built using
// cobra and logs via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - generators: Print the N stabilizer generators of a graph
//   - group: Print or browse the 2^N element stabilizer group
//   - circuit: Print the preparation circuit (text or OpenQASM 2.0)
//   - example: Run everything on the 3-qubit triangle graph
//   - cache: Manage the result cache
//
// Commands read an adjacency matrix file (.json, .toml, .yaml) or JSON on
// standard input.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
//
// # Configuration
//
// Defaults for workers, qubit limit, strictness, cache location and edge
// mode are read from $XDG_CONFIG_HOME/graphstab/config.toml:
//
//	workers = 8
//	max_qubits = 22
//	strict = true
//	cache_ttl = "72h"
//	redis_addr = "localhost:6379"
//	cache_namespace = "lab"
//	edge_mode = "unique"
//
// Flags always take precedence over the file.
package cli
