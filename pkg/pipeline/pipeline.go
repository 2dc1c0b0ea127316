// Package pipeline runs the graph-state stabilizer pipeline.
//
// This package implements the validate → derive → enumerate → render
// pipeline shared by every graphstab command, so caching, logging and
// validation behave the same wherever a matrix enters the system.
//
// # Architecture
//
// The pipeline consists of four stages:
//
//  1. Validate: check the adjacency matrix (square always; symmetric with
//     zero diagonal in strict mode)
//  2. Derive: build the N stabilizer generators
//  3. Enumerate: expand the generators into the 2^N element group
//  4. Render: produce text, JSON or OpenQASM output
//
// Derive, enumerate and the preparation circuit are cached through a
// [cache.Cache]. Each stage can also be run on its own.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	defer runner.Close()
//
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Matrix:  adjacency.Complete(3),
//	    Formats: []string{pipeline.FormatText},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.Stdout.Write(result.Artifacts[pipeline.FormatText])
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphstab/pkg/adjacency"
	"github.com/matzehuels/graphstab/pkg/cache"
	"github.com/matzehuels/graphstab/pkg/circuit"
	errs "github.com/matzehuels/graphstab/pkg/errors"
	"github.com/matzehuels/graphstab/pkg/pauli"
	"github.com/matzehuels/graphstab/pkg/stabilizer"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultMaxQubits bounds enumeration when Options.MaxQubits is zero.
	DefaultMaxQubits = stabilizer.DefaultMaxQubits

	// DefaultWorkers is the library default; the CLI uses GOMAXPROCS.
	DefaultWorkers = 1

	// DefaultEdgeMode emits one CZ per unordered edge.
	DefaultEdgeMode = circuit.EdgesUnique

	// MaxCachedGroupQubits is the largest group written to the cache. A
	// 16-qubit group encodes to a few MB of JSON.
	MaxCachedGroupQubits = 16
)

// Format constants for output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatQASM = "qasm"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
	FormatQASM: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	// Input
	Name   string           `json:"name,omitempty"`
	Matrix adjacency.Matrix `json:"matrix"`

	// Validate options
	Strict bool `json:"strict,omitempty"`

	// Enumerate options
	SkipGroup bool `json:"skip_group,omitempty"`
	MaxQubits int  `json:"max_qubits,omitempty"`
	Workers   int  `json:"workers,omitempty"`
	Verify    bool `json:"verify,omitempty"`

	// Circuit options
	EdgeMode circuit.EdgeMode `json:"edge_mode,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`

	// Refresh recomputes every stage and overwrites cached entries.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies this run in logs.
	RunID string

	Name   string
	Matrix adjacency.Matrix

	// PatternHash is the content hash of the matrix's zero/non-zero pattern.
	PatternHash string

	Generators []pauli.String

	// Group is nil when Options.SkipGroup is set.
	Group *stabilizer.Group

	// Circuit is nil unless a circuit format was requested.
	Circuit *circuit.Circuit

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Qubits        int
	Edges         int
	Elements      int
	ValidateTime  time.Duration
	DeriveTime    time.Duration
	EnumerateTime time.Duration
	RenderTime    time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	GeneratorsHit bool
	GroupHit      bool
	CircuitHit    bool
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errs.New(errs.ErrCodeInvalidFormat, "invalid format: %q (must be one of: text, json, qasm)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks the options and fills in defaults. It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Matrix == nil {
		return errs.New(errs.ErrCodeInvalidInput, "matrix is required")
	}
	if err := errs.ValidateMaxQubits(o.MaxQubits); err != nil {
		return err
	}
	if err := errs.ValidateWorkers(o.Workers); err != nil {
		return err
	}
	mode, err := circuit.ParseEdgeMode(string(o.EdgeMode))
	if err != nil {
		return err
	}
	o.EdgeMode = mode

	if o.MaxQubits == 0 {
		o.MaxQubits = DefaultMaxQubits
	}
	if o.Workers == 0 {
		o.Workers = DefaultWorkers
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatText}
	}
	formats := make([]string, len(o.Formats))
	for i, f := range o.Formats {
		formats[i] = strings.ToLower(f)
	}
	o.Formats = formats
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = discardLogger()
	}
	o.validated = true
	return nil
}

// NeedsCircuit reports whether the requested formats include the circuit.
func (o *Options) NeedsCircuit() bool {
	return slices.Contains(o.Formats, FormatQASM)
}

// EnumerateOptions returns the stabilizer options for the group stage.
func (o *Options) EnumerateOptions() stabilizer.EnumerateOptions {
	return stabilizer.EnumerateOptions{MaxQubits: o.MaxQubits, Workers: o.Workers}
}

// CircuitKeyOpts returns cache key options for the circuit stage.
func (o *Options) CircuitKeyOpts() cache.CircuitKeyOpts {
	return cache.CircuitKeyOpts{EdgeMode: string(o.EdgeMode)}
}

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
