package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/graphstab/pkg/adjacency"
	"github.com/matzehuels/graphstab/pkg/cache"
	"github.com/matzehuels/graphstab/pkg/circuit"
	errs "github.com/matzehuels/graphstab/pkg/errors"
	"github.com/matzehuels/graphstab/pkg/observability"
	"github.com/matzehuels/graphstab/pkg/pauli"
	"github.com/matzehuels/graphstab/pkg/stabilizer"
)

// Cache key types reported to observability hooks.
const (
	keyTypeGenerators = "generators"
	keyTypeGroup      = "group"
	keyTypeCircuit    = "circuit"
)

// Runner executes the pipeline with caching.
//
// The Runner holds no per-run state, so multiple goroutines can share one
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// uses cache.DefaultKeyer and a nil logger discards output.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = discardLogger()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute runs validate → derive → enumerate → render. No partial result is
// returned on error.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		RunID:       uuid.NewString(),
		Name:        opts.Name,
		Matrix:      opts.Matrix,
		PatternHash: cache.Hash([]byte(opts.Matrix.Pattern())),
	}
	logger := opts.Logger.With("run", result.RunID[:8])

	// Stage 1: Validate
	validateStart := time.Now()
	if err := r.Validate(opts.Matrix, opts); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	result.Stats.ValidateTime = time.Since(validateStart)
	result.Stats.Qubits = opts.Matrix.Size()
	result.Stats.Edges = len(opts.Matrix.Edges())

	// Stage 2: Derive
	deriveStart := time.Now()
	gens, hit, err := r.DeriveWithCacheInfo(ctx, opts.Matrix, opts)
	if err != nil {
		return nil, fmt.Errorf("derive: %w", err)
	}
	result.Generators = gens
	result.Stats.DeriveTime = time.Since(deriveStart)
	result.CacheInfo.GeneratorsHit = hit

	logger.Info("derived generators",
		"qubits", len(gens),
		"cached", hit,
		"duration", result.Stats.DeriveTime)

	// Stage 3: Enumerate
	if !opts.SkipGroup {
		enumStart := time.Now()
		group, hit, err := r.EnumerateWithCacheInfo(ctx, gens, opts)
		if err != nil {
			return nil, fmt.Errorf("enumerate: %w", err)
		}
		if opts.Verify {
			if err := group.Verify(); err != nil {
				return nil, fmt.Errorf("verify: %w", err)
			}
		}
		result.Group = group
		result.Stats.Elements = group.Len()
		result.Stats.EnumerateTime = time.Since(enumStart)
		result.CacheInfo.GroupHit = hit

		logger.Info("enumerated group",
			"elements", group.Len(),
			"workers", opts.Workers,
			"cached", hit,
			"duration", result.Stats.EnumerateTime)
	}

	// Circuit (only when a format needs it)
	if opts.NeedsCircuit() {
		c, hit, err := r.CircuitWithCacheInfo(ctx, opts.Matrix, opts)
		if err != nil {
			return nil, fmt.Errorf("circuit: %w", err)
		}
		result.Circuit = c
		result.CacheInfo.CircuitHit = hit
	}

	// Stage 4: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	artifacts, err := Render(result, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	logger.Debug("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Validate checks m for the pipeline. The matrix must always be square. In
// strict mode it must also be symmetric with a zero diagonal; otherwise
// those defects are logged as warnings and processing continues.
func (r *Runner) Validate(m adjacency.Matrix, opts Options) error {
	r.applyLogger(&opts)
	if opts.Strict {
		return m.ValidateStrict()
	}
	if err := m.Validate(); err != nil {
		return err
	}
	if loops := m.SelfLoops(); len(loops) > 0 {
		opts.Logger.Warn("diagonal entries clear the pivot X of their generator", "qubits", loops)
	}
	if !m.IsSymmetric() {
		opts.Logger.Warn("matrix is not symmetric; generators may anti-commute and the group may be malformed")
	}
	if opts.EdgeMode == circuit.EdgesPerEntry && opts.NeedsCircuit() && len(m.Edges()) > 0 {
		opts.Logger.Warn("per-entry edge mode emits a CZ for each direction of an edge; symmetric pairs cancel")
	}
	return nil
}

// DeriveWithCacheInfo derives generators with caching and reports whether
// they came from the cache.
func (r *Runner) DeriveWithCacheInfo(ctx context.Context, m adjacency.Matrix, opts Options) ([]pauli.String, bool, error) {
	r.applyLogger(&opts)
	key := r.Keyer.GeneratorsKey(cache.Hash([]byte(m.Pattern())))

	if !opts.Refresh {
		if data, ok := r.cacheGet(ctx, opts.Logger, key, keyTypeGenerators); ok {
			var text []string
			if err := json.Unmarshal(data, &text); err == nil && len(text) == m.Size() {
				if gens, err := stabilizer.ParseGenerators(text); err == nil {
					return gens, true, nil
				}
			}
			opts.Logger.Debug("discarding unreadable cache entry", "type", keyTypeGenerators)
		}
	}

	start := time.Now()
	observability.Pipeline().OnDeriveStart(ctx, m.Size())
	gens, err := stabilizer.DeriveGenerators(m)
	observability.Pipeline().OnDeriveComplete(ctx, m.Size(), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	if data, err := json.Marshal(stabilizer.FormatGenerators(gens)); err == nil {
		r.cacheSet(ctx, opts.Logger, key, keyTypeGenerators, data, cache.TTLGenerators)
	}
	return gens, false, nil
}

// Derive is DeriveWithCacheInfo without the cache hit info.
func (r *Runner) Derive(ctx context.Context, m adjacency.Matrix, opts Options) ([]pauli.String, error) {
	gens, _, err := r.DeriveWithCacheInfo(ctx, m, opts)
	return gens, err
}

// EnumerateWithCacheInfo enumerates the group with caching and reports
// whether it came from the cache. Groups above MaxCachedGroupQubits are
// never cached.
func (r *Runner) EnumerateWithCacheInfo(ctx context.Context, gens []pauli.String, opts Options) (*stabilizer.Group, bool, error) {
	r.applyLogger(&opts)
	n := len(gens)
	limit := opts.MaxQubits
	if limit == 0 {
		limit = DefaultMaxQubits
	}
	if n > limit {
		return nil, false, errs.New(errs.ErrCodeTooManyQubits,
			"%d generators exceed the limit of %d (group would hold 2^%d elements)", n, limit, n)
	}
	cacheable := n <= MaxCachedGroupQubits
	key := r.Keyer.GroupKey(cache.HashStrings(stabilizer.FormatGenerators(gens)))

	if cacheable && !opts.Refresh {
		if data, ok := r.cacheGet(ctx, opts.Logger, key, keyTypeGroup); ok {
			var g stabilizer.Group
			if err := json.Unmarshal(data, &g); err == nil && sameGenerators(g.Generators(), gens) {
				return &g, true, nil
			}
			opts.Logger.Debug("discarding unreadable cache entry", "type", keyTypeGroup)
		}
	}

	start := time.Now()
	observability.Pipeline().OnEnumerateStart(ctx, n, opts.Workers)
	g, err := stabilizer.EnumerateGroup(ctx, gens, opts.EnumerateOptions())
	elements := 0
	if g != nil {
		elements = g.Len()
	}
	observability.Pipeline().OnEnumerateComplete(ctx, n, elements, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	if cacheable {
		if data, err := json.Marshal(g); err == nil {
			r.cacheSet(ctx, opts.Logger, key, keyTypeGroup, data, cache.TTLGroup)
		}
	}
	return g, false, nil
}

// Enumerate is EnumerateWithCacheInfo without the cache hit info.
func (r *Runner) Enumerate(ctx context.Context, gens []pauli.String, opts Options) (*stabilizer.Group, error) {
	g, _, err := r.EnumerateWithCacheInfo(ctx, gens, opts)
	return g, err
}

// CircuitWithCacheInfo builds the preparation circuit with caching and
// reports whether it came from the cache.
func (r *Runner) CircuitWithCacheInfo(ctx context.Context, m adjacency.Matrix, opts Options) (*circuit.Circuit, bool, error) {
	r.applyLogger(&opts)
	mode, err := circuit.ParseEdgeMode(string(opts.EdgeMode))
	if err != nil {
		return nil, false, err
	}
	opts.EdgeMode = mode
	key := r.Keyer.CircuitKey(cache.Hash([]byte(m.Pattern())), opts.CircuitKeyOpts())

	if !opts.Refresh {
		if data, ok := r.cacheGet(ctx, opts.Logger, key, keyTypeCircuit); ok {
			var c circuit.Circuit
			if err := json.Unmarshal(data, &c); err == nil && c.NumQubits == m.Size() {
				return &c, true, nil
			}
		}
	}

	c, err := circuit.Build(m, circuit.Options{EdgeMode: mode})
	if err != nil {
		return nil, false, err
	}
	if data, err := json.Marshal(c); err == nil {
		r.cacheSet(ctx, opts.Logger, key, keyTypeCircuit, data, cache.TTLCircuit)
	}
	return c, false, nil
}

// Circuit is CircuitWithCacheInfo without the cache hit info.
func (r *Runner) Circuit(ctx context.Context, m adjacency.Matrix, opts Options) (*circuit.Circuit, error) {
	c, _, err := r.CircuitWithCacheInfo(ctx, m, opts)
	return c, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// cacheGet looks up key. Backend errors are logged and treated as misses.
func (r *Runner) cacheGet(ctx context.Context, logger *log.Logger, key, keyType string) ([]byte, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		logger.Warn("cache read failed", "type", keyType, "err", err)
		observability.Cache().OnCacheError(ctx, keyType, err)
		return nil, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, keyType)
		return nil, false
	}
	observability.Cache().OnCacheHit(ctx, keyType)
	return data, true
}

// cacheSet stores data under key. Backend errors are logged and ignored.
func (r *Runner) cacheSet(ctx context.Context, logger *log.Logger, key, keyType string, data []byte, ttl time.Duration) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		logger.Warn("cache write failed", "type", keyType, "err", err)
		observability.Cache().OnCacheError(ctx, keyType, err)
		return
	}
	observability.Cache().OnCacheSet(ctx, keyType, len(data))
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func sameGenerators(a, b []pauli.String) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

