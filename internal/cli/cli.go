package cli

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphstab/pkg/buildinfo"
	"github.com/matzehuels/graphstab/pkg/cache"
	"github.com/matzehuels/graphstab/pkg/circuit"
	"github.com/matzehuels/graphstab/pkg/observability"
	"github.com/matzehuels/graphstab/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "graphstab"

	// redisPrefix scopes graphstab keys in a shared Redis database.
	redisPrefix = appName + ":"

	// spinnerQubits is the smallest enumeration that shows a spinner.
	spinnerQubits = 14
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Global flags
	configFile string
	strict     bool
	redisAddr  string
	noCache    bool
	refresh    bool

	// cfg is loaded in the root PersistentPreRunE.
	cfg Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "graphstab derives the stabilizers of graph states",
		Long: `graphstab reads the adjacency matrix of a graph and computes the stabilizer
formalism of the corresponding graph state: the N generators and the full
group of 2^N phased Pauli strings they generate.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configFile)
			if err != nil {
				return err
			}
			c.cfg = cfg
			if !cmd.Flags().Changed("strict") && cfg.Strict {
				c.strict = true
			}
			if !cmd.Flags().Changed("redis") && cfg.RedisAddr != "" {
				c.redisAddr = cfg.RedisAddr
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			observability.SetCacheHooks(cacheLogHooks{})
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.StringVar(&c.configFile, "config", "", "config file (default $XDG_CONFIG_HOME/graphstab/config.toml)")
	pf.BoolVar(&c.strict, "strict", false, "reject asymmetric matrices and self-loops")
	pf.StringVar(&c.redisAddr, "redis", "", "Redis address or redis:// URL for a shared cache")
	pf.BoolVar(&c.noCache, "no-cache", false, "disable caching")
	pf.BoolVar(&c.refresh, "refresh", false, "recompute and overwrite cached results")

	root.AddCommand(c.generatorsCommand())
	root.AddCommand(c.groupCommand())
	root.AddCommand(c.circuitCommand())
	root.AddCommand(c.exampleCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context) (*pipeline.Runner, error) {
	ch, err := c.newCache(ctx)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache.WithTTL(ch, c.cfg.CacheTTL.Duration), c.newKeyer(), c.Logger), nil
}

// newKeyer scopes cache keys to the configured namespace, if any.
func (c *CLI) newKeyer() cache.Keyer {
	if c.cfg.CacheNamespace == "" {
		return cache.NewDefaultKeyer()
	}
	return cache.NewScopedKeyer(nil, c.cfg.CacheNamespace+":")
}

// newCache picks the backend: none with --no-cache, Redis when an address
// is configured and reachable, the file cache otherwise.
func (c *CLI) newCache(ctx context.Context) (cache.Cache, error) {
	if c.noCache {
		return cache.NewNullCache(), nil
	}
	if c.redisAddr != "" {
		rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{Addr: c.redisAddr, Prefix: redisPrefix})
		if err == nil {
			return rc, nil
		}
		c.Logger.Warn("redis unavailable, using file cache", "err", err)
	}
	dir, err := c.cacheDir()
	if err != nil {
		c.Logger.Warn("no cache directory, caching disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	return fc, nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the configured cache directory or the per-user default
// ($XDG_CACHE_HOME/graphstab on Linux).
func (c *CLI) cacheDir() (string, error) {
	if c.cfg.CacheDir != "" {
		return c.cfg.CacheDir, nil
	}
	return cache.DefaultDir()
}

// =============================================================================
// Options Helpers
// =============================================================================

// pipelineOptions builds options from the global flags and config file.
// Command flags are applied by the caller afterwards.
func (c *CLI) pipelineOptions() pipeline.Options {
	opts := pipeline.Options{
		Strict:    c.strict,
		Refresh:   c.refresh,
		Workers:   c.cfg.Workers,
		MaxQubits: c.cfg.MaxQubits,
		EdgeMode:  circuit.EdgeMode(c.cfg.EdgeMode),
		Logger:    c.Logger,
	}
	if opts.Workers == 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	return opts
}
