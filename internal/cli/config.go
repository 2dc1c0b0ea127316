package cli

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/graphstab/pkg/circuit"
	errs "github.com/matzehuels/graphstab/pkg/errors"
)

// Config holds settings read from config.toml. Flags override every field.
type Config struct {
	Workers   int    `toml:"workers"`
	MaxQubits int    `toml:"max_qubits"`
	Strict    bool   `toml:"strict"`
	EdgeMode  string `toml:"edge_mode"`

	CacheDir  string   `toml:"cache_dir"`
	CacheTTL  duration `toml:"cache_ttl"`
	RedisAddr string   `toml:"redis_addr"`

	// CacheNamespace prefixes every cache key, keeping separate projects
	// apart in one shared Redis.
	CacheNamespace string `toml:"cache_namespace"`
}

// duration decodes TOML strings such as "24h" or "90m".
type duration struct{ time.Duration }

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// configPath returns the default config file location using the XDG
// standard (~/.config/graphstab/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig reads the config file at path. An empty path means the default
// location, where a missing file yields the zero Config. An explicit path
// must exist.
func loadConfig(path string) (Config, error) {
	var cfg Config
	explicit := path != ""
	if !explicit {
		p, err := configPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if explicit {
				return cfg, errs.Wrap(errs.ErrCodeFileNotFound, err, "config file %s", path)
			}
			return cfg, nil
		}
		return cfg, errs.Wrap(errs.ErrCodeInvalidFormat, err, "config file %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, errs.New(errs.ErrCodeInvalidFormat, "config file %s: unknown key %q", path, undecoded[0].String())
	}

	if err := errs.ValidateWorkers(cfg.Workers); err != nil {
		return cfg, err
	}
	if err := errs.ValidateMaxQubits(cfg.MaxQubits); err != nil {
		return cfg, err
	}
	mode, err := circuit.ParseEdgeMode(cfg.EdgeMode)
	if err != nil {
		return cfg, err
	}
	cfg.EdgeMode = string(mode)
	return cfg, nil
}
