package driver

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the tool-facing configuration, loaded from sable.toml.
type Config struct {
	MaxErrors uint        `toml:"max_errors"`
	MaxTokens uint        `toml:"max_tokens"`
	Color     bool        `toml:"color"`
	Cache     CacheConfig `toml:"cache"`
}

// CacheConfig controls the snapshot disk cache.
type CacheConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"` // empty = standard XDG location
}

// DefaultConfig returns the configuration used when no sable.toml
// exists.
func DefaultConfig() Config {
	return Config{
		MaxErrors: defaultMaxErrors,
		Color:     true,
	}
}

// LoadConfig parses a sable.toml. A missing file yields the defaults;
// a malformed one is an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if cfg.MaxErrors == 0 {
		cfg.MaxErrors = defaultMaxErrors
	}
	return cfg, nil
}

// Options materialises run options from the config, opening the
// snapshot cache when enabled.
func (c Config) Options() (Options, error) {
	opts := Options{
		MaxErrors: c.MaxErrors,
		MaxTokens: c.MaxTokens,
	}
	if !c.Cache.Enabled {
		return opts, nil
	}
	var (
		cache *SnapshotCache
		err   error
	)
	if c.Cache.Dir != "" {
		cache, err = OpenSnapshotCacheAt(c.Cache.Dir)
	} else {
		cache, err = OpenSnapshotCache("sable")
	}
	if err != nil {
		return Options{}, fmt.Errorf("open snapshot cache: %w", err)
	}
	opts.Cache = cache
	return opts, nil
}
