// Package config loads the mtgdex configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// ConfigFile is the default config file name, looked up in $HOME.
	ConfigFile = ".mtgdex.yaml"

	DefaultBaseURL  = "https://api.magicthegathering.io/v1"
	DefaultPageSize = 100
	DefaultTimeout  = 30 * time.Second
	DefaultCacheTTL = 24 * time.Hour
)

// Cache configures the on-disk response cache.
type Cache struct {
	// Dir is the cache directory; empty disables caching
	Dir string `yaml:"dir,omitempty"`
	// TTL is how long entries stay fresh (Go duration string)
	TTL string `yaml:"ttl,omitempty"`
}

// Config is the user-facing configuration, normally ~/.mtgdex.yaml.
type Config struct {
	// BaseURL overrides the API endpoint
	BaseURL string `yaml:"base_url,omitempty"`
	// PageSize is the default page size for list requests
	PageSize int `yaml:"page_size,omitempty"`
	// Timeout is the per-request timeout (Go duration string)
	Timeout string `yaml:"timeout,omitempty"`
	// Cache configures response caching
	Cache Cache `yaml:"cache,omitempty"`
	// NoColor disables terminal styling
	NoColor bool `yaml:"no_color,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		BaseURL:  DefaultBaseURL,
		PageSize: DefaultPageSize,
		Timeout:  DefaultTimeout.String(),
		Cache: Cache{
			Dir: defaultCacheDir(),
			TTL: DefaultCacheTTL.String(),
		},
	}
}

// Load reads and parses the config file. An empty path falls back to
// $HOME/.mtgdex.yaml; a missing file yields the defaults.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Default(), nil
		}
		path = filepath.Join(home, ConfigFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	applyDefaults(cfg)

	if _, err := time.ParseDuration(cfg.Timeout); err != nil {
		return nil, fmt.Errorf("invalid timeout %q in %s: %w", cfg.Timeout, path, err)
	}
	if cfg.Cache.TTL != "" {
		if _, err := time.ParseDuration(cfg.Cache.TTL); err != nil {
			return nil, fmt.Errorf("invalid cache ttl %q in %s: %w", cfg.Cache.TTL, path, err)
		}
	}

	return cfg, nil
}

// Save writes the configuration to a YAML file.
func Save(cfg *Config, path string) error {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to locate home directory: %w", err)
		}
		path = filepath.Join(home, ConfigFile)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}

// TimeoutDuration returns the parsed request timeout.
func (c *Config) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return DefaultTimeout
	}
	return d
}

// CacheTTL returns the parsed cache TTL.
func (c *Config) CacheTTL() time.Duration {
	d, err := time.ParseDuration(c.Cache.TTL)
	if err != nil || d < 0 {
		return DefaultCacheTTL
	}
	return d
}

func applyDefaults(cfg *Config) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = DefaultPageSize
	}
	if cfg.Timeout == "" {
		cfg.Timeout = DefaultTimeout.String()
	}

	// Expand ~ and relative cache paths
	if cfg.Cache.Dir != "" && !filepath.IsAbs(cfg.Cache.Dir) {
		if cfg.Cache.Dir[0] == '~' {
			if home, err := os.UserHomeDir(); err == nil {
				cfg.Cache.Dir = filepath.Join(home, cfg.Cache.Dir[1:])
			}
		} else if abs, err := filepath.Abs(cfg.Cache.Dir); err == nil {
			cfg.Cache.Dir = abs
		}
	}
}

func defaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "mtgdex")
}
