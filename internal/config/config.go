package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/mitchellh/mapstructure"

	"github.com/disruptops/cognitocache/internal/cache"
	"github.com/disruptops/cognitocache/internal/core"
)

// Config is the application configuration for CLI and server modes.
type Config struct {
	// Defaults pre-fill credential fields that were omitted on the
	// command line or in a resolve request.
	Defaults Defaults `yaml:"defaults"`

	// Cache selects and configures the cache backend.
	Cache CacheConfig `yaml:"cache"`
}

// Defaults are fallback values for the non-secret credential fields.
type Defaults struct {
	Region     string `yaml:"region"`
	ClientID   string `yaml:"client_id"`
	UserPoolID string `yaml:"user_pool_id"`
	TokenType  string `yaml:"token_type"`
}

// CacheConfig holds the backend type plus backend-specific options.
type CacheConfig struct {
	Type   string         `yaml:"type"`    // e.g. "memory", "file"
	Config map[string]any `yaml:",inline"` // capture remaining fields
}

type fileCacheConfig struct {
	Path string `mapstructure:"path"`
}

// Default returns the configuration used when no file is given:
// a file-backed cache so separate invocations share entries.
func Default() *Config {
	return &Config{
		Cache: CacheConfig{Type: "file"},
	}
}

// Load reads and parses the configuration file at the given path.
// An empty path yields the default configuration.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config file: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Cache.Type {
	case "", "memory", "file":
	default:
		return fmt.Errorf("unknown cache type '%s'", c.Cache.Type)
	}

	switch core.TokenType(c.Defaults.TokenType) {
	case "", core.TokenTypeAccess, core.TokenTypeID, core.TokenTypeRawRequest:
	default:
		return fmt.Errorf("unknown token type '%s'", c.Defaults.TokenType)
	}

	return nil
}

// BuildCache constructs the configured cache backend.
func (c *Config) BuildCache() (core.Cache, error) {
	switch c.Cache.Type {
	case "", "memory":
		return cache.NewMemory(), nil
	case "file":
		var fc fileCacheConfig
		if err := mapstructure.Decode(c.Cache.Config, &fc); err != nil {
			return nil, fmt.Errorf("decoding file cache options: %w", err)
		}
		if fc.Path == "" {
			path, err := cache.DefaultFilePath()
			if err != nil {
				return nil, err
			}
			fc.Path = path
		}
		return cache.NewFile(fc.Path), nil
	default:
		return nil, fmt.Errorf("unknown cache type '%s'", c.Cache.Type)
	}
}

// ApplyDefaults fills empty credential fields from the configured defaults.
// Secrets are never defaulted.
func (c *Config) ApplyDefaults(creds *core.CredentialSet) {
	if creds.Region == "" {
		creds.Region = c.Defaults.Region
	}
	if creds.ClientID == "" {
		creds.ClientID = c.Defaults.ClientID
	}
	if creds.UserPoolID == "" {
		creds.UserPoolID = c.Defaults.UserPoolID
	}
	if creds.TokenType == "" {
		creds.TokenType = core.TokenType(c.Defaults.TokenType)
	}
}
