// Package config loads seytic.yml, the per-directory Seytic configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = "seytic.yml"

// Config represents the top-level seytic.yml configuration.
type Config struct {
	Version   string      `yaml:"version"`
	Workspace string      `yaml:"workspace,omitempty"` // Namespace for storage keys; empty uses bare keys
	Redis     RedisConfig `yaml:"redis,omitempty"`
}

// RedisConfig describes the Redis server holding all Seytic state.
type RedisConfig struct {
	Addr     string `yaml:"addr,omitempty"`
	Password string `yaml:"password,omitempty"`
	DB       int    `yaml:"db,omitempty"`
}

// Default returns the configuration used when no seytic.yml exists:
// local Redis on the default port, bare storage keys.
func Default() *Config {
	return &Config{
		Version: "1.0",
		Redis:   RedisConfig{Addr: "localhost:6379"},
	}
}

// Validate performs strict validation on the configuration.
func (c *Config) Validate() error {
	if c.Version != "1.0" {
		return fmt.Errorf("unsupported version: %s (expected: 1.0)", c.Version)
	}

	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}

	if c.Redis.DB < 0 {
		return fmt.Errorf("redis.db must be >= 0, got %d", c.Redis.DB)
	}

	return nil
}

// Load reads and validates seytic.yml from the specified path.
// A missing file is not an error: defaults apply. SEYTIC_REDIS_ADDR
// overrides the Redis address from either source.
func Load(path string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// fall through to defaults
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	if addr := os.Getenv("SEYTIC_REDIS_ADDR"); addr != "" {
		config.Redis.Addr = addr
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}
