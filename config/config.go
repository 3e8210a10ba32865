// Package config provides configuration loading for semterms.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the complete semterms configuration.
type Config struct {
	Adapter AdapterConfig `yaml:"adapter"`
	Cache   CacheConfig   `yaml:"cache"`
}

// AdapterConfig configures ontology backend resolution.
type AdapterConfig struct {
	// Default is the default adapter-string template. The wildcard value
	// "sqlite:obo:" resolves unconfigured prefixes to per-prefix OBO
	// databases; any other value disables the fallback.
	Default string `yaml:"default"`

	// ConfigPath points at an ontology_adapters YAML document mapping
	// prefixes to adapter strings. Empty means no per-prefix configuration.
	ConfigPath string `yaml:"config_path"`
}

// CacheConfig configures the persistent label cache.
type CacheConfig struct {
	// Labels enables writing retrieved labels to per-prefix CSV files.
	Labels bool `yaml:"labels"`

	// Dir is the cache root directory.
	Dir string `yaml:"dir"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Adapter: AdapterConfig{
			Default:    "sqlite:obo:",
			ConfigPath: "",
		},
		Cache: CacheConfig{
			Labels: true,
			Dir:    "cache",
		},
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Adapter.Default == "" {
		return fmt.Errorf("adapter.default is required")
	}
	if c.Cache.Labels && c.Cache.Dir == "" {
		return fmt.Errorf("cache.dir is required when cache.labels is enabled")
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file, layered over defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
