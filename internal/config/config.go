// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Default page sizes. The JSON "show more" endpoint pages in tens; the legacy
// single-shot listing pages in fifties. Both are configuration, not fixed.
const (
	DefaultPageSize       = 10
	DefaultLegacyPageSize = 50
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags or environment variables.
type Config struct {
	// Connections
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	TMDBAPIKey  string `json:"tmdb_api_key,omitempty"` // TMDB API key for enrichment

	// Server
	Port           int `json:"port,omitempty"`             // HTTP listen port
	PageSize       int `json:"page_size,omitempty"`        // Recommendations page size
	LegacyPageSize int `json:"legacy_page_size,omitempty"` // Single-shot listing page size

	// Result store
	ResultTTLMinutes int `json:"result_ttl_minutes,omitempty"` // Minutes before stored results expire
	MaxResults       int `json:"max_results,omitempty"`        // Stored result cap before LRU eviction
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv fills connection fields from environment variables when they are
// still empty: DATABASE_URL and TMDB_API_KEY.
func (c *Config) FromEnv() {
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.TMDBAPIKey == "" {
		c.TMDBAPIKey = os.Getenv("TMDB_API_KEY")
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}
	if c.PageSize < 0 {
		return fmt.Errorf("config error: 'page_size' must be non-negative")
	}
	if c.LegacyPageSize < 0 {
		return fmt.Errorf("config error: 'legacy_page_size' must be non-negative")
	}
	if c.ResultTTLMinutes < 0 {
		return fmt.Errorf("config error: 'result_ttl_minutes' must be non-negative")
	}
	if c.MaxResults < 0 {
		return fmt.Errorf("config error: 'max_results' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults. CLI flags should already have been applied; they always win.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.TMDBAPIKey == "" {
		result.TMDBAPIKey = defaults.TMDBAPIKey
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.PageSize == 0 {
		if defaults.PageSize > 0 {
			result.PageSize = defaults.PageSize
		} else {
			result.PageSize = DefaultPageSize
		}
	}
	if result.LegacyPageSize == 0 {
		if defaults.LegacyPageSize > 0 {
			result.LegacyPageSize = defaults.LegacyPageSize
		} else {
			result.LegacyPageSize = DefaultLegacyPageSize
		}
	}
	if result.ResultTTLMinutes == 0 {
		result.ResultTTLMinutes = defaults.ResultTTLMinutes
	}
	if result.MaxResults == 0 {
		result.MaxResults = defaults.MaxResults
	}

	return result
}
