package ratelimit

import (
	"os"
	"strconv"
	"time"
)

// DefaultConfig returns the built-in rate limiter settings.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		RequestsPerMin:  600,
		Burst:           60,
		CleanupInterval: 5 * time.Minute,
	}
}

// LoadConfig builds a Config from environment variables, falling back to
// defaults for anything unset:
//
//	RATE_LIMIT_ENABLED          "true" or "false"
//	RATE_LIMIT_REQUESTS_PER_MIN integer, requests allowed per minute per client
//	RATE_LIMIT_BURST            integer, burst capacity
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Enabled = enabled
		}
	}
	if v := os.Getenv("RATE_LIMIT_REQUESTS_PER_MIN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RequestsPerMin = n
		}
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Burst = n
		}
	}

	return cfg
}
