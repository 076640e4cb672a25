// Package config sources the server's settings from the process
// environment once at startup. Credentials are deliberately not validated
// here: a missing or wrong credential surfaces as an authentication
// failure on the first delegated call, per each tool's error policy.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the top-level mcp-linkedin configuration.
type Config struct {
	LinkedIn LinkedInConfig
	Debug    bool
}

// LinkedInConfig holds the account credentials and client settings.
type LinkedInConfig struct {
	Email    string
	Password string

	// BaseURL overrides the LinkedIn origin; empty means production.
	BaseURL string
	// Timeout bounds each delegated HTTP call.
	Timeout time.Duration
	// SessionDB is the path of the SQLite session cache. Empty disables
	// persistence and every invocation authenticates from scratch.
	SessionDB string
}

// LoadFromEnv builds the configuration from environment variables.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		LinkedIn: LinkedInConfig{
			Email:     os.Getenv("LINKEDIN_EMAIL"),
			Password:  os.Getenv("LINKEDIN_PASSWORD"),
			BaseURL:   os.Getenv("MCP_LINKEDIN_BASE_URL"),
			SessionDB: os.Getenv("MCP_LINKEDIN_SESSION_DB"),
		},
		Debug: getenvBool("MCP_LINKEDIN_DEBUG", false),
	}

	if v := os.Getenv("MCP_LINKEDIN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("config: MCP_LINKEDIN_TIMEOUT: %w", err)
		}
		cfg.LinkedIn.Timeout = d
	}

	return cfg, nil
}

func getenvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
