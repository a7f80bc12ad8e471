// Package config loads ternctl settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the ternctl configuration.
// Environment variables are automatically parsed from the TERN_ prefix.
type Config struct {
	// ServerURL is the base URL of the Tern server.
	ServerURL string `envconfig:"SERVER_URL" default:"http://localhost:8080"`

	// APIKey authenticates requests via the X-Auth-Token header.
	APIKey string `envconfig:"API_KEY" default:""`

	// Username and Password select HTTP basic auth when no API key is set.
	Username string `envconfig:"USERNAME" default:""`
	Password string `envconfig:"PASSWORD" default:""`

	// Timeout bounds each HTTP request issued by a command.
	Timeout time.Duration `envconfig:"TIMEOUT" default:"30s"`
}

// Load parses the configuration from TERN_* environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("tern", &cfg); err != nil {
		return nil, fmt.Errorf("parse TERN_* environment: %w", err)
	}
	return &cfg, nil
}

// Validate reports configuration gaps no command can work around.
func (c *Config) Validate() error {
	if c.APIKey == "" && c.Username == "" {
		return fmt.Errorf("no credentials: set TERN_API_KEY or TERN_USERNAME/TERN_PASSWORD")
	}
	return nil
}
