package client

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the settings the SDK reads from the environment.
// Variables are prefixed with QUANTDINGER_, e.g. QUANTDINGER_BASE_URL.
type Config struct {
	BaseURL   string        `envconfig:"BASE_URL" default:"http://localhost:5000"`
	Token     string        `envconfig:"TOKEN"`
	Timeout   time.Duration `envconfig:"TIMEOUT" default:"30s"`
	Debug     bool          `envconfig:"DEBUG" default:"false"`
	UserAgent string        `envconfig:"USER_AGENT"`
}

// LoadConfig parses QUANTDINGER_* environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("QUANTDINGER", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	return &cfg, nil
}
