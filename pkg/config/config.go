package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config represents the application configuration
type Config struct {
	API     APIConfig     `env:", prefix=API_"`
	Logging LoggingConfig `env:", prefix=LOG_"`
}

// APIConfig holds the backend proxy connection settings
type APIConfig struct {
	BaseURL    string        `env:"BASE_URL, default=http://localhost:8000"`
	Timeout    time.Duration `env:"TIMEOUT, default=10s"`
	VsCurrency string        `env:"VS_CURRENCY, default=usd"`
	PerPage    int           `env:"PER_PAGE, default=20"`
	Page       int           `env:"PAGE, default=1"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `env:"LEVEL, default=info"`
	Format string `env:"FORMAT, default=text"`
	Output string `env:"OUTPUT, default=stderr"`
}

// Load loads configuration from environment variables using go-envconfig
func Load() (*Config, error) {
	LoadDotEnv()

	ctx := context.Background()
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("API base URL is required")
	}

	if c.API.Timeout <= 0 {
		return fmt.Errorf("invalid API timeout: %s", c.API.Timeout)
	}

	// The proxy rejects per_page outside this range with a 400
	if c.API.PerPage < 1 || c.API.PerPage > 250 {
		return fmt.Errorf("per_page must be between 1 and 250, got %d", c.API.PerPage)
	}

	if c.API.Page < 1 {
		return fmt.Errorf("page must be positive, got %d", c.API.Page)
	}

	return nil
}
