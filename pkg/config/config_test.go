package config

import (
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:    "http://localhost:8000",
			Timeout:    10 * time.Second,
			VsCurrency: "usd",
			PerPage:    20,
			Page:       1,
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"missing base URL", func(c *Config) { c.API.BaseURL = "" }, true},
		{"zero timeout", func(c *Config) { c.API.Timeout = 0 }, true},
		{"per_page too small", func(c *Config) { c.API.PerPage = 0 }, true},
		{"per_page too large", func(c *Config) { c.API.PerPage = 251 }, true},
		{"per_page upper bound", func(c *Config) { c.API.PerPage = 250 }, false},
		{"page zero", func(c *Config) { c.API.Page = 0 }, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected a validation error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
