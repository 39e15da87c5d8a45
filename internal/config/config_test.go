package config

import (
	"testing"
	"time"
)

func validTestConfig() Config {
	return Config{
		Environment:  "test",
		Host:         "0.0.0.0",
		Port:         3000,
		LogLevel:     "debug",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
		APIBaseURL:   "http://127.0.0.1:8000",
		CacheTTL:     60 * time.Second,

		RateLimitRPS:    0,
		RateLimitBurst:  20,
		MaxRequestBytes: 65536,
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "invalid environment",
			mutate:  func(c *Config) { c.Environment = "production" },
			wantErr: true,
		},
		{
			name:    "port too large",
			mutate:  func(c *Config) { c.Port = 70000 },
			wantErr: true,
		},
		{
			name:    "port zero",
			mutate:  func(c *Config) { c.Port = 0 },
			wantErr: true,
		},
		{
			name:    "negative read timeout",
			mutate:  func(c *Config) { c.ReadTimeout = -time.Second },
			wantErr: true,
		},
		{
			name:    "empty API base URL",
			mutate:  func(c *Config) { c.APIBaseURL = "" },
			wantErr: true,
		},
		{
			name:    "zero cache TTL",
			mutate:  func(c *Config) { c.CacheTTL = 0 },
			wantErr: true,
		},
		{
			name: "zero burst with rate limiting enabled",
			mutate: func(c *Config) {
				c.RateLimitRPS = 5
				c.RateLimitBurst = 0
			},
			wantErr: true,
		},
		{
			name: "zero burst with rate limiting disabled",
			mutate: func(c *Config) {
				c.RateLimitRPS = 0
				c.RateLimitBurst = 0
			},
			wantErr: false,
		},
		{
			name:    "zero max request bytes",
			mutate:  func(c *Config) { c.MaxRequestBytes = 0 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(&cfg)

			err := validateConfig(&cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
