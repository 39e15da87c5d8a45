package config

import (
	"fmt"
	"time"

	"github.com/Netflix/go-env"
)

// Dashboard server config - the dashboard is a thin tier in front of the
// pickem backend API and owns no data of its own.
type Config struct {
	Environment     string        `env:"ENVIRONMENT,default=dev"`
	Host            string        `env:"HOST,default=0.0.0.0"`
	Port            int           `env:"PORT,default=3000"`
	LogLevel        string        `env:"LOG_LEVEL,default=debug"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT,default=15s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT,default=15s"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT,default=60s"`
	APIBaseURL      string        `env:"API_BASE_URL,default=http://127.0.0.1:8000"`
	CacheTTL        time.Duration `env:"CACHE_TTL,default=60s"`
	RateLimitRPS    int32         `env:"RATE_LIMIT_RPS,default=0"`
	RateLimitBurst  int32         `env:"RATE_LIMIT_BURST,default=20"`
	MaxRequestBytes int64         `env:"MAX_REQUEST_BYTES,default=65536"`
	AllowedOrigin   string        `env:"ALLOWED_ORIGIN"`
}

var validEnvs = map[string]bool{
	"dev":     true,
	"test":    true,
	"perf":    true,
	"prod":    true,
	"staging": true,
}

const (
	SessionCookieName      = "pickem_session"
	RefreshTokenCookieName = "refresh_token"
)

func NewConfig() (*Config, error) {
	var cfg Config

	_, err := env.UnmarshalFromEnviron(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal environment variables: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	if !validEnvs[cfg.Environment] {
		return fmt.Errorf("invalid environment '%s'. Valid environments: dev, test, perf, staging, prod", cfg.Environment)
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", cfg.Port)
	}

	if cfg.ReadTimeout <= 0 {
		return fmt.Errorf("read timeout must be positive, got %v", cfg.ReadTimeout)
	}
	if cfg.WriteTimeout <= 0 {
		return fmt.Errorf("write timeout must be positive, got %v", cfg.WriteTimeout)
	}
	if cfg.IdleTimeout <= 0 {
		return fmt.Errorf("idle timeout must be positive, got %v", cfg.IdleTimeout)
	}

	if cfg.APIBaseURL == "" {
		return fmt.Errorf("API_BASE_URL cannot be empty")
	}

	if cfg.CacheTTL <= 0 {
		return fmt.Errorf("cache TTL must be positive, got %v", cfg.CacheTTL)
	}

	// a limiter with zero burst rejects every request
	if cfg.RateLimitRPS > 0 && cfg.RateLimitBurst <= 0 {
		return fmt.Errorf("rate limit burst must be positive when rate limiting is enabled, got %d", cfg.RateLimitBurst)
	}

	if cfg.MaxRequestBytes <= 0 {
		return fmt.Errorf("max request bytes must be positive, got %d", cfg.MaxRequestBytes)
	}

	return nil
}
