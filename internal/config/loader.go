package config

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// envPrefix maps TALENTLENS_UPSTREAM_BASE_URL -> upstream_base_url, etc.
const envPrefix = "TALENTLENS_"

// Load builds a Config by layering defaults, an optional YAML file
// (TALENTLENS_CONFIG), a .env file when present, and environment variables.
func Load(_ context.Context) (*Config, error) {
	base := New()

	// A missing .env is the normal case, not an error.
	_ = godotenv.Load()

	k := koanf.New(".")

	if path := os.Getenv(envPrefix + "CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if cfg.Environment != EnvDevelopment && cfg.Environment != EnvProduction {
		return fmt.Errorf("%w: environment must be %s or %s", ErrInvalidConfig, EnvDevelopment, EnvProduction)
	}
	parsed, err := url.Parse(cfg.UpstreamBaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("%w: upstream_base_url must be an absolute URL", ErrInvalidConfig)
	}
	if cfg.UpstreamTimeoutMS <= 0 {
		return fmt.Errorf("%w: upstream_timeout_ms must be positive", ErrInvalidConfig)
	}
	if cfg.RetryAttempts < 1 {
		return fmt.Errorf("%w: retry_attempts must be at least 1", ErrInvalidConfig)
	}
	if cfg.SearchDefaultSize < 1 || cfg.SearchMaxSize < cfg.SearchDefaultSize {
		return fmt.Errorf("%w: search sizes must satisfy 1 <= default <= max", ErrInvalidConfig)
	}
	if cfg.CacheCapacity < 1 {
		return fmt.Errorf("%w: cache_capacity must be positive", ErrInvalidConfig)
	}
	if cfg.RateLimitRequests < 1 || cfg.RateLimitWindowMinutes < 1 {
		return fmt.Errorf("%w: rate limit must allow at least one request per window", ErrInvalidConfig)
	}
	return nil
}
