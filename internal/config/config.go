// Package config defines service configuration and its loading order.
//
// Precedence (low -> high): defaults, optional YAML file, .env file,
// process environment with the TALENTLENS_ prefix.
package config

import "strings"

// Environment mode names.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config contains process configuration.
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Environment selects development or production behavior: verbose
	// upstream error detail and the default CORS allow-list depend on it.
	Environment string `koanf:"environment"`

	// UpstreamBaseURL is the base URL of the people-search API.
	UpstreamBaseURL string `koanf:"upstream_base_url"`

	// UpstreamTimeoutMS bounds each upstream call.
	UpstreamTimeoutMS int `koanf:"upstream_timeout_ms"`

	// RetryAttempts is the total attempt budget for timed-out upstream
	// calls; 1 means no retry.
	RetryAttempts int `koanf:"retry_attempts"`

	// RetryDelayMS is the pause between retry attempts.
	RetryDelayMS int `koanf:"retry_delay_ms"`

	// UseMockData serves all traffic from the static dataset, skipping
	// the upstream entirely.
	UseMockData bool `koanf:"use_mock_data"`

	// MockFallback substitutes mock data when the upstream is down.
	MockFallback bool `koanf:"mock_fallback"`

	// RequestLogging toggles per-request log lines.
	RequestLogging bool `koanf:"request_logging"`

	// CORSAllowedOrigins is a comma-separated origin allow-list. Empty
	// means the environment default.
	CORSAllowedOrigins string `koanf:"cors_allowed_origins"`

	// RateLimitRequests and RateLimitWindowMinutes bound /api traffic
	// per client IP.
	RateLimitRequests      int `koanf:"rate_limit_requests"`
	RateLimitWindowMinutes int `koanf:"rate_limit_window_minutes"`

	// CacheCapacity bounds the profile cache.
	CacheCapacity int `koanf:"cache_capacity"`

	// SearchDefaultSize and SearchMaxSize govern the search page size.
	SearchDefaultSize int `koanf:"search_default_size"`
	SearchMaxSize     int `koanf:"search_max_size"`
}

// New returns the built-in defaults.
func New() *Config {
	return &Config{
		Addr:                   ":8080",
		LogLevel:               "info",
		Environment:            EnvDevelopment,
		UpstreamBaseURL:        "https://torre.ai/api",
		UpstreamTimeoutMS:      10_000,
		RetryAttempts:          1,
		RetryDelayMS:           1_000,
		UseMockData:            false,
		MockFallback:           true,
		RequestLogging:         true,
		RateLimitRequests:      100,
		RateLimitWindowMinutes: 15,
		CacheCapacity:          256,
		SearchDefaultSize:      20,
		SearchMaxSize:          100,
	}
}

// Development reports whether verbose error detail should be exposed.
func (c *Config) Development() bool {
	return c.Environment != EnvProduction
}

// Origins returns the effective CORS allow-list. An explicit configuration
// wins; otherwise development allows the usual local frontend ports and
// production allows nothing until configured.
func (c *Config) Origins() []string {
	if trimmed := strings.TrimSpace(c.CORSAllowedOrigins); trimmed != "" {
		parts := strings.Split(trimmed, ",")
		origins := make([]string, 0, len(parts))
		for _, part := range parts {
			if origin := strings.TrimSpace(part); origin != "" {
				origins = append(origins, origin)
			}
		}
		return origins
	}
	if c.Development() {
		return []string{"http://localhost:3000", "http://localhost:5173"}
	}
	return nil
}
