package api

import (
	"time"

	"talentlens/pkg/logger"
)

// Option applies a configuration option to the Server.
type Option func(*Server)

// WithLogger sets the handler logger.
func WithLogger(log logger.Logger) Option {
	return func(s *Server) {
		if log != nil {
			s.log = log
		}
	}
}

// WithDevelopmentMode controls whether error responses carry upstream
// detail.
func WithDevelopmentMode(enabled bool) Option {
	return func(s *Server) { s.development = enabled }
}

// WithRequestLogging toggles per-request log lines.
func WithRequestLogging(enabled bool) Option {
	return func(s *Server) { s.requestLogging = enabled }
}

// WithPageSizes sets the default and maximum search page size.
func WithPageSizes(defaultSize, maxSize int) Option {
	return func(s *Server) {
		if defaultSize > 0 && maxSize >= defaultSize {
			s.defaultSize = defaultSize
			s.maxSize = maxSize
		}
	}
}

// WithRateLimit bounds /api traffic per client IP.
func WithRateLimit(requests int, window time.Duration) Option {
	return func(s *Server) {
		if requests > 0 && window > 0 {
			s.rateLimit = requests
			s.rateWindow = window
		}
	}
}

// WithAllowedOrigins sets the CORS allow-list.
func WithAllowedOrigins(origins []string) Option {
	return func(s *Server) { s.origins = origins }
}
