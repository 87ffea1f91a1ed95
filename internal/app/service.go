// Package app wires the upstream client, normalizer, mock provider and
// profile cache behind the operations the HTTP layer exposes.
package app

import (
	"context"
	"errors"
	"time"

	"talentlens/internal/adapters/cache"
	"talentlens/internal/adapters/upstream"
	"talentlens/internal/domain/mock"
	"talentlens/internal/domain/model"
	"talentlens/internal/domain/normalize"
	"talentlens/pkg/logger"
	"talentlens/pkg/metrics"
)

// UpstreamClient is what the service needs from the upstream adapter.
type UpstreamClient interface {
	Search(ctx context.Context, query string, filters map[string]any, offset, size int) (map[string]any, error)
	Genome(ctx context.Context, username string) (map[string]any, error)
	SearchJobs(ctx context.Context, payload map[string]any) (map[string]any, error)
}

// Service implements the proxy operations.
type Service struct {
	upstream   UpstreamClient
	mock       *mock.Provider
	normalizer *normalize.Normalizer
	profiles   cache.Store
	log        logger.Logger

	useMock  bool
	fallback bool
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithUpstream sets the upstream client. Without one the service runs in
// mock mode regardless of configuration.
func WithUpstream(client UpstreamClient) Option {
	return func(s *Service) { s.upstream = client }
}

// WithLogger sets the service logger.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithNormalizer overrides the default normalizer.
func WithNormalizer(n *normalize.Normalizer) Option {
	return func(s *Service) {
		if n != nil {
			s.normalizer = n
		}
	}
}

// WithCache sets the profile cache store.
func WithCache(store cache.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.profiles = store
		}
	}
}

// WithMockMode serves everything from the static dataset.
func WithMockMode(enabled bool) Option {
	return func(s *Service) { s.useMock = enabled }
}

// WithMockFallback substitutes mock data when the upstream fails.
func WithMockFallback(enabled bool) Option {
	return func(s *Service) { s.fallback = enabled }
}

// New constructs a Service.
func New(opts ...Option) *Service {
	s := &Service{
		mock:       mock.NewProvider(),
		normalizer: normalize.New(),
		profiles:   cache.New(),
		fallback:   true,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.Get()
	}
	if s.upstream == nil {
		s.useMock = true
	}
	return s
}

// Search runs a people search. In mock mode, or on an eligible upstream
// failure with fallback enabled, the static dataset answers instead; the
// substitution is logged and the page is marked with its source.
func (s *Service) Search(ctx context.Context, query string, filters map[string]any, offset, size int) (model.SearchPage, error) {
	if s.useMock {
		s.log.Debug(ctx, "serving mock search results", logger.String("query", query))
		metrics.RecordMockFallback("search")
		return s.mock.Search(query), nil
	}

	raw, err := s.callUpstream(ctx, "search", func(ctx context.Context) (map[string]any, error) {
		return s.upstream.Search(ctx, query, filters, offset, size)
	})
	if err != nil {
		if s.fallback && substitutable(err) {
			s.log.Warn(ctx, "upstream search failed, substituting mock data",
				logger.String("query", query), logger.Error(err))
			metrics.RecordMockFallback("search")
			return s.mock.Search(query), nil
		}
		return model.SearchPage{}, err
	}
	return s.normalizer.SearchPage(raw), nil
}

// Genome returns the normalized profile for username, consulting the cache
// first. Only genuine upstream responses are cached; mock substitutions are
// not, so recovery stays visible. An upstream 404 is never masked.
func (s *Service) Genome(ctx context.Context, username string) (model.Genome, error) {
	if genome, ok := s.profiles.Get(ctx, username); ok {
		metrics.RecordCacheHit()
		return genome, nil
	}
	metrics.RecordCacheMiss()

	if s.useMock {
		s.log.Debug(ctx, "serving mock genome", logger.String("username", username))
		metrics.RecordMockFallback("genome")
		return s.mock.Genome(username), nil
	}

	raw, err := s.callUpstream(ctx, "genome", func(ctx context.Context) (map[string]any, error) {
		return s.upstream.Genome(ctx, username)
	})
	if err != nil {
		if upstream.IsNotFound(err) {
			return model.Genome{}, err
		}
		if s.fallback && substitutable(err) {
			s.log.Warn(ctx, "upstream genome fetch failed, substituting mock data",
				logger.String("username", username), logger.Error(err))
			metrics.RecordMockFallback("genome")
			return s.mock.Genome(username), nil
		}
		return model.Genome{}, err
	}

	genome := s.normalizer.Genome(username, raw)
	s.profiles.Set(ctx, username, genome)
	metrics.UpdateCacheSize(s.profiles.Len(ctx))
	return genome, nil
}

// SearchJobs forwards an opaque job-search payload. Mock mode and eligible
// failures with fallback enabled answer with an empty placeholder.
func (s *Service) SearchJobs(ctx context.Context, payload map[string]any) (map[string]any, error) {
	if s.useMock {
		metrics.RecordMockFallback("jobs")
		return s.mock.JobSearch(), nil
	}

	raw, err := s.callUpstream(ctx, "jobs", func(ctx context.Context) (map[string]any, error) {
		return s.upstream.SearchJobs(ctx, payload)
	})
	if err != nil {
		if s.fallback && substitutable(err) {
			s.log.Warn(ctx, "upstream job search failed, substituting placeholder", logger.Error(err))
			metrics.RecordMockFallback("jobs")
			return s.mock.JobSearch(), nil
		}
		return nil, err
	}
	return raw, nil
}

// InvalidateProfile drops one cached genome.
func (s *Service) InvalidateProfile(ctx context.Context, username string) {
	s.profiles.Delete(ctx, username)
	metrics.UpdateCacheSize(s.profiles.Len(ctx))
}

// ClearProfiles drops every cached genome.
func (s *Service) ClearProfiles(ctx context.Context) {
	s.profiles.Clear(ctx)
	metrics.UpdateCacheSize(0)
}

// CachedProfiles returns the number of genomes currently cached.
func (s *Service) CachedProfiles(ctx context.Context) int {
	return s.profiles.Len(ctx)
}

// callUpstream runs one upstream operation, recording outcome and latency.
func (s *Service) callUpstream(ctx context.Context, operation string, call func(context.Context) (map[string]any, error)) (map[string]any, error) {
	start := time.Now()
	raw, err := call(ctx)
	metrics.RecordUpstreamLatency(operation, float64(time.Since(start).Milliseconds()))
	metrics.RecordUpstreamRequest(operation, outcome(err))
	return raw, err
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, upstream.ErrTimeout):
		return "timeout"
	case errors.Is(err, upstream.ErrUnreachable):
		return "unreachable"
	case errors.Is(err, upstream.ErrDecode):
		return "decode"
	case upstream.Status(err) != 0:
		return "status"
	default:
		return "error"
	}
}

// substitutable reports whether a failure may be papered over with mock
// data: transport-level failures, undecodable payloads and upstream 5xx.
// Client-side upstream statuses (4xx) relay instead.
func substitutable(err error) bool {
	if errors.Is(err, upstream.ErrTimeout) ||
		errors.Is(err, upstream.ErrUnreachable) ||
		errors.Is(err, upstream.ErrDecode) {
		return true
	}
	return upstream.Status(err) >= 500
}
