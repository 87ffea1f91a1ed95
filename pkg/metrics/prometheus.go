// Package metrics provides Prometheus metrics for the talent-search proxy.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Manager owns the metric instruments for the service.
type Manager struct {
	namespace string
	registry  *prometheus.Registry

	// HTTP surface
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Upstream calls
	upstreamRequests *prometheus.CounterVec
	upstreamLatency  *prometheus.HistogramVec

	// Fallback policy
	mockFallbacks *prometheus.CounterVec

	// Profile cache
	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter
	cacheSize   prometheus.Gauge
}

var globalManager *Manager                         //nolint:gochecknoglobals // singleton metrics manager
var customRegistry = prometheus.NewRegistry()      //nolint:gochecknoglobals // dedicated registry, no default Go collectors
func init() { globalManager = NewManager() }       //nolint:gochecknoinits // global metrics setup

// NewManager creates a Manager and registers its instruments.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "talentlens",
		registry:  customRegistry,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	m.httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by endpoint, method and status code.",
	}, []string{"endpoint", "method", "status"})

	m.httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "http_request_duration_ms",
		Help:      "HTTP request latency in milliseconds.",
		Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
	}, []string{"endpoint", "method"})

	m.upstreamRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "upstream_requests_total",
		Help:      "Upstream API calls by operation and outcome.",
	}, []string{"operation", "outcome"})

	m.upstreamLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "upstream_latency_ms",
		Help:      "Upstream call latency in milliseconds.",
		Buckets:   []float64{10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
	}, []string{"operation"})

	m.mockFallbacks = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "mock_fallbacks_total",
		Help:      "Responses substituted with mock data, by operation.",
	}, []string{"operation"})

	m.cacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "profile_cache_hits_total",
		Help:      "Profile cache hits.",
	})

	m.cacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "profile_cache_misses_total",
		Help:      "Profile cache misses.",
	})

	m.cacheSize = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "profile_cache_entries",
		Help:      "Genomes currently held in the profile cache.",
	})

	m.registry.MustRegister(
		m.httpRequests,
		m.httpRequestDuration,
		m.upstreamRequests,
		m.upstreamLatency,
		m.mockFallbacks,
		m.cacheHits,
		m.cacheMisses,
		m.cacheSize,
	)
}

// Package-level helpers operating on the global manager.

// RecordHTTPRequest counts one handled HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

// RecordHTTPRequestDuration observes one request latency.
func RecordHTTPRequestDuration(endpoint, method string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method).Observe(durationMs)
}

// RecordUpstreamRequest counts one upstream call by outcome
// (ok, timeout, unreachable, status, decode).
func RecordUpstreamRequest(operation, outcome string) {
	globalManager.upstreamRequests.WithLabelValues(operation, outcome).Inc()
}

// RecordUpstreamLatency observes one upstream call latency.
func RecordUpstreamLatency(operation string, durationMs float64) {
	globalManager.upstreamLatency.WithLabelValues(operation).Observe(durationMs)
}

// RecordMockFallback counts one mock-data substitution.
func RecordMockFallback(operation string) {
	globalManager.mockFallbacks.WithLabelValues(operation).Inc()
}

// RecordCacheHit counts one profile cache hit.
func RecordCacheHit() { globalManager.cacheHits.Inc() }

// RecordCacheMiss counts one profile cache miss.
func RecordCacheMiss() { globalManager.cacheMisses.Inc() }

// UpdateCacheSize sets the current cache entry gauge.
func UpdateCacheSize(entries int) { globalManager.cacheSize.Set(float64(entries)) }

// GetRegistry exposes the registry for the /metrics handler.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
