// Package api exposes the proxy operations over HTTP and owns the mapping
// from typed failures to status codes.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"talentlens/internal/adapters/http/site"
	"talentlens/internal/adapters/http/swagger"
	"talentlens/internal/adapters/upstream"
	"talentlens/internal/domain/model"
	"talentlens/pkg/logger"
	"talentlens/pkg/metrics"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "talentlens"

// Dependencies bundles the operations the handlers need. Keeping this an
// interface decouples the HTTP layer from the app wiring.
type Dependencies interface {
	Search(ctx context.Context, query string, filters map[string]any, offset, size int) (model.SearchPage, error)
	Genome(ctx context.Context, username string) (model.Genome, error)
	SearchJobs(ctx context.Context, payload map[string]any) (map[string]any, error)
	InvalidateProfile(ctx context.Context, username string)
	ClearProfiles(ctx context.Context)
}

// Server wires HTTP routes for the proxy API.
type Server struct {
	deps Dependencies
	log  logger.Logger

	development    bool
	requestLogging bool
	defaultSize    int
	maxSize        int
	rateLimit      int
	rateWindow     time.Duration
	origins        []string
}

// NewServer creates the API server.
func NewServer(deps Dependencies, opts ...Option) *Server {
	s := &Server{
		deps:        deps,
		development: true,
		defaultSize: 20,
		maxSize:     100,
		rateLimit:   100,
		rateWindow:  15 * time.Minute,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.Get()
	}
	return s
}

// Router builds the full route tree, including the embedded UI, docs and
// metrics endpoints.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if s.requestLogging {
		r.Use(s.logRequests)
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics",
		promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Use(httprate.LimitByIP(s.rateLimit, s.rateWindow))
		r.Post("/search", s.instrument("search", s.handleSearch))
		r.Get("/genome/", s.instrument("genome", s.handleEmptyGenome))
		r.Get("/genome/{username}", s.instrument("genome", s.handleGenome))
		r.Post("/jobs/search", s.instrument("jobs", s.handleJobSearch))
		r.Delete("/cache", s.instrument("cache", s.handleClearCache))
		r.Delete("/cache/{username}", s.instrument("cache", s.handleInvalidateCache))
		r.NotFound(s.handleAPINotFound)
	})

	swagger.Register(r)
	site.Register(r)

	return r
}

// errorResponse is the uniform error body: a stable machine-readable code
// plus a human message. Details appear only in development mode.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeError(w http.ResponseWriter, status int, code, message string, details any) {
	resp := errorResponse{Error: code, Message: message}
	if s.development {
		resp.Details = details
	}
	writeJSON(w, status, resp)
}

// writeUpstreamError translates a service failure into the response
// taxonomy: 503 for unreachable/timeout, relayed status for upstream
// errors, 500 otherwise. Genome 404s are handled by the caller.
func (s *Server) writeUpstreamError(w http.ResponseWriter, r *http.Request, err error, unavailable string) {
	switch {
	case errors.Is(err, upstream.ErrTimeout):
		s.writeError(w, http.StatusServiceUnavailable, codeTimeout, unavailable, err.Error())
	case errors.Is(err, upstream.ErrUnreachable):
		s.writeError(w, http.StatusServiceUnavailable, codeUnavailable, unavailable, err.Error())
	case upstream.Status(err) != 0:
		var se *upstream.StatusError
		_ = errors.As(err, &se)
		s.writeError(w, se.Status, codeUpstream,
			fmt.Sprintf("Upstream service answered status %d", se.Status), se.Body)
	default:
		s.log.Error(r.Context(), "unexpected failure", logger.Error(err))
		s.writeError(w, http.StatusInternalServerError, codeInternal,
			"Something went wrong", err.Error())
	}
}
