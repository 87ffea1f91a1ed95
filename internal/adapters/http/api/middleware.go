package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"talentlens/pkg/logger"
	"talentlens/pkg/metrics"
)

// instrument wraps a handler with per-endpoint request counting and
// latency observation.
func (s *Server) instrument(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next(ww, r)
		metrics.RecordHTTPRequest(endpoint, r.Method, strconv.Itoa(ww.Status()))
		metrics.RecordHTTPRequestDuration(endpoint, r.Method, float64(time.Since(start).Milliseconds()))
	}
}

// logRequests emits one structured line per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Info(r.Context(), "request",
			logger.String("request_id", middleware.GetReqID(r.Context())),
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
			logger.Int("status", ww.Status()),
			logger.Int("bytes", ww.BytesWritten()),
			logger.Float64("duration_ms", float64(time.Since(start).Microseconds())/1000),
			logger.String("remote", r.RemoteAddr),
		)
	})
}
