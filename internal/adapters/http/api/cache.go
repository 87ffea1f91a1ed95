package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// handleInvalidateCache handles DELETE /api/cache/{username}.
func (s *Server) handleInvalidateCache(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(chi.URLParam(r, "username"))
	if username == "" {
		s.writeError(w, http.StatusBadRequest, codeValidation, "Username is required", nil)
		return
	}
	s.deps.InvalidateProfile(r.Context(), username)
	w.WriteHeader(http.StatusNoContent)
}

// handleClearCache handles DELETE /api/cache.
func (s *Server) handleClearCache(w http.ResponseWriter, r *http.Request) {
	s.deps.ClearProfiles(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// handleAPINotFound answers unmatched /api paths with the JSON shape the
// frontend expects instead of the router's plain-text default.
func (s *Server) handleAPINotFound(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, http.StatusNotFound, codeNotFound,
		"API endpoint "+r.URL.Path+" not found", nil)
}
