package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"talentlens/internal/adapters/upstream"
)

// handleGenome handles GET /api/genome/{username}.
func (s *Server) handleGenome(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(chi.URLParam(r, "username"))
	if username == "" {
		s.writeError(w, http.StatusBadRequest, codeValidation, "Username is required", nil)
		return
	}

	genome, err := s.deps.Genome(r.Context(), username)
	if err != nil {
		if upstream.IsNotFound(err) {
			s.writeError(w, http.StatusNotFound, codeNotFound,
				fmt.Sprintf("No profile found for username: %s", username), nil)
			return
		}
		s.writeUpstreamError(w, r, err, "Unable to reach the profile service")
		return
	}
	writeJSON(w, http.StatusOK, genome)
}

// handleEmptyGenome rejects GET /api/genome/ before any upstream work.
func (s *Server) handleEmptyGenome(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, http.StatusBadRequest, codeValidation, "Username is required", nil)
}
