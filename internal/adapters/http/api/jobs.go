package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// handleJobSearch handles POST /api/jobs/search. The body is forwarded
// opaquely; an empty body forwards an empty payload.
func (s *Server) handleJobSearch(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil && !errors.Is(err, io.EOF) {
		s.writeError(w, http.StatusBadRequest, codeValidation, "Request body must be valid JSON", err.Error())
		return
	}

	raw, err := s.deps.SearchJobs(r.Context(), payload)
	if err != nil {
		s.writeUpstreamError(w, r, err, "Unable to reach the job search service")
		return
	}
	writeJSON(w, http.StatusOK, raw)
}
