package api

import (
	"encoding/json"
	"net/http"
	"strings"
)

// searchRequest mirrors the POST /api/search body.
type searchRequest struct {
	Query   string         `json:"query"`
	Filters map[string]any `json:"filters"`
	Offset  int            `json:"offset"`
	Size    int            `json:"size"`
}

// handleSearch handles POST /api/search.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, codeValidation, "Request body must be valid JSON", err.Error())
		return
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		s.writeError(w, http.StatusBadRequest, codeValidation, "Query is required", nil)
		return
	}

	if req.Offset < 0 {
		req.Offset = 0
	}
	size := req.Size
	if size < 1 {
		size = s.defaultSize
	}
	if size > s.maxSize {
		size = s.maxSize
	}

	page, err := s.deps.Search(r.Context(), query, req.Filters, req.Offset, size)
	if err != nil {
		s.writeUpstreamError(w, r, err, "Unable to reach the search service")
		return
	}
	writeJSON(w, http.StatusOK, page)
}
