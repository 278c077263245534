// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// PositionHandler handles subject position requests.
type PositionHandler struct {
	deps Dependencies
}

// NewPositionHandler creates a new position handler.
func NewPositionHandler(deps Dependencies) *PositionHandler {
	return &PositionHandler{deps: deps}
}

// HandleGetPosition handles GET /position requests. It accepts the same
// query parameters as /board so the card reflects the caller's current
// filter scope; a subject outside that scope gets the unfiltered
// fallback rank, never an error.
func (h *PositionHandler) HandleGetPosition(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	q, err := boardQueryFromRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	pos, err := h.deps.Position(r.Context(), q)
	if err != nil {
		if isNotReady(err) {
			writeError(w, http.StatusServiceUnavailable, "not_ready", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, pos)
}
