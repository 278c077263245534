// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
	"strconv"

	app "github.com/playmetrics/podium/internal/app"
)

// BoardHandler handles board view requests.
type BoardHandler struct {
	deps Dependencies
}

// NewBoardHandler creates a new board handler.
func NewBoardHandler(deps Dependencies) *BoardHandler {
	return &BoardHandler{deps: deps}
}

// HandleGetBoard handles GET /board requests.
// Query parameters: preset, sort, page, q, department, tier, scope.
// Unknown preset and sort values fall back to defaults; a malformed page
// is a client error.
func (h *BoardHandler) HandleGetBoard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	q, err := boardQueryFromRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	vm, err := h.deps.Board(r.Context(), q)
	if err != nil {
		if isNotReady(err) {
			writeError(w, http.StatusServiceUnavailable, "not_ready", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, vm)
}

// boardQueryFromRequest parses the shared board query parameters.
func boardQueryFromRequest(r *http.Request) (app.BoardQuery, error) {
	params := r.URL.Query()

	pageN := 1
	if raw := params.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return app.BoardQuery{}, ErrBadPage
		}
		pageN = n
	}

	return app.BoardQuery{
		Preset:     app.ParsePreset(params.Get("preset")),
		SortKey:    params.Get("sort"),
		Search:     params.Get("q"),
		Department: params.Get("department"),
		Tier:       params.Get("tier"),
		Scope:      params.Get("scope"),
		Page:       pageN,
	}, nil
}
