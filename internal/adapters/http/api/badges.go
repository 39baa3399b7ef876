// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/okian/rondo/internal/domain/types"
)

// BadgeDependencies defines the interface for badge evaluation.
type BadgeDependencies interface {
	SessionBadges(ctx context.Context, sessionID string) (types.BadgeSummary, error)
}

// BadgesHandler handles session badge requests.
type BadgesHandler struct {
	deps BadgeDependencies
}

// NewBadgesHandler creates a new badges handler.
func NewBadgesHandler(deps BadgeDependencies) *BadgesHandler {
	return &BadgesHandler{deps: deps}
}

// HandleGetBadges handles GET /api/badges/{session_id} requests. An
// unknown session is not an error; it yields an empty badge set.
func (h *BadgesHandler) HandleGetBadges(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	// Extract path parameter after /api/badges/
	path := strings.TrimPrefix(r.URL.Path, "/api/badges/")
	if path == "" || strings.Contains(path, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	summary, err := h.deps.SessionBadges(r.Context(), path)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
