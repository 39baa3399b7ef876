// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/okian/rondo/internal/domain/model"
)

// ConcertDependencies defines the interface for catalog reads.
type ConcertDependencies interface {
	Concerts(ctx context.Context) ([]model.Concert, error)
	Concert(ctx context.Context, id int64) (model.Concert, error)
}

// ConcertsHandler handles concert catalog requests.
type ConcertsHandler struct {
	deps ConcertDependencies
}

// NewConcertsHandler creates a new concerts handler.
func NewConcertsHandler(deps ConcertDependencies) *ConcertsHandler {
	return &ConcertsHandler{deps: deps}
}

// HandleListConcerts handles GET /api/concerts requests.
func (h *ConcertsHandler) HandleListConcerts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	concerts, err := h.deps.Concerts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, concerts)
}

// HandleGetConcert handles GET /api/concerts/{id} requests.
func (h *ConcertsHandler) HandleGetConcert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	// Extract path parameter after /api/concerts/
	path := strings.TrimPrefix(r.URL.Path, "/api/concerts/")
	if path == "" || strings.Contains(path, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	id, err := strconv.ParseInt(path, 10, 64)
	if err != nil || id < 1 {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	concert, err := h.deps.Concert(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, concert)
}
