// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/okian/rondo/internal/domain/types"
)

// VoteStatsDependencies defines the interface for raw tally reads.
type VoteStatsDependencies interface {
	VoteStats(ctx context.Context) (map[int64]types.ConcertVoteStats, error)
}

// VoteStatsHandler handles raw vote tally requests.
type VoteStatsHandler struct {
	deps VoteStatsDependencies
}

// NewVoteStatsHandler creates a new vote stats handler.
func NewVoteStatsHandler(deps VoteStatsDependencies) *VoteStatsHandler {
	return &VoteStatsHandler{deps: deps}
}

// HandleGetVoteStats handles GET /api/vote-stats requests. The response
// object is keyed by concert id.
func (h *VoteStatsHandler) HandleGetVoteStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	stats, err := h.deps.VoteStats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	// JSON object keys are strings; convert the int64 concert ids.
	out := make(map[string]types.ConcertVoteStats, len(stats))
	for id, s := range stats {
		out[strconv.FormatInt(id, 10)] = s
	}
	writeJSON(w, http.StatusOK, out)
}
