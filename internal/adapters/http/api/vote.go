// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/rondo/internal/domain/model"
)

// VoteDependencies defines the interface for vote submission.
type VoteDependencies interface {
	SubmitVote(ctx context.Context, concertID int64, voteType, sessionID string) (model.Vote, error)
}

// VoteHandler handles vote submission requests.
type VoteHandler struct {
	deps VoteDependencies
}

// NewVoteHandler creates a new vote handler.
func NewVoteHandler(deps VoteDependencies) *VoteHandler {
	return &VoteHandler{deps: deps}
}

// HandlePostVote handles POST /api/vote requests. Votes are recorded
// synchronously; a 200 response means the vote is durably stored.
func (h *VoteHandler) HandlePostVote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	vote, err := h.deps.SubmitVote(r.Context(), req.ConcertID, req.VoteType, req.SessionID)
	if err != nil {
		switch {
		case isInvalidVote(err):
			writeError(w, http.StatusBadRequest, "invalid_vote_type", err)
		case isNotFound(err):
			writeError(w, http.StatusNotFound, "not_found", err)
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", err)
		}
		return
	}
	writeJSON(w, http.StatusOK, voteResponse{
		Status:    "recorded",
		VoteID:    vote.ID,
		ConcertID: vote.ConcertID,
		VoteType:  string(vote.Kind),
	})
}
