// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	repository "github.com/okian/rondo/internal/adapters/repository"
	"github.com/okian/rondo/internal/domain/model"
	"github.com/okian/rondo/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Catalog reads.
	Concerts(ctx context.Context) ([]model.Concert, error)
	Concert(ctx context.Context, id int64) (model.Concert, error)

	// SubmitVote records a single vote synchronously.
	SubmitVote(ctx context.Context, concertID int64, voteType, sessionID string) (model.Vote, error)

	// Leaderboard reads.
	Rankings(ctx context.Context, limit int) ([]types.RankedConcert, error)
	VoteStats(ctx context.Context) (map[int64]types.ConcertVoteStats, error)

	// SessionBadges evaluates the badge catalog for a session.
	SessionBadges(ctx context.Context, sessionID string) (types.BadgeSummary, error)
}

// Default limits for the rankings query.
const defaultMaxRankingsLimit = 100

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	concertsHandler  *ConcertsHandler
	voteHandler      *VoteHandler
	rankingsHandler  *RankingsHandler
	voteStatsHandler *VoteStatsHandler
	badgesHandler    *BadgesHandler
}

// ServerOption configures the API server.
type ServerOption func(*serverConfig)

type serverConfig struct {
	maxRankingsLimit int
}

// WithMaxRankingsLimit caps the limit accepted by the rankings query.
func WithMaxRankingsLimit(n int) ServerOption {
	return func(c *serverConfig) {
		if n > 0 {
			c.maxRankingsLimit = n
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...ServerOption) *Server {
	cfg := &serverConfig{maxRankingsLimit: defaultMaxRankingsLimit}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		concertsHandler:  NewConcertsHandler(deps),
		voteHandler:      NewVoteHandler(deps),
		rankingsHandler:  NewRankingsHandler(deps, cfg.maxRankingsLimit),
		voteStatsHandler: NewVoteStatsHandler(deps),
		badgesHandler:    NewBadgesHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/api/concerts", MetricsMiddleware(s.concertsHandler.HandleListConcerts, "concerts"))
	mux.HandleFunc("/api/concerts/", MetricsMiddleware(s.concertsHandler.HandleGetConcert, "concert"))
	mux.HandleFunc("/api/vote", MetricsMiddleware(s.voteHandler.HandlePostVote, "vote"))
	mux.HandleFunc("/api/vote-stats", MetricsMiddleware(s.voteStatsHandler.HandleGetVoteStats, "vote_stats"))
	mux.HandleFunc("/api/rankings", MetricsMiddleware(s.rankingsHandler.HandleGetRankings, "rankings"))
	mux.HandleFunc("/api/badges/", MetricsMiddleware(s.badgesHandler.HandleGetBadges, "badges"))
}

// voteRequest mirrors the JSON body accepted by POST /api/vote.
type voteRequest struct {
	ConcertID int64  `json:"concertId"`
	VoteType  string `json:"voteType"`
	SessionID string `json:"sessionId"`
}

func (v voteRequest) validate() error {
	switch {
	case v.ConcertID <= 0:
		return errors.New("missing concertId")
	case strings.TrimSpace(v.VoteType) == "":
		return errors.New("missing voteType")
	}
	return nil
}

type voteResponse struct {
	Status    string `json:"status"`
	VoteID    int64  `json:"voteId"`
	ConcertID int64  `json:"concertId"`
	VoteType  string `json:"voteType"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// isNotFound allows the API to translate upstream not-found errors to 404.
func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}

// isInvalidVote reports whether an error came from vote validation.
func isInvalidVote(err error) bool {
	return errors.Is(err, repository.ErrInvalidVoteKind)
}
