// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	repository "github.com/okian/rondo/internal/adapters/repository"
	"github.com/okian/rondo/internal/domain/badge"
	"github.com/okian/rondo/internal/domain/model"
	"github.com/okian/rondo/internal/domain/ranking"
	"github.com/okian/rondo/internal/domain/types"
	"github.com/okian/rondo/pkg/logger"
	"github.com/okian/rondo/pkg/metrics"
)

// Default configuration constants.
const (
	defaultTopN   = 10
	defaultDBPath = "rondo.db"
)

// Service implements the API dependencies for the concert voting system.
type Service struct {
	mu sync.RWMutex

	// Core components
	store  repository.Store
	engine *ranking.Engine

	// Configuration
	dbPath       string
	topN         int
	seedConcerts bool

	// State
	started bool
	closer  interface{ Close() error }

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore injects a pre-built store, bypassing the SQLite open on Start.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithDBPath sets the SQLite database path.
func WithDBPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.dbPath = path
		}
	}
}

// WithTopN sets the default number of rankings entries returned.
func WithTopN(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.topN = n
		}
	}
}

// WithSeedConcerts controls loading the bootstrap catalog at startup.
func WithSeedConcerts(seed bool) Option {
	return func(s *Service) {
		s.seedConcerts = seed
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		dbPath:       defaultDBPath,
		topN:         defaultTopN,
		seedConcerts: true,
		logger:       nil, // Will be replaced when service starts
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting concert voting service...")

	if s.store == nil {
		store, err := repository.OpenSQLite(ctx, s.dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		s.store = store
		s.closer = store
		s.logger.Info(ctx, "using sqlite store", logger.String("path", s.dbPath))
	}

	if s.seedConcerts {
		if err := s.store.SeedConcerts(ctx, repository.SeedCatalog()); err != nil {
			return fmt.Errorf("seed concerts: %w", err)
		}
	}

	s.engine = ranking.NewEngine()

	s.started = true
	s.logger.Info(ctx, "concert voting service started",
		logger.Int("topN", s.topN),
		logger.Int("concerts", s.store.ConcertCount(ctx)),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping concert voting service...")

	if s.closer != nil {
		_ = s.closer.Close()
	}

	s.started = false
	s.logger.Info(context.Background(), "concert voting service stopped")
}

// Concerts returns every concert listing.
func (s *Service) Concerts(ctx context.Context) ([]model.Concert, error) {
	return s.store.ListConcerts(ctx)
}

// Concert returns a single concert by id.
func (s *Service) Concert(ctx context.Context, id int64) (model.Concert, error) {
	return s.store.GetConcert(ctx, id)
}

// SubmitVote validates and records a single voting action. The vote
// kind is checked before anything touches the store, so an invalid
// kind can never move statistics.
func (s *Service) SubmitVote(ctx context.Context, concertID int64, voteType, sessionID string) (model.Vote, error) {
	kind, err := model.ParseVoteKind(voteType)
	if err != nil {
		metrics.RecordVoteRejected("invalid_vote_type")
		return model.Vote{}, fmt.Errorf("%w: %s", repository.ErrInvalidVoteKind, voteType)
	}

	vote, err := s.store.RecordVote(ctx, concertID, kind, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			metrics.RecordVoteRejected("concert_not_found")
		}
		return model.Vote{}, err
	}

	metrics.RecordVote(string(kind))
	s.logger.Debug(ctx, "vote recorded",
		logger.Int64("voteID", vote.ID),
		logger.Int64("concertID", concertID),
		logger.String("kind", string(kind)),
	)
	return vote, nil
}

// Rankings recomputes the leaderboard and returns the top entries.
// This is a recompute-on-poll operation, not a pure query: every call
// advances the engine's one-step rank memory, so callers should invoke
// it at display cadence only. The rank memory always covers the full
// concert set even when the returned list is truncated.
func (s *Service) Rankings(ctx context.Context, limit int) ([]types.RankedConcert, error) {
	if limit <= 0 {
		limit = s.topN
	}

	concerts, err := s.store.ListConcerts(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.store.VoteCounts(ctx)
	if err != nil {
		return nil, err
	}

	standings := make([]ranking.Standing, len(concerts))
	for i, c := range concerts {
		standings[i] = ranking.Standing{Concert: c, Counts: counts[c.ID]}
	}

	start := time.Now()
	ranked, err := s.engine.Recompute(ctx, standings)
	if err != nil {
		return nil, err
	}
	metrics.RecordRankingRecompute(float64(time.Since(start).Milliseconds()))

	moved := 0
	for _, r := range ranked {
		if r.RankChange != 0 {
			moved++
		}
	}
	metrics.RecordRankMovements(moved)

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	entries := make([]types.RankedConcert, len(ranked))
	for i, r := range ranked {
		entries[i] = types.RankedConcert{
			ID:              r.Concert.ID,
			Title:           r.Concert.Title,
			Date:            r.Concert.Date,
			Venue:           r.Concert.Venue,
			Price:           r.Concert.Price,
			Organizer:       r.Concert.Organizer,
			Description:     r.Concert.Description,
			ImageURL:        r.Concert.ImageURL,
			ExcitedVotes:    r.Counts.Excited,
			InterestedVotes: r.Counts.Interested,
			TotalVotes:      r.Counts.Total(),
			WeightedScore:   r.WeightedScore,
			Rank:            r.Rank,
			PreviousRank:    r.PreviousRank,
			RankChange:      r.RankChange,
		}
	}
	return entries, nil
}

// VoteStats returns the raw per-concert vote tallies.
func (s *Service) VoteStats(ctx context.Context) (map[int64]types.ConcertVoteStats, error) {
	counts, err := s.store.VoteCounts(ctx)
	if err != nil {
		return nil, err
	}
	stats := make(map[int64]types.ConcertVoteStats, len(counts))
	for id, c := range counts {
		stats[id] = types.ConcertVoteStats{Excited: c.Excited, Interested: c.Interested}
	}
	return stats, nil
}

// SessionBadges evaluates the badge catalog against a session's
// statistics snapshot. A session that never voted gets a zero-valued
// snapshot and an empty badge set, not an error.
func (s *Service) SessionBadges(ctx context.Context, sessionID string) (types.BadgeSummary, error) {
	stats, err := s.store.SessionStats(ctx, sessionID)
	if errors.Is(err, repository.ErrNotFound) {
		stats = model.SessionStats{SessionID: sessionID}
	} else if err != nil {
		return types.BadgeSummary{}, err
	}

	earned := badge.Evaluate(stats)
	metrics.RecordBadgeEvaluation(len(earned))

	badges := make([]types.Badge, len(earned))
	for i, b := range earned {
		badges[i] = types.Badge{
			ID:          b.ID,
			Name:        b.Name,
			Description: b.Description,
			Icon:        b.Icon,
		}
	}

	snapshot := types.SessionSnapshot{
		SessionID:       sessionID,
		TotalVotes:      stats.TotalVotes,
		ExcitedVotes:    stats.ExcitedVotes,
		InterestedVotes: stats.InterestedVotes,
		UniqueConcerts:  stats.UniqueConcerts,
	}
	if !stats.FirstVoteAt.IsZero() {
		snapshot.FirstVoteAt = stats.FirstVoteAt.Format(time.RFC3339Nano)
	}
	if !stats.LastVoteAt.IsZero() {
		snapshot.LastVoteAt = stats.LastVoteAt.Format(time.RFC3339Nano)
	}

	return types.BadgeSummary{
		SessionID: sessionID,
		Badges:    badges,
		Session:   snapshot,
	}, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started": s.started,
		"topN":    s.topN,
	}

	if s.started {
		concertCount := s.store.ConcertCount(ctx)
		voteCount := s.store.VoteCount(ctx)

		stats["totalConcerts"] = concertCount
		stats["totalVotes"] = voteCount
		stats["rankedConcerts"] = s.engine.Size()

		metrics.UpdateTotalConcerts(concertCount)
		metrics.UpdateTotalVotes(voteCount)
	}

	return stats
}
