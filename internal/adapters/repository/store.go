// Package repository defines the relational store interface and errors.
package repository

import (
	"context"

	"github.com/okian/rondo/internal/domain/model"
)

// Store provides read/write access to concerts, votes, and session
// statistics. Vote aggregation is always recomputed from the votes
// table; nothing derived is persisted.
type Store interface {
	// ListConcerts returns every concert in insertion order.
	ListConcerts(ctx context.Context) ([]model.Concert, error)

	// GetConcert returns a concert by id.
	// Returns ErrNotFound if the concert is unknown.
	GetConcert(ctx context.Context, id int64) (model.Concert, error)

	// RecordVote appends a vote row and, when sessionID is non-empty,
	// upserts that session's statistics in the same transaction.
	// Returns ErrNotFound if the concert is unknown.
	RecordVote(ctx context.Context, concertID int64, kind model.VoteKind, sessionID string) (model.Vote, error)

	// VoteCounts returns the per-concert vote tallies, keyed by concert
	// id. Concerts with no votes are absent from the map.
	VoteCounts(ctx context.Context) (map[int64]model.VoteCounts, error)

	// SessionStats returns the statistics snapshot for a session.
	// Returns ErrNotFound if the session never voted.
	SessionStats(ctx context.Context, sessionID string) (model.SessionStats, error)

	// SeedConcerts inserts the catalog only when the concerts table is
	// empty. Safe to call on every startup.
	SeedConcerts(ctx context.Context, concerts []model.Concert) error

	// ConcertCount and VoteCount report table sizes for monitoring.
	ConcertCount(ctx context.Context) int
	VoteCount(ctx context.Context) int
}
