package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/okian/rondo/internal/domain/model"
	"github.com/okian/rondo/pkg/metrics"

	_ "modernc.org/sqlite" // database/sql driver
)

const schema = `
CREATE TABLE IF NOT EXISTS concerts (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    title TEXT NOT NULL,
    date TEXT NOT NULL,
    venue TEXT NOT NULL,
    price TEXT NOT NULL,
    organizer TEXT NOT NULL,
    description TEXT NOT NULL,
    image_url TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS votes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    concert_id INTEGER NOT NULL REFERENCES concerts(id),
    vote_type TEXT NOT NULL CHECK (vote_type IN ('excited', 'interested')),
    session_id TEXT,
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_votes_concert_id ON votes(concert_id);
CREATE INDEX IF NOT EXISTS idx_votes_session_id ON votes(session_id);

CREATE TABLE IF NOT EXISTS user_sessions (
    session_id TEXT PRIMARY KEY,
    total_votes INTEGER NOT NULL DEFAULT 0,
    excited_votes INTEGER NOT NULL DEFAULT 0,
    interested_votes INTEGER NOT NULL DEFAULT 0,
    unique_concerts INTEGER NOT NULL DEFAULT 0,
    first_vote_at TEXT NOT NULL,
    last_vote_at TEXT NOT NULL
);
`

// SQLiteStore implements Store on a SQLite database. All derived data
// (vote tallies) is aggregated with queries at read time.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) a SQLite database at path and
// ensures the schema exists. Use ":memory:" for an ephemeral store.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %q: %w", path, err)
	}
	// A single writer keeps the driver's locking behavior predictable;
	// read volume here is trivial.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close sqlite: %w", err)
	}
	return nil
}

// ListConcerts returns every concert in insertion order.
func (s *SQLiteStore) ListConcerts(ctx context.Context) ([]model.Concert, error) {
	start := time.Now()
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, date, venue, price, organizer, description, image_url
		FROM concerts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list concerts: %w", err)
	}
	defer rows.Close()

	var concerts []model.Concert
	for rows.Next() {
		var c model.Concert
		if err := rows.Scan(&c.ID, &c.Title, &c.Date, &c.Venue, &c.Price, &c.Organizer, &c.Description, &c.ImageURL); err != nil {
			return nil, fmt.Errorf("scan concert: %w", err)
		}
		concerts = append(concerts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list concerts: %w", err)
	}
	metrics.RecordStoreQueryLatency(float64(time.Since(start).Milliseconds()))
	return concerts, nil
}

// GetConcert returns a concert by id, or ErrNotFound.
func (s *SQLiteStore) GetConcert(ctx context.Context, id int64) (model.Concert, error) {
	var c model.Concert
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, date, venue, price, organizer, description, image_url
		FROM concerts WHERE id = ?`, id).
		Scan(&c.ID, &c.Title, &c.Date, &c.Venue, &c.Price, &c.Organizer, &c.Description, &c.ImageURL)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Concert{}, ErrNotFound
	}
	if err != nil {
		return model.Concert{}, fmt.Errorf("get concert %d: %w", id, err)
	}
	return c, nil
}

// RecordVote appends a vote and upserts the session statistics row in
// one transaction. A duplicate vote is simply a second row; there are
// no idempotence keys at this layer.
func (s *SQLiteStore) RecordVote(ctx context.Context, concertID int64, kind model.VoteKind, sessionID string) (model.Vote, error) {
	if kind != model.VoteExcited && kind != model.VoteInterested {
		return model.Vote{}, ErrInvalidVoteKind
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return model.Vote{}, fmt.Errorf("begin vote tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM concerts WHERE id = ?`, concertID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Vote{}, ErrNotFound
	}
	if err != nil {
		return model.Vote{}, fmt.Errorf("check concert %d: %w", concertID, err)
	}

	now := time.Now().UTC()
	session := sql.NullString{String: sessionID, Valid: sessionID != ""}
	res, err := tx.ExecContext(ctx, `
		INSERT INTO votes (concert_id, vote_type, session_id, created_at)
		VALUES (?, ?, ?, ?)`,
		concertID, string(kind), session, now.Format(time.RFC3339Nano))
	if err != nil {
		return model.Vote{}, fmt.Errorf("insert vote: %w", err)
	}
	voteID, err := res.LastInsertId()
	if err != nil {
		return model.Vote{}, fmt.Errorf("vote id: %w", err)
	}

	if sessionID != "" {
		if err := upsertSessionStats(ctx, tx, sessionID, kind, now); err != nil {
			return model.Vote{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return model.Vote{}, fmt.Errorf("commit vote: %w", err)
	}

	return model.Vote{
		ID:        voteID,
		ConcertID: concertID,
		Kind:      kind,
		SessionID: sessionID,
		CreatedAt: now,
	}, nil
}

func upsertSessionStats(ctx context.Context, tx *sql.Tx, sessionID string, kind model.VoteKind, now time.Time) error {
	excited, interested := 0, 0
	if kind == model.VoteExcited {
		excited = 1
	} else {
		interested = 1
	}

	ts := now.Format(time.RFC3339Nano)
	_, err := tx.ExecContext(ctx, `
		INSERT INTO user_sessions (session_id, total_votes, excited_votes, interested_votes, unique_concerts, first_vote_at, last_vote_at)
		VALUES (?, 1, ?, ?, 1, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET
			total_votes = total_votes + 1,
			excited_votes = excited_votes + excluded.excited_votes,
			interested_votes = interested_votes + excluded.interested_votes,
			last_vote_at = excluded.last_vote_at`,
		sessionID, excited, interested, ts, ts)
	if err != nil {
		return fmt.Errorf("upsert session %s: %w", sessionID, err)
	}

	// unique_concerts derives from the votes just written in this tx.
	_, err = tx.ExecContext(ctx, `
		UPDATE user_sessions
		SET unique_concerts = (SELECT COUNT(DISTINCT concert_id) FROM votes WHERE session_id = ?)
		WHERE session_id = ?`,
		sessionID, sessionID)
	if err != nil {
		return fmt.Errorf("update unique concerts for %s: %w", sessionID, err)
	}
	return nil
}

// VoteCounts aggregates the votes table by concert and kind.
func (s *SQLiteStore) VoteCounts(ctx context.Context) (map[int64]model.VoteCounts, error) {
	start := time.Now()
	rows, err := s.db.QueryContext(ctx, `
		SELECT concert_id, vote_type, COUNT(*)
		FROM votes
		GROUP BY concert_id, vote_type`)
	if err != nil {
		return nil, fmt.Errorf("aggregate votes: %w", err)
	}
	defer rows.Close()

	counts := make(map[int64]model.VoteCounts)
	for rows.Next() {
		var (
			concertID int64
			kind      string
			n         int
		)
		if err := rows.Scan(&concertID, &kind, &n); err != nil {
			return nil, fmt.Errorf("scan vote count: %w", err)
		}
		c := counts[concertID]
		switch model.VoteKind(kind) {
		case model.VoteExcited:
			c.Excited = n
		case model.VoteInterested:
			c.Interested = n
		}
		counts[concertID] = c
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("aggregate votes: %w", err)
	}
	metrics.RecordStoreQueryLatency(float64(time.Since(start).Milliseconds()))
	return counts, nil
}

// SessionStats returns the snapshot for a session, or ErrNotFound if
// the session never voted.
func (s *SQLiteStore) SessionStats(ctx context.Context, sessionID string) (model.SessionStats, error) {
	var (
		stats       model.SessionStats
		firstVoteAt string
		lastVoteAt  string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT session_id, total_votes, excited_votes, interested_votes, unique_concerts, first_vote_at, last_vote_at
		FROM user_sessions WHERE session_id = ?`, sessionID).
		Scan(&stats.SessionID, &stats.TotalVotes, &stats.ExcitedVotes, &stats.InterestedVotes, &stats.UniqueConcerts, &firstVoteAt, &lastVoteAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.SessionStats{}, ErrNotFound
	}
	if err != nil {
		return model.SessionStats{}, fmt.Errorf("get session %s: %w", sessionID, err)
	}

	if t, err := time.Parse(time.RFC3339Nano, firstVoteAt); err == nil {
		stats.FirstVoteAt = t
	}
	if t, err := time.Parse(time.RFC3339Nano, lastVoteAt); err == nil {
		stats.LastVoteAt = t
	}
	return stats, nil
}

// SeedConcerts inserts the catalog only when the table is empty.
func (s *SQLiteStore) SeedConcerts(ctx context.Context, concerts []model.Concert) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var count int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM concerts`).Scan(&count); err != nil {
		return fmt.Errorf("count concerts: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, c := range concerts {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO concerts (title, date, venue, price, organizer, description, image_url)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			c.Title, c.Date, c.Venue, c.Price, c.Organizer, c.Description, c.ImageURL); err != nil {
			return fmt.Errorf("seed concert %q: %w", c.Title, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	return nil
}

// ConcertCount reports the number of concerts on record.
func (s *SQLiteStore) ConcertCount(ctx context.Context) int {
	var n int
	_ = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM concerts`).Scan(&n)
	return n
}

// VoteCount reports the number of votes on record.
func (s *SQLiteStore) VoteCount(ctx context.Context) int {
	var n int
	_ = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM votes`).Scan(&n)
	return n
}
