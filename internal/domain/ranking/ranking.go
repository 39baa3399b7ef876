// Package ranking converts raw vote counts into an ordered leaderboard
// with position-change tracking across successive computations.
package ranking

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/okian/rondo/internal/domain/model"
)

// Vote weights. The 2:1 ratio encodes that an "excited" vote signals
// stronger intent than "interested"; it is a design constant, not
// configuration.
const (
	excitedWeight    = 2
	interestedWeight = 1
)

// Score returns the weighted popularity score for a set of counts.
func Score(c model.VoteCounts) int {
	return excitedWeight*c.Excited + interestedWeight*c.Interested
}

// Standing pairs a concert with its current vote counts.
type Standing struct {
	Concert model.Concert
	Counts  model.VoteCounts
}

// Ranked is a concert annotated with its computed position.
type Ranked struct {
	Concert       model.Concert
	Counts        model.VoteCounts
	WeightedScore int
	Rank          int // 1-based
	PreviousRank  int // rank from the prior computation; equals Rank on first appearance
	RankChange    int // PreviousRank - Rank; positive means the concert moved up
}

// Engine orders concerts by weighted score and tracks rank deltas
// between successive calls. The previous-rank memory is the only
// mutable state it owns; all access is serialized through a single
// mutex so concurrent recomputations never observe a half-updated
// snapshot. The memory holds exactly one step of history and is lost
// on restart, which simply makes every concert "new" again.
type Engine struct {
	mu   sync.Mutex
	prev map[int64]int // concert id -> last assigned rank
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithPreviousRanks seeds the rank memory. Intended for tests.
func WithPreviousRanks(prev map[int64]int) Option {
	return func(e *Engine) {
		for id, rank := range prev {
			if rank > 0 {
				e.prev[id] = rank
			}
		}
	}
}

// NewEngine creates an Engine with empty rank memory.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		prev: make(map[int64]int),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Recompute scores and orders the full concert set, assigns ranks
// 1..N, annotates each entry with its delta against the previous call,
// and overwrites the rank memory for every concert passed in. Callers
// that display a truncated top-N must truncate the returned slice, not
// the input, so memory still covers the whole set.
//
// Recompute is not idempotent as an operation: it advances the
// one-step rank memory on every call. Calling it twice with unchanged
// counts leaves ranks equal and forces every RankChange to zero.
func (e *Engine) Recompute(ctx context.Context, standings []Standing) ([]Ranked, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("recompute cancelled: %w", err)
	}

	ranked := make([]Ranked, len(standings))
	for i, s := range standings {
		ranked[i] = Ranked{
			Concert:       s.Concert,
			Counts:        s.Counts,
			WeightedScore: Score(s.Counts),
		}
	}

	// Stable sort: equal scores keep encounter order. Tie order is an
	// explicit non-determinism boundary, not a contract.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].WeightedScore > ranked[j].WeightedScore
	})

	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range ranked {
		rank := i + 1
		ranked[i].Rank = rank

		prev, seen := e.prev[ranked[i].Concert.ID]
		if !seen {
			prev = rank // first appearance reports no movement
		}
		ranked[i].PreviousRank = prev
		ranked[i].RankChange = prev - rank
	}

	// Overwrite memory only after every delta is computed, so a single
	// pass never reads its own writes.
	for i := range ranked {
		e.prev[ranked[i].Concert.ID] = ranked[i].Rank
	}

	return ranked, nil
}

// Remembered returns the remembered rank for a concert id, or false if
// the concert has never been ranked.
func (e *Engine) Remembered(id int64) (int, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	rank, ok := e.prev[id]
	return rank, ok
}

// Size returns the number of concerts held in rank memory.
func (e *Engine) Size() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.prev)
}
