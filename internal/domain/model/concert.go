// Package model contains domain models passed between layers.
package model

import (
	"fmt"
	"time"
)

// VoteKind is the strength of a preference vote.
type VoteKind string

// Valid vote kinds. "excited" signals stronger intent than "interested".
const (
	VoteExcited    VoteKind = "excited"
	VoteInterested VoteKind = "interested"
)

// ParseVoteKind validates a raw vote type string.
func ParseVoteKind(s string) (VoteKind, error) {
	switch VoteKind(s) {
	case VoteExcited:
		return VoteExcited, nil
	case VoteInterested:
		return VoteInterested, nil
	default:
		return "", fmt.Errorf("invalid vote type %q", s)
	}
}

// Concert represents a concert listing. Rows are created by ingestion
// collaborators and are read-only from this service's point of view.
type Concert struct {
	ID          int64
	Title       string
	Date        string // display text as scraped, e.g. "Fri, Jul 18, 7:30 PM"
	Venue       string
	Price       string
	Organizer   string
	Description string
	ImageURL    string
}

// Vote is a single append-only voting action.
type Vote struct {
	ID        int64
	ConcertID int64
	Kind      VoteKind
	SessionID string // empty when the vote carried no session
	CreatedAt time.Time
}

// VoteCounts aggregates a concert's votes by kind. It is a derived
// view recomputed from the votes table, never persisted.
type VoteCounts struct {
	Excited    int
	Interested int
}

// Total returns the unweighted vote count.
func (c VoteCounts) Total() int {
	return c.Excited + c.Interested
}

// SessionStats is the per-session voting statistics snapshot consumed
// by the badge evaluator.
type SessionStats struct {
	SessionID       string
	TotalVotes      int
	ExcitedVotes    int
	InterestedVotes int
	UniqueConcerts  int
	FirstVoteAt     time.Time
	LastVoteAt      time.Time
}
