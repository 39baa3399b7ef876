// Package types contains common types used across the application
package types

// RankedConcert is the read shape returned by the rankings query.
type RankedConcert struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Date            string `json:"date"`
	Venue           string `json:"venue"`
	Price           string `json:"price"`
	Organizer       string `json:"organizer"`
	Description     string `json:"description"`
	ImageURL        string `json:"imageUrl"`
	ExcitedVotes    int    `json:"excitedVotes"`
	InterestedVotes int    `json:"interestedVotes"`
	TotalVotes      int    `json:"totalVotes"`
	WeightedScore   int    `json:"weightedScore"`
	Rank            int    `json:"rank"`
	PreviousRank    int    `json:"previousRank"`
	RankChange      int    `json:"rankChange"`
}

// ConcertVoteStats is the raw per-concert vote tally returned by the
// vote-stats query, keyed by concert id in the response map.
type ConcertVoteStats struct {
	Excited    int `json:"excited"`
	Interested int `json:"interested"`
}

// Badge is the display shape of an earned badge.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// SessionSnapshot mirrors the stored per-session voting statistics.
type SessionSnapshot struct {
	SessionID       string `json:"sessionId"`
	TotalVotes      int    `json:"totalVotes"`
	ExcitedVotes    int    `json:"excitedVotes"`
	InterestedVotes int    `json:"interestedVotes"`
	UniqueConcerts  int    `json:"uniqueConcertsVoted"`
	FirstVoteAt     string `json:"firstVoteAt,omitempty"`
	LastVoteAt      string `json:"lastVoteAt,omitempty"`
}

// BadgeSummary is the badge-query response body.
type BadgeSummary struct {
	SessionID string          `json:"sessionId"`
	Badges    []Badge         `json:"badges"`
	Session   SessionSnapshot `json:"session"`
}
