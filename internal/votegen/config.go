// Package votegen drives a running voting service with synthetic
// traffic and verifies the rankings it produces.
package votegen

import "time"

// Config holds configuration for the vote generator.
type Config struct {
	BaseURL  string        // Base URL of the service
	NumVotes int           // Number of votes to generate
	Sessions int           // Number of distinct voter sessions
	TopN     int           // Number of top entries to fetch
	Workers  int           // Number of concurrent workers
	Timeout  time.Duration // HTTP request timeout
	LogFile  string        // Log file for run output
	Verbose  bool          // Enable verbose logging
}

// Vote is the request body for a single vote submission.
type Vote struct {
	ConcertID int64  `json:"concertId"`
	VoteType  string `json:"voteType"`
	SessionID string `json:"sessionId"`
}

// Concert mirrors the catalog entries served by the API.
type Concert struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// RankedEntry mirrors the rankings response entries.
type RankedEntry struct {
	ID            int64  `json:"id"`
	Title         string `json:"title"`
	WeightedScore int    `json:"weightedScore"`
	Rank          int    `json:"rank"`
	PreviousRank  int    `json:"previousRank"`
	RankChange    int    `json:"rankChange"`
}

// AckResponse is the response from vote submission.
type AckResponse struct {
	Status string `json:"status"`
	VoteID int64  `json:"voteId"`
}

// Stats holds run statistics.
type Stats struct {
	VotesGenerated  int
	VotesSubmitted  int
	VotesSuccessful int
	VotesFailed     int
	RankedEntries   int
	StartTime       time.Time
	EndTime         time.Time
	Duration        time.Duration
}
