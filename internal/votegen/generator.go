package votegen

import (
	"context"
	"crypto/rand"
	"math/big"

	"github.com/google/uuid"
	"github.com/okian/rondo/pkg/logger"
)

// Constants for random generation.
const (
	randomFloatDivisor = 1000000
	excitedShareCutoff = 0.6
	popularityExponent = 2
)

// getRandomFloat returns a random float64 between 0.0 and 1.0 using crypto/rand.
func getRandomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

// generateVotes creates the configured number of votes across a fixed
// session pool. Concert popularity is skewed so the resulting rankings
// have clear leaders instead of a uniform spread.
func generateVotes(ctx context.Context, config *Config, concerts []Concert, stats *Stats) ([]Vote, error) {
	logger.Get().Info(ctx, "generating votes",
		logger.Int("numVotes", config.NumVotes),
		logger.Int("sessions", config.Sessions),
		logger.Int("concerts", len(concerts)))

	sessionIDs := make([]string, config.Sessions)
	for i := range sessionIDs {
		sessionIDs[i] = uuid.New().String()
	}

	votes := make([]Vote, config.NumVotes)
	for i := range votes {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		concert := pickSkewedConcert(concerts)
		kind := "interested"
		if getRandomFloat() < excitedShareCutoff {
			kind = "excited"
		}

		votes[i] = Vote{
			ConcertID: concert.ID,
			VoteType:  kind,
			SessionID: sessionIDs[pickIndex(len(sessionIDs))],
		}
	}

	stats.VotesGenerated = len(votes)
	logger.Get().Info(ctx, "generated votes successfully", logger.Int("count", len(votes)))
	return votes, nil
}

// pickSkewedConcert favors concerts near the front of the catalog.
// Squaring the uniform draw biases the index toward zero.
func pickSkewedConcert(concerts []Concert) Concert {
	f := getRandomFloat()
	for i := 1; i < popularityExponent; i++ {
		f *= f
	}
	idx := int(f * float64(len(concerts)))
	if idx >= len(concerts) {
		idx = len(concerts) - 1
	}
	return concerts[idx]
}

// pickIndex returns a uniform random index below n.
func pickIndex(n int) int {
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(v.Int64())
}
