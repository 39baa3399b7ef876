package votegen

import (
	"fmt"
	"log"
)

// verifyRankings checks the structural invariants of the returned
// leaderboard: ranks must be contiguous from 1 and weighted scores
// must never increase down the list.
func verifyRankings(config *Config, votes []Vote, rankings []RankedEntry) error {
	log.Println("🔍 Verifying rankings...")

	if len(rankings) == 0 {
		return fmt.Errorf("no rankings to verify")
	}

	for i, entry := range rankings {
		if entry.Rank != i+1 {
			return fmt.Errorf("rank gap at position %d: got rank %d", i, entry.Rank)
		}
		if i > 0 && entry.WeightedScore > rankings[i-1].WeightedScore {
			return fmt.Errorf("rankings not sorted: entry %d outscores entry %d", i, i-1)
		}
	}

	// Cross-check the top entry against the votes we actually sent.
	expected := tallyExpectedScores(votes)
	top := rankings[0]
	if want, ok := expected[top.ID]; ok && top.WeightedScore < want {
		log.Printf("⚠️  Top entry score (%d) is below the locally computed score (%d); other voters may be active",
			top.WeightedScore, want)
	}

	displayTopEntries(rankings, config.Verbose)

	log.Println("✅ Ranking verification completed")
	return nil
}

// tallyExpectedScores computes the weighted score each concert should
// have received from this run's votes alone.
func tallyExpectedScores(votes []Vote) map[int64]int {
	scores := make(map[int64]int)
	for _, v := range votes {
		switch v.VoteType {
		case "excited":
			scores[v.ConcertID] += 2
		case "interested":
			scores[v.ConcertID]++
		}
	}
	return scores
}

// displayTopEntries shows the leaderboard head.
func displayTopEntries(rankings []RankedEntry, verbose bool) {
	topN := 10
	if len(rankings) < topN {
		topN = len(rankings)
	}

	log.Printf("🏆 Top %d concerts:", topN)
	for i := 0; i < topN; i++ {
		entry := rankings[i]
		log.Printf("   %d. %s - Score: %d (change: %+d)", entry.Rank, entry.Title, entry.WeightedScore, entry.RankChange)
	}

	if verbose && len(rankings) > 0 {
		sum := 0
		for _, entry := range rankings {
			sum += entry.WeightedScore
		}
		log.Printf(`📊 Score statistics:
   Entries: %d
   Total score: %d
   Maximum: %d
   Minimum: %d
`, len(rankings), sum, rankings[0].WeightedScore, rankings[len(rankings)-1].WeightedScore)
	}
}
