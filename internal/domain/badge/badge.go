// Package badge evaluates a fixed catalog of achievement rules against
// a session's voting statistics snapshot.
package badge

import "github.com/okian/rondo/internal/domain/model"

// Badge thresholds. Every rule is a monotone >=-threshold check, so a
// badge once earned can never be lost while votes stay append-only.
const (
	firstVoteThreshold  = 1
	enthusiastThreshold = 5
	superFanThreshold   = 10
	excitementThreshold = 5
	curatorThreshold    = 8
	dedicationThreshold = 25
)

// Badge describes one achievement and its display metadata.
type Badge struct {
	ID          string
	Name        string
	Description string
	Icon        string
}

// rule pairs a badge with its predicate over a statistics snapshot.
// Keeping the catalog as data rather than conditional branches keeps
// the rule set uniformly evaluated and trivially extensible.
type rule struct {
	badge  Badge
	earned func(model.SessionStats) bool
}

// catalog is the fixed badge set. Order matters for display only; it
// is loaded once and never mutated.
var catalog = []rule{
	{
		badge: Badge{
			ID:          "first_vote",
			Name:        "First Vote",
			Description: "Cast your first vote",
			Icon:        "🎵",
		},
		earned: func(s model.SessionStats) bool { return s.TotalVotes >= firstVoteThreshold },
	},
	{
		badge: Badge{
			ID:          "enthusiast",
			Name:        "Concert Enthusiast",
			Description: "Vote on 5 different concerts",
			Icon:        "🎻",
		},
		earned: func(s model.SessionStats) bool { return s.UniqueConcerts >= enthusiastThreshold },
	},
	{
		badge: Badge{
			ID:          "super_fan",
			Name:        "Super Fan",
			Description: "Cast 10 votes",
			Icon:        "⭐",
		},
		earned: func(s model.SessionStats) bool { return s.TotalVotes >= superFanThreshold },
	},
	{
		badge: Badge{
			ID:          "excitement_guru",
			Name:        "Excitement Guru",
			Description: "Cast 5 excited votes",
			Icon:        "🔥",
		},
		earned: func(s model.SessionStats) bool { return s.ExcitedVotes >= excitementThreshold },
	},
	{
		badge: Badge{
			ID:          "curator",
			Name:        "Curator",
			Description: "Cast 8 interested votes",
			Icon:        "🎼",
		},
		earned: func(s model.SessionStats) bool { return s.InterestedVotes >= curatorThreshold },
	},
	{
		badge: Badge{
			ID:          "dedication_champion",
			Name:        "Dedication Champion",
			Description: "Cast 25 votes",
			Icon:        "🏆",
		},
		earned: func(s model.SessionStats) bool { return s.TotalVotes >= dedicationThreshold },
	},
}

// Catalog returns the full badge set in display order.
func Catalog() []Badge {
	badges := make([]Badge, len(catalog))
	for i, r := range catalog {
		badges[i] = r.badge
	}
	return badges
}

// Evaluate returns the subset of the catalog earned by the snapshot,
// in catalog order. It is a pure function: badges are recomputed fresh
// from current totals on every call, never stored. A zero-valued
// snapshot earns nothing.
func Evaluate(stats model.SessionStats) []Badge {
	earned := make([]Badge, 0, len(catalog))
	for _, r := range catalog {
		if r.earned(stats) {
			earned = append(earned, r.badge)
		}
	}
	return earned
}
