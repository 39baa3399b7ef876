package ranking_test

import (
	"context"
	"testing"

	"github.com/okian/rondo/internal/domain/model"
	ranking "github.com/okian/rondo/internal/domain/ranking"
	. "github.com/smartystreets/goconvey/convey"
)

func standing(id int64, excited, interested int) ranking.Standing {
	return ranking.Standing{
		Concert: model.Concert{ID: id},
		Counts:  model.VoteCounts{Excited: excited, Interested: interested},
	}
}

func TestScore(t *testing.T) {
	Convey("Given vote counts", t, func() {
		Convey("When computing the weighted score", func() {
			Convey("Then excited votes count double", func() {
				So(ranking.Score(model.VoteCounts{Excited: 3, Interested: 2}), ShouldEqual, 8)
				So(ranking.Score(model.VoteCounts{Excited: 0, Interested: 7}), ShouldEqual, 7)
				So(ranking.Score(model.VoteCounts{Excited: 5, Interested: 0}), ShouldEqual, 10)
				So(ranking.Score(model.VoteCounts{}), ShouldEqual, 0)
			})
		})
	})
}

func TestEngine_Recompute(t *testing.T) {
	ctx := context.Background()

	Convey("Given a fresh ranking engine", t, func() {
		engine := ranking.NewEngine()

		Convey("When recomputing an empty set", func() {
			ranked, err := engine.Recompute(ctx, nil)

			Convey("Then it should yield an empty list without error", func() {
				So(err, ShouldBeNil)
				So(ranked, ShouldBeEmpty)
				So(engine.Size(), ShouldEqual, 0)
			})
		})

		Convey("When ranking concerts with distinct scores", func() {
			ranked, err := engine.Recompute(ctx, []ranking.Standing{
				standing(1, 3, 2),  // score 8
				standing(2, 1, 10), // score 12
				standing(3, 0, 1),  // score 1
			})

			Convey("Then ranks should be a contiguous 1..N ordered by score", func() {
				So(err, ShouldBeNil)
				So(ranked, ShouldHaveLength, 3)
				So(ranked[0].Concert.ID, ShouldEqual, 2)
				So(ranked[0].WeightedScore, ShouldEqual, 12)
				So(ranked[1].Concert.ID, ShouldEqual, 1)
				So(ranked[2].Concert.ID, ShouldEqual, 3)
				for i, r := range ranked {
					So(r.Rank, ShouldEqual, i+1)
				}
			})

			Convey("And a higher total with a lower weighted score must not win", func() {
				// Concert 2 has 11 total votes vs concert 1's 5, but
				// ordering follows the weighted score alone.
				So(ranked[0].Counts.Total(), ShouldEqual, 11)
				So(ranked[1].Counts.Total(), ShouldEqual, 5)
			})

			Convey("And every first appearance reports no movement", func() {
				for _, r := range ranked {
					So(r.PreviousRank, ShouldEqual, r.Rank)
					So(r.RankChange, ShouldEqual, 0)
				}
			})
		})

		Convey("When recomputing twice with unchanged counts", func() {
			standings := []ranking.Standing{
				standing(1, 5, 0),
				standing(2, 2, 1),
			}
			first, err := engine.Recompute(ctx, standings)
			So(err, ShouldBeNil)
			second, err := engine.Recompute(ctx, standings)
			So(err, ShouldBeNil)

			Convey("Then ranks should be unchanged and all deltas zero", func() {
				for i := range second {
					So(second[i].Rank, ShouldEqual, first[i].Rank)
					So(second[i].RankChange, ShouldEqual, 0)
				}
			})
		})

		Convey("When a vote shift swaps the top two concerts", func() {
			_, err := engine.Recompute(ctx, []ranking.Standing{
				standing(1, 3, 0), // A: rank 1
				standing(2, 2, 0), // B: rank 2
				standing(3, 1, 0), // C: rank 3
			})
			So(err, ShouldBeNil)

			ranked, err := engine.Recompute(ctx, []ranking.Standing{
				standing(1, 3, 0), // A: score 6 -> rank 2
				standing(2, 4, 0), // B: score 8 -> rank 1
				standing(3, 1, 0), // C: rank 3
			})
			So(err, ShouldBeNil)

			Convey("Then deltas should report the swap", func() {
				byID := make(map[int64]ranking.Ranked)
				for _, r := range ranked {
					byID[r.Concert.ID] = r
				}
				So(byID[1].RankChange, ShouldEqual, -1)
				So(byID[2].RankChange, ShouldEqual, 1)
				So(byID[3].RankChange, ShouldEqual, 0)
			})
		})

		Convey("When concerts tie on weighted score", func() {
			ranked, err := engine.Recompute(ctx, []ranking.Standing{
				standing(1, 1, 2), // score 4
				standing(2, 2, 0), // score 4
				standing(3, 0, 4), // score 4
			})
			So(err, ShouldBeNil)

			Convey("Then ranks stay contiguous with non-increasing scores", func() {
				// Tie order is deliberately unspecified; assert only the
				// structural invariants.
				So(ranked, ShouldHaveLength, 3)
				seen := make(map[int64]bool)
				for i, r := range ranked {
					So(r.Rank, ShouldEqual, i+1)
					So(seen[r.Concert.ID], ShouldBeFalse)
					seen[r.Concert.ID] = true
					if i > 0 {
						So(r.WeightedScore, ShouldBeLessThanOrEqualTo, ranked[i-1].WeightedScore)
					}
				}
			})
		})

		Convey("When a new concert appears mid-stream at the top", func() {
			_, err := engine.Recompute(ctx, []ranking.Standing{
				standing(1, 1, 0),
			})
			So(err, ShouldBeNil)

			ranked, err := engine.Recompute(ctx, []ranking.Standing{
				standing(1, 1, 0),
				standing(9, 10, 0),
			})
			So(err, ShouldBeNil)

			Convey("Then the newcomer reports zero change regardless of rank", func() {
				So(ranked[0].Concert.ID, ShouldEqual, 9)
				So(ranked[0].Rank, ShouldEqual, 1)
				So(ranked[0].RankChange, ShouldEqual, 0)
				So(ranked[1].Concert.ID, ShouldEqual, 1)
				So(ranked[1].RankChange, ShouldEqual, -1)
			})
		})

		Convey("When the context is already cancelled", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()
			_, err := engine.Recompute(cancelled, []ranking.Standing{standing(1, 1, 0)})

			Convey("Then it should return the context error", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})

	Convey("Given an engine seeded with previous ranks", t, func() {
		engine := ranking.NewEngine(ranking.WithPreviousRanks(map[int64]int{7: 4}))

		Convey("When the seeded concert is ranked first", func() {
			ranked, err := engine.Recompute(ctx, []ranking.Standing{standing(7, 9, 0)})
			So(err, ShouldBeNil)

			Convey("Then its delta is measured against the seeded rank", func() {
				So(ranked[0].Rank, ShouldEqual, 1)
				So(ranked[0].PreviousRank, ShouldEqual, 4)
				So(ranked[0].RankChange, ShouldEqual, 3)
			})
		})
	})
}

func TestEngine_MemoryCoversFullSet(t *testing.T) {
	ctx := context.Background()

	Convey("Given a ranked set larger than any display window", t, func() {
		engine := ranking.NewEngine()
		standings := make([]ranking.Standing, 0, 25)
		for i := int64(1); i <= 25; i++ {
			standings = append(standings, standing(i, int(i), 0))
		}
		_, err := engine.Recompute(ctx, standings)
		So(err, ShouldBeNil)

		Convey("Then memory holds every concert, not just the head", func() {
			So(engine.Size(), ShouldEqual, 25)
			rank, ok := engine.Remembered(1) // lowest score, rank 25
			So(ok, ShouldBeTrue)
			So(rank, ShouldEqual, 25)
		})
	})
}
