package repository_test

import (
	"context"
	"errors"
	"testing"

	repository "github.com/okian/rondo/internal/adapters/repository"
	"github.com/okian/rondo/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func openTestStore(t *testing.T) *repository.SQLiteStore {
	t.Helper()
	store, err := repository.OpenSQLite(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore_Concerts(t *testing.T) {
	ctx := context.Background()

	Convey("Given an empty store", t, func() {
		store := openTestStore(t)

		Convey("When listing concerts", func() {
			concerts, err := store.ListConcerts(ctx)

			Convey("Then the list is empty without error", func() {
				So(err, ShouldBeNil)
				So(concerts, ShouldBeEmpty)
			})
		})

		Convey("When seeding the catalog", func() {
			So(store.SeedConcerts(ctx, repository.SeedCatalog()), ShouldBeNil)

			Convey("Then every concert is listed with a stable id", func() {
				concerts, err := store.ListConcerts(ctx)
				So(err, ShouldBeNil)
				So(concerts, ShouldHaveLength, 6)
				So(concerts[0].ID, ShouldEqual, 1)
				So(concerts[0].Title, ShouldContainSubstring, "Brazil Project")
				So(store.ConcertCount(ctx), ShouldEqual, 6)
			})

			Convey("And seeding again does not duplicate rows", func() {
				So(store.SeedConcerts(ctx, repository.SeedCatalog()), ShouldBeNil)
				So(store.ConcertCount(ctx), ShouldEqual, 6)
			})

			Convey("And a concert can be fetched by id", func() {
				c, err := store.GetConcert(ctx, 2)
				So(err, ShouldBeNil)
				So(c.Venue, ShouldEqual, "St. Columba's Episcopal Church")
			})

			Convey("And an unknown id maps to ErrNotFound", func() {
				_, err := store.GetConcert(ctx, 999)
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})
		})
	})
}

func TestSQLiteStore_Votes(t *testing.T) {
	ctx := context.Background()

	Convey("Given a store with seeded concerts", t, func() {
		store := openTestStore(t)
		So(store.SeedConcerts(ctx, repository.SeedCatalog()), ShouldBeNil)

		Convey("When recording a vote with a session", func() {
			vote, err := store.RecordVote(ctx, 1, model.VoteExcited, "sess-1")

			Convey("Then the vote row is appended", func() {
				So(err, ShouldBeNil)
				So(vote.ID, ShouldBeGreaterThan, 0)
				So(vote.ConcertID, ShouldEqual, 1)
				So(vote.Kind, ShouldEqual, model.VoteExcited)
				So(store.VoteCount(ctx), ShouldEqual, 1)
			})

			Convey("And the session statistics are upserted", func() {
				stats, err := store.SessionStats(ctx, "sess-1")
				So(err, ShouldBeNil)
				So(stats.TotalVotes, ShouldEqual, 1)
				So(stats.ExcitedVotes, ShouldEqual, 1)
				So(stats.InterestedVotes, ShouldEqual, 0)
				So(stats.UniqueConcerts, ShouldEqual, 1)
				So(stats.FirstVoteAt.IsZero(), ShouldBeFalse)
			})
		})

		Convey("When the same session votes across concerts", func() {
			_, err := store.RecordVote(ctx, 1, model.VoteExcited, "sess-2")
			So(err, ShouldBeNil)
			_, err = store.RecordVote(ctx, 1, model.VoteInterested, "sess-2")
			So(err, ShouldBeNil)
			_, err = store.RecordVote(ctx, 3, model.VoteInterested, "sess-2")
			So(err, ShouldBeNil)

			Convey("Then totals and distinct-concert counts accumulate", func() {
				stats, err := store.SessionStats(ctx, "sess-2")
				So(err, ShouldBeNil)
				So(stats.TotalVotes, ShouldEqual, 3)
				So(stats.ExcitedVotes, ShouldEqual, 1)
				So(stats.InterestedVotes, ShouldEqual, 2)
				So(stats.UniqueConcerts, ShouldEqual, 2)
				So(stats.LastVoteAt.Before(stats.FirstVoteAt), ShouldBeFalse)
			})

			Convey("And vote aggregation reflects every row", func() {
				counts, err := store.VoteCounts(ctx)
				So(err, ShouldBeNil)
				So(counts[1], ShouldResemble, model.VoteCounts{Excited: 1, Interested: 1})
				So(counts[3], ShouldResemble, model.VoteCounts{Interested: 1})
				_, hasUnvoted := counts[2]
				So(hasUnvoted, ShouldBeFalse)
			})
		})

		Convey("When a vote carries no session", func() {
			_, err := store.RecordVote(ctx, 2, model.VoteInterested, "")

			Convey("Then the vote lands but no session row appears", func() {
				So(err, ShouldBeNil)
				counts, err := store.VoteCounts(ctx)
				So(err, ShouldBeNil)
				So(counts[2].Interested, ShouldEqual, 1)
				_, err = store.SessionStats(ctx, "")
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When voting on a concert that does not exist", func() {
			_, err := store.RecordVote(ctx, 42, model.VoteExcited, "sess-3")

			Convey("Then the vote is rejected and nothing is written", func() {
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
				So(store.VoteCount(ctx), ShouldEqual, 0)
				_, err := store.SessionStats(ctx, "sess-3")
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When the vote kind is not recognized", func() {
			_, err := store.RecordVote(ctx, 1, model.VoteKind("maybe"), "sess-4")

			Convey("Then it is rejected before any statistics update", func() {
				So(errors.Is(err, repository.ErrInvalidVoteKind), ShouldBeTrue)
				So(store.VoteCount(ctx), ShouldEqual, 0)
				_, err := store.SessionStats(ctx, "sess-4")
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When duplicate votes arrive from the same session", func() {
			_, err := store.RecordVote(ctx, 1, model.VoteExcited, "sess-5")
			So(err, ShouldBeNil)
			_, err = store.RecordVote(ctx, 1, model.VoteExcited, "sess-5")
			So(err, ShouldBeNil)

			Convey("Then each is simply another row", func() {
				counts, err := store.VoteCounts(ctx)
				So(err, ShouldBeNil)
				So(counts[1].Excited, ShouldEqual, 2)
				stats, err := store.SessionStats(ctx, "sess-5")
				So(err, ShouldBeNil)
				So(stats.TotalVotes, ShouldEqual, 2)
				So(stats.UniqueConcerts, ShouldEqual, 1)
			})
		})

		Convey("When a session has never voted", func() {
			_, err := store.SessionStats(ctx, "ghost")

			Convey("Then ErrNotFound is returned", func() {
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})
		})
	})
}
