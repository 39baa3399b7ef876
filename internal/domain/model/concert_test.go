package model_test

import (
	"testing"

	model "github.com/okian/rondo/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseVoteKind(t *testing.T) {
	Convey("Given raw vote type strings", t, func() {
		Convey("When parsing the known kinds", func() {
			excited, err1 := model.ParseVoteKind("excited")
			interested, err2 := model.ParseVoteKind("interested")

			Convey("Then both should parse to their constants", func() {
				So(err1, ShouldBeNil)
				So(excited, ShouldEqual, model.VoteExcited)
				So(err2, ShouldBeNil)
				So(interested, ShouldEqual, model.VoteInterested)
			})
		})

		Convey("When parsing an unknown kind", func() {
			_, err := model.ParseVoteKind("maybe")

			Convey("Then it should be rejected", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "maybe")
			})
		})

		Convey("When parsing with wrong casing", func() {
			_, err := model.ParseVoteKind("Excited")

			Convey("Then it should be rejected", func() {
				So(err, ShouldNotBeNil)
			})
		})

		Convey("When parsing the empty string", func() {
			_, err := model.ParseVoteKind("")

			Convey("Then it should be rejected", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}

func TestVoteCounts(t *testing.T) {
	Convey("Given vote counts for a concert", t, func() {
		Convey("When both kinds are present", func() {
			counts := model.VoteCounts{Excited: 3, Interested: 2}

			Convey("Then the total is the unweighted sum", func() {
				So(counts.Total(), ShouldEqual, 5)
			})
		})

		Convey("When no votes exist", func() {
			counts := model.VoteCounts{}

			Convey("Then the total is zero", func() {
				So(counts.Total(), ShouldEqual, 0)
			})
		})
	})
}
