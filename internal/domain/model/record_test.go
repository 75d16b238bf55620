package model_test

import (
	"testing"

	model "github.com/okian/fiprank/internal/domain/model"
	"github.com/okian/fiprank/internal/domain/types"
	"github.com/smartystreets/goconvey/convey"
)

func TestRecord(t *testing.T) {
	convey.Convey("Given a freshly loaded record", t, func() {
		r := model.Record{Name: "A", Country: "ESP", Points: 100, Position: 5}

		convey.Convey("Then it should have no history and absent deltas", func() {
			_, ok := r.LastHistory()
			convey.So(ok, convey.ShouldBeFalse)
			convey.So(r.History, convey.ShouldBeEmpty)
			convey.So(r.PointsDelta.IsSet(), convey.ShouldBeFalse)
			convey.So(r.PositionDelta.IsSet(), convey.ShouldBeFalse)
		})

		convey.Convey("When a history entry is appended", func() {
			r.AppendHistory(model.HistoryEntry{Label: "2023-09-11", Points: 90, Position: 8})

			convey.Convey("Then deltas follow the points-up, position-down convention", func() {
				convey.So(r.History, convey.ShouldResemble, []model.HistoryEntry{{Label: "2023-09-11", Points: 90, Position: 8}})
				convey.So(r.PointsDelta, convey.ShouldResemble, types.Some(10))
				convey.So(r.PositionDelta, convey.ShouldResemble, types.Some(3))
			})

			convey.Convey("And a second append overwrites the deltas instead of accumulating", func() {
				r.AppendHistory(model.HistoryEntry{Label: "2023-10-09", Points: 120, Position: 2})

				last, ok := r.LastHistory()
				convey.So(ok, convey.ShouldBeTrue)
				convey.So(last.Label, convey.ShouldEqual, "2023-10-09")
				convey.So(r.History, convey.ShouldHaveLength, 2)
				convey.So(r.History[0].Label, convey.ShouldEqual, "2023-09-11")
				convey.So(r.PointsDelta.String(), convey.ShouldEqual, "-20")
				convey.So(r.PositionDelta.String(), convey.ShouldEqual, "-3")
			})
		})
	})
}
