package repository_test

import (
	"context"
	"testing"

	repository "github.com/playmetrics/podium/internal/adapters/repository"
	"github.com/playmetrics/podium/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMemoryStore(t *testing.T) {
	Convey("Given an empty snapshot store", t, func() {
		ctx := context.Background()
		store := repository.NewMemoryStore()

		Convey("When reading before any publish", func() {
			_, err := store.Latest(ctx)

			Convey("Then it reports ErrEmpty", func() {
				So(err, ShouldEqual, repository.ErrEmpty)
				So(store.Count(ctx), ShouldEqual, 0)
			})
		})

		Convey("When publishing a first snapshot", func() {
			ok := store.Replace(ctx, model.Snapshot{
				Generation: 1,
				Entrants:   []model.Entrant{{ID: "a"}, {ID: "b"}},
			})

			Convey("Then it is accepted and readable", func() {
				So(ok, ShouldBeTrue)
				snap, err := store.Latest(ctx)
				So(err, ShouldBeNil)
				So(snap.Generation, ShouldEqual, 1)
				So(store.Count(ctx), ShouldEqual, 2)
			})
		})

		Convey("When a stale response lands after a newer one", func() {
			So(store.Replace(ctx, model.Snapshot{Generation: 3, Entrants: []model.Entrant{{ID: "new"}}}), ShouldBeTrue)
			ok := store.Replace(ctx, model.Snapshot{Generation: 2, Entrants: []model.Entrant{{ID: "old"}}})

			Convey("Then the stale snapshot is discarded", func() {
				So(ok, ShouldBeFalse)
				snap, err := store.Latest(ctx)
				So(err, ShouldBeNil)
				So(snap.Generation, ShouldEqual, 3)
				So(snap.Entrants[0].ID, ShouldEqual, "new")
			})
		})

		Convey("When the same generation is replayed", func() {
			So(store.Replace(ctx, model.Snapshot{Generation: 5}), ShouldBeTrue)
			ok := store.Replace(ctx, model.Snapshot{Generation: 5})

			Convey("Then the replay is rejected", func() {
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When readers hold a snapshot across a publish", func() {
			So(store.Replace(ctx, model.Snapshot{Generation: 1, Entrants: []model.Entrant{{ID: "a"}}}), ShouldBeTrue)
			held, err := store.Latest(ctx)
			So(err, ShouldBeNil)
			So(store.Replace(ctx, model.Snapshot{Generation: 2, Entrants: []model.Entrant{{ID: "b"}}}), ShouldBeTrue)

			Convey("Then the held snapshot is unchanged", func() {
				So(held.Generation, ShouldEqual, 1)
				So(held.Entrants[0].ID, ShouldEqual, "a")
			})
		})
	})
}
