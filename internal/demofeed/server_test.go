package demofeed_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/playmetrics/podium/internal/adapters/feed"
	"github.com/playmetrics/podium/internal/demofeed"
	"github.com/playmetrics/podium/internal/domain/tier"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDemoFeedServer(t *testing.T) {
	Convey("Given a demo feed server", t, func() {
		mux := http.NewServeMux()
		demofeed.NewServer(demofeed.NewGenerator(demofeed.WithRosterSize(25), demofeed.WithSeed(7))).Register(mux)
		srv := httptest.NewServer(mux)
		defer srv.Close()

		Convey("When the payload is fetched and decoded like the real upstream", func() {
			client := feed.NewClient(srv.URL + "/leaderboard")
			body, err := client.Fetch(context.Background())
			So(err, ShouldBeNil)

			snap, err := feed.DecodeSnapshot(body, 1)

			Convey("Then it decodes cleanly with the full roster", func() {
				So(err, ShouldBeNil)
				So(snap.RowDefects, ShouldEqual, 0)
				So(snap.Entrants, ShouldHaveLength, 25)
				So(snap.LastUpdated, ShouldNotBeEmpty)
			})

			Convey("Then the current user is one of the roster rows", func() {
				So(err, ShouldBeNil)
				found := false
				for _, e := range snap.Entrants {
					if e.ID == snap.Subject.ID {
						found = true
						break
					}
				}
				So(found, ShouldBeTrue)
				So(snap.Subject.Rank, ShouldBeBetweenOrEqual, 1, 25)
			})

			Convey("Then the advertised ladder is usable as an override", func() {
				So(err, ShouldBeNil)
				tiers := make([]tier.Tier, 0, len(snap.LevelTiers))
				for _, lt := range snap.LevelTiers {
					tiers = append(tiers, tier.Tier{Name: lt.Name, MinXP: lt.MinXP})
				}
				_, ladderErr := tier.NewLadder(tiers)
				So(ladderErr, ShouldBeNil)
			})
		})

		Convey("When the payload is fetched twice", func() {
			client := feed.NewClient(srv.URL + "/leaderboard")
			first, err := client.Fetch(context.Background())
			So(err, ShouldBeNil)
			second, err := client.Fetch(context.Background())
			So(err, ShouldBeNil)

			firstSnap, err := feed.DecodeSnapshot(first, 1)
			So(err, ShouldBeNil)
			secondSnap, err := feed.DecodeSnapshot(second, 2)
			So(err, ShouldBeNil)

			Convey("Then identities are stable while scores drift", func() {
				So(secondSnap.Entrants[0].ID, ShouldEqual, firstSnap.Entrants[0].ID)
				So(secondSnap.Subject.ID, ShouldEqual, firstSnap.Subject.ID)
			})
		})

		Convey("When a non-GET method is used", func() {
			resp, err := http.Post(srv.URL+"/leaderboard", "application/json", nil)
			So(err, ShouldBeNil)
			defer func() { _ = resp.Body.Close() }()

			Convey("Then the route does not exist for that method", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}
