package types_test

import (
	"encoding/json"
	"testing"

	types "github.com/playmetrics/podium/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestViewModel(t *testing.T) {
	Convey("Given a view model", t, func() {
		vm := types.ViewModel{
			Podium: []types.Row{{Rank: 1, Name: "Jane Doe", Tier: "Master"}},
			Rows:   []types.Row{{Rank: 1}, {Rank: 2}},
			Position: types.Position{
				EntrantID: "e1",
				Rank:      7,
				InScope:   false,
			},
			Pager:       types.Pager{CurrentPage: 1, TotalPages: 3, HasMore: true},
			LastUpdated: "2026-08-31T10:00:00Z",
		}

		Convey("When encoding to JSON", func() {
			data, err := json.Marshal(vm)

			Convey("Then the wire field names are stable", func() {
				So(err, ShouldBeNil)
				So(string(data), ShouldContainSubstring, `"current_page":1`)
				So(string(data), ShouldContainSubstring, `"in_scope":false`)
				So(string(data), ShouldContainSubstring, `"last_updated"`)
			})
		})

		Convey("Then a zero Position still carries a rank field, never undefined", func() {
			data, err := json.Marshal(types.Position{})
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, `"rank":0`)
		})
	})
}
