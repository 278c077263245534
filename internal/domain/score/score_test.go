package score_test

import (
	"testing"

	score "github.com/playmetrics/podium/internal/domain/score"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNormalizer_Normalize(t *testing.T) {
	Convey("Given a normalizer with the default ratio", t, func() {
		n := score.NewNormalizer()

		Convey("When normalizing raw points", func() {
			Convey("Then it should floor-divide by ten", func() {
				So(n.Normalize(9999), ShouldEqual, 999)
				So(n.Normalize(1000), ShouldEqual, 100)
				So(n.Normalize(1009), ShouldEqual, 100)
				So(n.Normalize(9), ShouldEqual, 0)
			})
		})

		Convey("When normalizing zero points", func() {
			Convey("Then the result is zero", func() {
				So(n.Normalize(0), ShouldEqual, 0)
			})
		})

		Convey("When normalizing negative points", func() {
			Convey("Then the result clamps to zero", func() {
				So(n.Normalize(-500), ShouldEqual, 0)
			})
		})
	})
}

func TestNormalizer_Options(t *testing.T) {
	Convey("Given a normalizer with a custom ratio", t, func() {
		n := score.NewNormalizer(score.WithRatio(100))

		Convey("Then the custom ratio applies", func() {
			So(n.Ratio(), ShouldEqual, 100)
			So(n.Normalize(2500), ShouldEqual, 25)
		})
	})

	Convey("Given an invalid ratio option", t, func() {
		n := score.NewNormalizer(score.WithRatio(0))

		Convey("Then the default ratio is kept", func() {
			So(n.Ratio(), ShouldEqual, 10)
		})
	})
}

func TestNormalizer_Resolve(t *testing.T) {
	Convey("Given a normalizer", t, func() {
		n := score.NewNormalizer()

		Convey("When the payload supplies a precomputed XP value", func() {
			supplied := 4242
			xp := n.Resolve(100, &supplied)

			Convey("Then the supplied value wins over derivation", func() {
				So(xp, ShouldEqual, 4242)
			})
		})

		Convey("When no XP value is supplied", func() {
			xp := n.Resolve(1234, nil)

			Convey("Then XP is derived from points", func() {
				So(xp, ShouldEqual, 123)
			})
		})

		Convey("When the supplied value is zero", func() {
			supplied := 0
			xp := n.Resolve(1234, &supplied)

			Convey("Then presence of the field still overrides", func() {
				So(xp, ShouldEqual, 0)
			})
		})
	})
}
