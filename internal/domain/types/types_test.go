package types_test

import (
	"errors"
	"testing"

	types "github.com/okian/stylemate/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseOccasion(t *testing.T) {
	Convey("Given the occasion parser", t, func() {
		Convey("When parsing every slug and label", func() {
			Convey("Then each round-trips to the same occasion", func() {
				for _, o := range types.Occasions() {
					bySlug, err := types.ParseOccasion(string(o))
					So(err, ShouldBeNil)
					So(bySlug, ShouldEqual, o)

					byLabel, err := types.ParseOccasion(o.Label())
					So(err, ShouldBeNil)
					So(byLabel, ShouldEqual, o)
				}
			})
		})

		Convey("When parsing labels with odd casing and padding", func() {
			o, err := types.ParseOccasion("  office / FORMAL ")
			So(err, ShouldBeNil)
			So(o, ShouldEqual, types.Office)
		})

		Convey("When parsing historical aliases", func() {
			o, err := types.ParseOccasion("Beach look")
			So(err, ShouldBeNil)
			So(o, ShouldEqual, types.Beach)

			o, err = types.ParseOccasion("Wedding")
			So(err, ShouldBeNil)
			So(o, ShouldEqual, types.Traditional)
		})

		Convey("When parsing text that only contains an occasion", func() {
			_, err := types.ParseOccasion("Office party")

			Convey("Then it should be rejected rather than substring matched", func() {
				So(errors.Is(err, types.ErrUnknownValue), ShouldBeTrue)
			})
		})
	})
}

func TestParseEnums(t *testing.T) {
	Convey("Given the enum parsers", t, func() {
		Convey("When parsing genders", func() {
			g, err := types.ParseGender("Woman")
			So(err, ShouldBeNil)
			So(g, ShouldEqual, types.Woman)

			_, err = types.ParseGender("other")
			So(errors.Is(err, types.ErrUnknownValue), ShouldBeTrue)
		})

		Convey("When parsing age brackets by label", func() {
			a, err := types.ParseAgeBracket("Newborn (0–1)")
			So(err, ShouldBeNil)
			So(a, ShouldEqual, types.Newborn)

			a, err = types.ParseAgeBracket("child")
			So(err, ShouldBeNil)
			So(a, ShouldEqual, types.Child)
		})

		Convey("When parsing skin tones", func() {
			for _, tone := range types.SkinTones() {
				parsed, err := types.ParseSkinTone(tone.Label())
				So(err, ShouldBeNil)
				So(parsed, ShouldEqual, tone)
			}
			_, err := types.ParseSkinTone("olive")
			So(err, ShouldNotBeNil)
		})

		Convey("When parsing body types", func() {
			b, err := types.ParseBodyType("Inverted Triangle")
			So(err, ShouldBeNil)
			So(b, ShouldEqual, types.InvertedTriangle)

			_, err = types.ParseBodyType("triangle")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestBodyTypesFor(t *testing.T) {
	Convey("Given the gender partitioned body types", t, func() {
		Convey("Then women have the five silhouette shapes", func() {
			So(types.BodyTypesFor(types.Woman, types.Adult), ShouldResemble, []types.BodyType{
				types.Pear, types.Apple, types.Hourglass, types.Rectangle, types.InvertedTriangle,
			})
		})

		Convey("Then men have the four canonical builds", func() {
			So(types.BodyTypesFor(types.Man, types.Teen), ShouldResemble, []types.BodyType{
				types.Slender, types.Broad, types.Athletic, types.Oval,
			})
		})

		Convey("Then kids have a single sentinel", func() {
			So(types.BodyTypesFor(types.Kid, types.Child), ShouldResemble, []types.BodyType{types.ChildBody})
		})

		Convey("Then newborns always get the newborn sentinel", func() {
			for _, g := range types.Genders() {
				So(types.BodyTypesFor(g, types.Newborn), ShouldResemble, []types.BodyType{types.NewbornBody})
			}
		})

		Convey("Then an unknown gender has no body types", func() {
			So(types.BodyTypesFor(types.Gender("robot"), types.Adult), ShouldBeEmpty)
		})
	})
}
