package skintone_test

import (
	"math"
	"testing"

	"github.com/okian/stylemate/internal/domain/skintone"
	"github.com/okian/stylemate/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFromBrightness(t *testing.T) {
	Convey("Given the brightness buckets", t, func() {
		cases := []struct {
			brightness float64
			want       types.SkinTone
		}{
			{255, types.Light},
			{200.01, types.Light},
			{200, types.Medium},
			{140.01, types.Medium},
			{140, types.Tan},
			{90.01, types.Tan},
			{90, types.Deep},
			{0, types.Deep},
			{-5, types.Deep},
			{math.Inf(1), types.Light},
			{math.Inf(-1), types.Deep},
			{math.NaN(), types.Deep},
		}

		Convey("Then each boundary is exclusive on the upper bucket", func() {
			for _, c := range cases {
				So(skintone.FromBrightness(c.brightness), ShouldEqual, c.want)
			}
		})
	})
}

func TestClassify(t *testing.T) {
	Convey("Given a mean colour", t, func() {
		Convey("When the channels average above 200", func() {
			So(skintone.Classify(skintone.RGB{R: 230, G: 210, B: 190}), ShouldEqual, types.Light)
		})

		Convey("When the channels average exactly 140", func() {
			c := skintone.RGB{R: 180, G: 140, B: 100}
			So(skintone.Brightness(c), ShouldEqual, 140)
			So(skintone.Classify(c), ShouldEqual, types.Tan)
		})

		Convey("When the channels are dark", func() {
			So(skintone.Classify(skintone.RGB{R: 90, G: 60, B: 40}), ShouldEqual, types.Deep)
		})

		Convey("Then every brightness from 0 to 255 lands in exactly one bucket", func() {
			valid := map[types.SkinTone]bool{}
			for _, tone := range types.SkinTones() {
				valid[tone] = true
			}
			for b := 0.0; b <= 255; b += 0.5 {
				So(valid[skintone.FromBrightness(b)], ShouldBeTrue)
			}
		})
	})
}
