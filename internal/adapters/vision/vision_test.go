package vision_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"testing"

	"github.com/okian/stylemate/internal/adapters/vision"
	"github.com/okian/stylemate/internal/domain/bodytype"
	"github.com/okian/stylemate/internal/domain/skintone"
	"github.com/okian/stylemate/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}

func fill(img *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

func encodePNG(img image.Image) []byte {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// figure draws a dark two-block figure on white: a shoulder block over a hip block.
func figure(shoulderW, hipW int) *image.RGBA {
	img := solid(200, 400, color.White)
	fill(img, image.Rect(100-shoulderW/2, 40, 100+shoulderW/2, 160), color.Black)
	fill(img, image.Rect(100-hipW/2, 160, 100+hipW/2, 361), color.Black)
	return img
}

func TestDecode(t *testing.T) {
	Convey("Given image payloads", t, func() {
		Convey("When the payload is a PNG", func() {
			img, err := vision.Decode(encodePNG(solid(64, 32, color.White)))

			Convey("Then it decodes with its dimensions", func() {
				So(err, ShouldBeNil)
				So(img.Bounds().Dx(), ShouldEqual, 64)
				So(img.Bounds().Dy(), ShouldEqual, 32)
			})
		})

		Convey("When the payload is not an image", func() {
			_, err := vision.Decode([]byte("definitely not pixels"))

			Convey("Then ErrDecode is returned", func() {
				So(errors.Is(err, vision.ErrDecode), ShouldBeTrue)
			})
		})

		Convey("When the payload is empty", func() {
			_, err := vision.Decode(nil)

			Convey("Then ErrDecode is returned", func() {
				So(errors.Is(err, vision.ErrDecode), ShouldBeTrue)
			})
		})

		Convey("When the image is smaller than the minimum", func() {
			_, err := vision.DecodeAndValidate(encodePNG(solid(64, 16, color.White)), 32, 0)

			Convey("Then ErrImageTooSmall is returned", func() {
				So(errors.Is(err, vision.ErrImageTooSmall), ShouldBeTrue)
			})
		})

		Convey("When the minimum is disabled", func() {
			So(vision.ValidateSize(solid(1, 1, color.White), 0), ShouldBeNil)
		})
	})
}

func TestPixelLimit(t *testing.T) {
	Convey("Given a large blank photo that compresses well", t, func() {
		data := encodePNG(image.NewGray(image.Rect(0, 0, 8000, 8000)))

		Convey("Then the payload itself is small", func() {
			So(len(data), ShouldBeLessThan, 1<<20)
		})

		Convey("When it is checked against a 24 megapixel limit", func() {
			img, err := vision.DecodeAndValidate(data, 32, 24_000_000)

			Convey("Then it is rejected from the header alone", func() {
				So(img, ShouldBeNil)
				So(errors.Is(err, vision.ErrImageTooLarge), ShouldBeTrue)
			})
		})
	})

	Convey("Given a small photo", t, func() {
		data := encodePNG(solid(40, 50, color.White))

		Convey("When the limit equals its pixel count", func() {
			So(vision.CheckPixels(data, 40*50), ShouldBeNil)
		})

		Convey("When the limit is one pixel less", func() {
			So(errors.Is(vision.CheckPixels(data, 40*50-1), vision.ErrImageTooLarge), ShouldBeTrue)
		})

		Convey("When the limit is disabled", func() {
			So(vision.CheckPixels(data, 0), ShouldBeNil)
		})
	})

	Convey("Given a payload without an image header", t, func() {
		err := vision.CheckPixels([]byte("not an image"), 100)

		Convey("Then ErrDecode is returned", func() {
			So(errors.Is(err, vision.ErrDecode), ShouldBeTrue)
		})
	})
}

func TestColourSampling(t *testing.T) {
	Convey("Given an image with a coloured centre", t, func() {
		img := solid(100, 80, color.RGBA{R: 10, G: 10, B: 10, A: 255})
		fill(img, image.Rect(25, 20, 75, 60), color.RGBA{R: 200, G: 100, B: 50, A: 255})

		Convey("Then the centre crop is half of each side", func() {
			c := vision.CenterCrop(img)
			So(c.Bounds().Dx(), ShouldEqual, 50)
			So(c.Bounds().Dy(), ShouldEqual, 40)
		})

		Convey("Then the skin sample only sees the centre", func() {
			So(vision.SkinSample(img), ShouldResemble, skintone.RGB{R: 200, G: 100, B: 50})
		})

		Convey("Then the whole-image mean mixes border and centre", func() {
			m := vision.MeanRGB(img)
			So(m.R, ShouldAlmostEqual, (200*2000.0+10*6000.0)/8000.0, 1e-9)
		})
	})

	Convey("Given a one pixel image", t, func() {
		img := solid(1, 1, color.RGBA{R: 240, G: 230, B: 220, A: 255})

		Convey("Then the empty crop falls back to the whole image", func() {
			So(vision.CenterCrop(img).Bounds().Dx(), ShouldEqual, 1)
			So(skintone.Classify(vision.SkinSample(img)), ShouldEqual, types.Light)
		})
	})
}

func TestSilhouetteDetector(t *testing.T) {
	Convey("Given a silhouette detector", t, func() {
		d := vision.NewSilhouetteDetector()
		ctx := context.Background()

		Convey("When the shoulders are wider than the hips", func() {
			l, ok, err := d.Detect(ctx, figure(120, 80))

			Convey("Then the landmarks are normalized to the image width", func() {
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)
				So(l.LeftShoulder, ShouldAlmostEqual, 0.2, 1e-9)
				So(l.RightShoulder, ShouldAlmostEqual, 0.8, 1e-9)
				So(l.LeftHip, ShouldAlmostEqual, 0.3, 1e-9)
				So(l.RightHip, ShouldAlmostEqual, 0.7, 1e-9)
			})

			Convey("And they classify as an inverted triangle", func() {
				bt, ok := bodytype.FromLandmarks(l)
				So(ok, ShouldBeTrue)
				So(bt, ShouldEqual, types.InvertedTriangle)
			})
		})

		Convey("When the hips are wider than the shoulders", func() {
			l, ok, _ := d.Detect(ctx, figure(80, 120))
			bt, _ := bodytype.FromLandmarks(l)

			Convey("Then the figure is a pear", func() {
				So(ok, ShouldBeTrue)
				So(bt, ShouldEqual, types.Pear)
			})
		})

		Convey("When the image is blank", func() {
			_, ok, err := d.Detect(ctx, solid(200, 400, color.White))

			Convey("Then nothing is detected", func() {
				So(err, ShouldBeNil)
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When the figure is too short", func() {
			img := solid(200, 400, color.White)
			fill(img, image.Rect(80, 180, 120, 220), color.Black)
			_, ok, _ := d.Detect(ctx, img)

			Convey("Then nothing is detected", func() {
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When the photo is larger than the analysis size", func() {
			img := solid(800, 1600, color.White)
			fill(img, image.Rect(160, 160, 640, 640), color.Black)
			fill(img, image.Rect(240, 640, 560, 1444), color.Black)
			l, ok, err := d.Detect(ctx, img)

			Convey("Then it is shrunk without moving the landmarks", func() {
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)
				So(l.LeftShoulder, ShouldAlmostEqual, 0.2, 1e-2)
				So(l.RightShoulder, ShouldAlmostEqual, 0.8, 1e-2)
				So(l.LeftHip, ShouldAlmostEqual, 0.3, 1e-2)
				So(l.RightHip, ShouldAlmostEqual, 0.7, 1e-2)
			})
		})

		Convey("When the context is cancelled", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			_, ok, err := d.Detect(cctx, figure(120, 80))

			Convey("Then the context error is returned", func() {
				So(ok, ShouldBeFalse)
				So(errors.Is(err, context.Canceled), ShouldBeTrue)
			})
		})
	})

	Convey("Given detectors with custom thresholds", t, func() {
		ctx := context.Background()

		Convey("When the tolerance exceeds any colour distance", func() {
			d := vision.NewSilhouetteDetector(vision.WithTolerance(800))
			_, ok, err := d.Detect(ctx, figure(120, 80))

			Convey("Then no pixel counts as the figure", func() {
				So(err, ShouldBeNil)
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When the figure must fill nine tenths of the height", func() {
			d := vision.NewSilhouetteDetector(vision.WithMinCoverage(0.9))
			_, ok, _ := d.Detect(ctx, figure(120, 80))

			Convey("Then the default figure is too short", func() {
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When the analysis size is small", func() {
			d := vision.NewSilhouetteDetector(vision.WithMaxSide(100))
			l, ok, _ := d.Detect(ctx, figure(120, 80))
			bt, _ := bodytype.FromLandmarks(l)

			Convey("Then the shape is still recognised", func() {
				So(ok, ShouldBeTrue)
				So(bt, ShouldEqual, types.InvertedTriangle)
			})
		})

		Convey("When invalid values are given", func() {
			d := vision.NewSilhouetteDetector(vision.WithTolerance(-1), vision.WithMinCoverage(2), vision.WithMaxSide(0))
			_, ok, _ := d.Detect(ctx, figure(120, 80))

			Convey("Then the defaults apply", func() {
				So(ok, ShouldBeTrue)
			})
		})
	})
}
