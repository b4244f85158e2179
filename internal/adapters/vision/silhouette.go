package vision

import (
	"context"
	"image"

	"github.com/disintegration/imaging"

	"github.com/okian/stylemate/internal/domain/bodytype"
)

// LandmarkDetector locates shoulders and hips in a photo. ok is false when no
// usable pose was found; that is a normal outcome, not an error.
type LandmarkDetector interface {
	Detect(ctx context.Context, img image.Image) (l bodytype.Landmarks, ok bool, err error)
}

const (
	defaultTolerance   = 90
	defaultMinCoverage = 0.3
	defaultMaxSide     = 512
	shoulderLine       = 0.22
	hipLine            = 0.52
	bandHalf           = 0.02
)

// SilhouetteDetector is a LandmarkDetector for photos of a single person
// against a plain background. The background colour is estimated from the
// image border; the figure's horizontal extent is read on a shoulder band and
// a hip band placed at fixed fractions of the figure height.
//
// Images with a side longer than the analysis size are shrunk first; the
// landmarks are fractions of the width, so scale does not change them.
type SilhouetteDetector struct {
	tolerance   int
	minCoverage float64
	maxSide     int
}

// DetectorOption configures a SilhouetteDetector.
type DetectorOption func(*SilhouetteDetector)

// WithTolerance sets the summed per-channel distance above which a pixel is
// treated as foreground.
func WithTolerance(t int) DetectorOption {
	return func(d *SilhouetteDetector) {
		if t > 0 {
			d.tolerance = t
		}
	}
}

// WithMinCoverage sets the minimum figure height as a fraction of the image height.
func WithMinCoverage(f float64) DetectorOption {
	return func(d *SilhouetteDetector) {
		if f > 0 && f <= 1 {
			d.minCoverage = f
		}
	}
}

// WithMaxSide sets the longest side, in pixels, an image is scanned at.
func WithMaxSide(px int) DetectorOption {
	return func(d *SilhouetteDetector) {
		if px >= 3 {
			d.maxSide = px
		}
	}
}

// NewSilhouetteDetector creates a detector with the given options.
func NewSilhouetteDetector(opts ...DetectorOption) *SilhouetteDetector {
	d := &SilhouetteDetector{
		tolerance:   defaultTolerance,
		minCoverage: defaultMinCoverage,
		maxSide:     defaultMaxSide,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Detect implements LandmarkDetector.
func (d *SilhouetteDetector) Detect(ctx context.Context, img image.Image) (bodytype.Landmarks, bool, error) {
	n := d.prepare(img)
	w, h := n.Bounds().Dx(), n.Bounds().Dy()
	if w < 3 || h < 3 {
		return bodytype.Landmarks{}, false, nil
	}

	bg := borderMean(n)
	mask := make([]bool, w*h)
	top, bottom := -1, -1
	for y := 0; y < h; y++ {
		if y%64 == 0 {
			if err := ctx.Err(); err != nil {
				return bodytype.Landmarks{}, false, err
			}
		}
		for x := 0; x < w; x++ {
			i := y*n.Stride + x*4
			if distance(n.Pix[i:i+3], bg) > d.tolerance {
				mask[y*w+x] = true
				if top < 0 {
					top = y
				}
				bottom = y
			}
		}
	}
	if top < 0 {
		return bodytype.Landmarks{}, false, nil
	}
	span := bottom - top + 1
	if float64(span) < d.minCoverage*float64(h) {
		return bodytype.Landmarks{}, false, nil
	}

	sl, sr, ok := bandExtent(mask, w, top, span, shoulderLine)
	if !ok {
		return bodytype.Landmarks{}, false, nil
	}
	hl, hr, ok := bandExtent(mask, w, top, span, hipLine)
	if !ok {
		return bodytype.Landmarks{}, false, nil
	}

	fw := float64(w)
	return bodytype.Landmarks{
		LeftShoulder:  sl / fw,
		RightShoulder: sr / fw,
		LeftHip:       hl / fw,
		RightHip:      hr / fw,
	}, true, nil
}

// prepare returns an NRGBA copy of img no larger than maxSide on either side.
func (d *SilhouetteDetector) prepare(img image.Image) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() > d.maxSide || b.Dy() > d.maxSide {
		return imaging.Fit(img, d.maxSide, d.maxSide, imaging.Box)
	}
	return imaging.Clone(img)
}

// bandExtent averages the leftmost and rightmost foreground column over the
// rows around top+span*at.
func bandExtent(mask []bool, w, top, span int, at float64) (left, right float64, ok bool) {
	center := top + int(float64(span)*at)
	half := int(float64(span) * bandHalf)
	rows := 0
	for y := center - half; y <= center+half; y++ {
		if y < top || y >= top+span {
			continue
		}
		l, r := -1, -1
		for x := 0; x < w; x++ {
			if mask[y*w+x] {
				if l < 0 {
					l = x
				}
				r = x
			}
		}
		if l < 0 {
			continue
		}
		left += float64(l)
		right += float64(r + 1)
		rows++
	}
	if rows == 0 {
		return 0, 0, false
	}
	return left / float64(rows), right / float64(rows), true
}

func borderMean(n *image.NRGBA) [3]int {
	w, h := n.Bounds().Dx(), n.Bounds().Dy()
	var sum [3]int
	count := 0
	add := func(x, y int) {
		i := y*n.Stride + x*4
		sum[0] += int(n.Pix[i])
		sum[1] += int(n.Pix[i+1])
		sum[2] += int(n.Pix[i+2])
		count++
	}
	for x := 0; x < w; x++ {
		add(x, 0)
		add(x, h-1)
	}
	for y := 1; y < h-1; y++ {
		add(0, y)
		add(w-1, y)
	}
	return [3]int{sum[0] / count, sum[1] / count, sum[2] / count}
}

func distance(px []uint8, bg [3]int) int {
	d := 0
	for c := 0; c < 3; c++ {
		v := int(px[c]) - bg[c]
		if v < 0 {
			v = -v
		}
		d += v
	}
	return d
}
