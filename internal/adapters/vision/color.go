package vision

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/okian/stylemate/internal/domain/skintone"
)

// CenterCrop returns the central half of img in both dimensions. When the
// crop would be empty the whole image is returned.
func CenterCrop(img image.Image) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	rect := image.Rect(b.Min.X+w/4, b.Min.Y+h/4, b.Min.X+w*3/4, b.Min.Y+h*3/4)
	if rect.Empty() {
		return imaging.Clone(img)
	}
	return imaging.Crop(img, rect)
}

// MeanRGB averages the colour channels over every pixel of img.
// An empty image averages to black.
func MeanRGB(img image.Image) skintone.RGB {
	n := imaging.Clone(img)
	b := n.Bounds()
	count := b.Dx() * b.Dy()
	if count == 0 {
		return skintone.RGB{}
	}

	var r, g, bl uint64
	for y := 0; y < b.Dy(); y++ {
		row := n.Pix[y*n.Stride : y*n.Stride+b.Dx()*4]
		for i := 0; i < len(row); i += 4 {
			r += uint64(row[i])
			g += uint64(row[i+1])
			bl += uint64(row[i+2])
		}
	}
	c := float64(count)
	return skintone.RGB{R: float64(r) / c, G: float64(g) / c, B: float64(bl) / c}
}

// SkinSample returns the mean colour of the central region, the region the
// skin tone classifier reads.
func SkinSample(img image.Image) skintone.RGB {
	return MeanRGB(CenterCrop(img))
}
