// Package vision extracts the pixel features the classifiers need from an
// uploaded photograph: the mean colour of the central region and a coarse
// shoulder/hip silhouette.
package vision

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	// ErrDecode is returned when the payload is not a supported image.
	ErrDecode = errors.New("image: unknown or unsupported format")
	// ErrImageTooSmall is returned when either side is below the configured minimum.
	ErrImageTooSmall = errors.New("image: too small")
	// ErrImageTooLarge is returned when the declared pixel count exceeds the limit.
	ErrImageTooLarge = errors.New("image: too many pixels")
)

// Decode decodes an image, applying the EXIF orientation when present.
// WebP payloads the registered decoder rejects are retried with libwebp.
func Decode(data []byte) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrDecode)
	}
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err == nil {
		return img, nil
	}
	if img, werr := webp.Decode(bytes.NewReader(data)); werr == nil {
		return img, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrDecode, err)
}

// ValidateSize rejects images with a side shorter than minSide pixels.
// A non-positive minSide disables the check.
func ValidateSize(img image.Image, minSide int) error {
	if minSide <= 0 {
		return nil
	}
	b := img.Bounds()
	if b.Dx() < minSide || b.Dy() < minSide {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrImageTooSmall, b.Dx(), b.Dy(), minSide, minSide)
	}
	return nil
}

// CheckPixels reads only the image header and rejects payloads whose
// width*height exceeds maxPixels. A non-positive maxPixels disables the check.
func CheckPixels(data []byte, maxPixels int) error {
	if maxPixels <= 0 {
		return nil
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		var werr error
		if cfg, werr = webp.DecodeConfig(bytes.NewReader(data)); werr != nil {
			return fmt.Errorf("%w: %v", ErrDecode, err)
		}
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrDecode, cfg.Width, cfg.Height)
	}
	if int64(cfg.Width)*int64(cfg.Height) > int64(maxPixels) {
		return fmt.Errorf("%w: %dx%d, limit %d pixels", ErrImageTooLarge, cfg.Width, cfg.Height, maxPixels)
	}
	return nil
}

// DecodeAndValidate checks the declared dimensions, decodes data and checks
// its size.
func DecodeAndValidate(data []byte, minSide, maxPixels int) (image.Image, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrDecode)
	}
	if err := CheckPixels(data, maxPixels); err != nil {
		return nil, err
	}
	img, err := Decode(data)
	if err != nil {
		return nil, err
	}
	if err := ValidateSize(img, minSide); err != nil {
		return nil, err
	}
	return img, nil
}
