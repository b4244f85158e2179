// Package skintone maps average image colour to a coarse skin tone bucket.
//
// The classifier looks at a single mean colour, so lighting and white balance
// move the result as much as the subject does. It is a styling hint, not a
// measurement.
package skintone

import (
	"math"

	"github.com/okian/stylemate/internal/domain/types"
)

// Bucket thresholds on mean brightness (0-255). Each bound is exclusive.
const (
	lightAbove  = 200.0
	mediumAbove = 140.0
	tanAbove    = 90.0
)

// RGB is a mean colour with channels on the 0-255 scale.
type RGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// Brightness returns the unweighted channel mean.
func Brightness(c RGB) float64 {
	return (c.R + c.G + c.B) / 3
}

// Classify maps a mean colour to a skin tone.
func Classify(c RGB) types.SkinTone {
	return FromBrightness(Brightness(c))
}

// FromBrightness maps brightness to a bucket; first match wins. NaN falls
// through to Deep so every input has an answer.
func FromBrightness(b float64) types.SkinTone {
	switch {
	case math.IsNaN(b):
		return types.Deep
	case b > lightAbove:
		return types.Light
	case b > mediumAbove:
		return types.Medium
	case b > tanAbove:
		return types.Tan
	default:
		return types.Deep
	}
}
