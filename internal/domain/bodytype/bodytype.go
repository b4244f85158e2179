// Package bodytype derives a silhouette category from body measurements or
// from shoulder and hip landmarks found in a photo.
//
// Measurement mode distinguishes five shapes. Photo mode only distinguishes
// three (Pear, InvertedTriangle, Rectangle) because a frontal outline gives no
// reliable waist reading; the two tables are kept separate on purpose.
package bodytype

import (
	"errors"
	"fmt"
	"math"

	"github.com/okian/stylemate/internal/domain/types"
)

// ErrInvalidMeasurement is returned for non-positive or non-finite measurements.
var ErrInvalidMeasurement = errors.New("invalid measurement")

// Undetermined is returned when a photo does not yield usable landmarks.
const Undetermined types.BodyType = "undetermined"

const (
	ratioThreshold   = 1.15 // hips/waist or chest/waist above this marks a dominant part
	hourglassSpread  = 5.0  // max chest-hips difference for an hourglass, same unit as input
	appleWaistFactor = 0.45 // waist above this share of chest+hips marks an apple
	widthThreshold   = 1.08 // shoulder/hip ratio needed to call a photo silhouette
)

// FromMeasurements classifies chest, waist and hip circumferences. The rules
// are checked in order and the first match wins.
func FromMeasurements(chest, waist, hips float64) (types.BodyType, error) {
	if err := validate("chest", chest); err != nil {
		return "", err
	}
	if err := validate("waist", waist); err != nil {
		return "", err
	}
	if err := validate("hips", hips); err != nil {
		return "", err
	}

	switch {
	case hips/waist > ratioThreshold:
		return types.Pear, nil
	case chest/waist > ratioThreshold:
		return types.InvertedTriangle, nil
	case math.Abs(chest-hips) <= hourglassSpread:
		return types.Hourglass, nil
	case waist > (chest+hips)*appleWaistFactor:
		return types.Apple, nil
	default:
		return types.Rectangle, nil
	}
}

func validate(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%w: %s must be a positive number, got %v", ErrInvalidMeasurement, name, v)
	}
	return nil
}

// Landmarks holds normalized horizontal positions (0..1) of the shoulders
// and hips as produced by a pose or silhouette detector.
type Landmarks struct {
	LeftShoulder  float64 `json:"left_shoulder"`
	RightShoulder float64 `json:"right_shoulder"`
	LeftHip       float64 `json:"left_hip"`
	RightHip      float64 `json:"right_hip"`
}

// ShoulderWidth returns the horizontal shoulder distance.
func (l Landmarks) ShoulderWidth() float64 { return math.Abs(l.RightShoulder - l.LeftShoulder) }

// HipWidth returns the horizontal hip distance.
func (l Landmarks) HipWidth() float64 { return math.Abs(l.RightHip - l.LeftHip) }

// FromLandmarks classifies detected landmarks. ok is false and the result is
// Undetermined when either width is zero or not finite.
func FromLandmarks(l Landmarks) (types.BodyType, bool) {
	return FromWidths(l.ShoulderWidth(), l.HipWidth())
}

// FromWidths classifies a shoulder and hip width taken from a photo.
func FromWidths(shoulder, hip float64) (types.BodyType, bool) {
	if !usable(shoulder) || !usable(hip) {
		return Undetermined, false
	}
	switch {
	case hip > shoulder*widthThreshold:
		return types.Pear, true
	case shoulder > hip*widthThreshold:
		return types.InvertedTriangle, true
	default:
		return types.Rectangle, true
	}
}

func usable(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}
