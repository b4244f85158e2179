package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/okian/stylemate/internal/domain/bodytype"
	"github.com/okian/stylemate/internal/domain/skintone"
	"github.com/okian/stylemate/internal/domain/types"
)

// JobKind selects what a photo job computes.
type JobKind string

const (
	JobSkinTone JobKind = "skin_tone"
	JobBodyType JobKind = "body_type"
)

// PhotoJob is an uploaded photo waiting to be analysed. Result is buffered so
// a worker never blocks on a caller that stopped waiting.
type PhotoJob struct {
	ID        string
	Kind      JobKind
	Data      []byte
	Submitted time.Time
	Result    chan PhotoResult
}

// NewPhotoJob wraps data in a job with a fresh id.
func NewPhotoJob(kind JobKind, data []byte) PhotoJob {
	return PhotoJob{
		ID:        uuid.NewString(),
		Kind:      kind,
		Data:      data,
		Submitted: time.Now(),
		Result:    make(chan PhotoResult, 1),
	}
}

// PhotoResult is the outcome of a PhotoJob. Only the fields for the job's
// kind are set.
type PhotoResult struct {
	JobID string

	SkinTone   types.SkinTone
	Brightness float64
	MeanRGB    skintone.RGB

	BodyType  types.BodyType
	Landmarks bodytype.Landmarks
	Detected  bool

	Err error
}
