package app

import (
	"context"
	"fmt"

	"github.com/okian/stylemate/internal/adapters/mq/worker"
	"github.com/okian/stylemate/internal/adapters/vision"
	"github.com/okian/stylemate/internal/domain/bodytype"
	"github.com/okian/stylemate/internal/domain/model"
	"github.com/okian/stylemate/internal/domain/skintone"
)

// photoProcessor decodes a job's photo and runs the classifier for its kind.
type photoProcessor struct {
	minSide   int
	maxPixels int
	detector  vision.LandmarkDetector
}

func (p *photoProcessor) Process(ctx context.Context, j worker.Job) worker.Result { //nolint:gocritic // hugeParam
	img, err := vision.DecodeAndValidate(j.Data, p.minSide, p.maxPixels)
	if err != nil {
		return worker.Result{Err: err}
	}

	switch j.Kind {
	case model.JobSkinTone:
		rgb := vision.SkinSample(img)
		return worker.Result{
			SkinTone:   skintone.Classify(rgb),
			Brightness: skintone.Brightness(rgb),
			MeanRGB:    rgb,
		}
	case model.JobBodyType:
		l, ok, err := p.detector.Detect(ctx, img)
		if err != nil {
			return worker.Result{Err: err}
		}
		if !ok {
			return worker.Result{BodyType: bodytype.Undetermined}
		}
		bt, ok := bodytype.FromLandmarks(l)
		return worker.Result{BodyType: bt, Landmarks: l, Detected: ok}
	default:
		return worker.Result{Err: fmt.Errorf("unknown job kind %q", j.Kind)}
	}
}
