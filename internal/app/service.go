// Package app provides the core service that implements the dependencies
// required by the HTTP API.
package app

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"strings"
	"sync"

	"github.com/okian/stylemate/internal/adapters/mq/queue"
	"github.com/okian/stylemate/internal/adapters/mq/worker"
	"github.com/okian/stylemate/internal/adapters/vision"
	"github.com/okian/stylemate/internal/domain/bodytype"
	"github.com/okian/stylemate/internal/domain/links"
	"github.com/okian/stylemate/internal/domain/model"
	"github.com/okian/stylemate/internal/domain/recommend"
	"github.com/okian/stylemate/internal/domain/skintone"
	"github.com/okian/stylemate/internal/domain/types"
	"github.com/okian/stylemate/pkg/logger"
	"github.com/okian/stylemate/pkg/metrics"
)

// Accepted range for body measurements, in centimetres.
const (
	MinMeasurement = 20.0
	MaxMeasurement = 160.0
)

const (
	defaultQueueSize    = 256
	defaultMinImageSize = 32
	defaultMaxPixels    = 24_000_000
)

// SkinToneResult is the outcome of classifying a photo's skin tone.
type SkinToneResult struct {
	SkinTone   types.SkinTone `json:"skin_tone"`
	Brightness float64        `json:"brightness"`
	MeanRGB    skintone.RGB   `json:"mean_rgb"`
}

// BodyTypeResult is the outcome of classifying a body type. Detected is false
// when a photo showed no usable silhouette; BodyType is then undetermined.
type BodyTypeResult struct {
	BodyType  types.BodyType      `json:"body_type"`
	Detected  bool                `json:"detected"`
	Landmarks *bodytype.Landmarks `json:"landmarks,omitempty"`
}

// Service implements the API dependencies for StyleMate.
type Service struct {
	mu sync.RWMutex

	engine   *recommend.Engine
	detector vision.LandmarkDetector
	queue    *queue.InMemoryQueue
	pool     *worker.Pool

	workerCount    int
	queueSize      int
	minImageSize   int
	maxImagePixels int
	strictRules    bool

	started bool

	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount:    runtime.NumCPU(),
		queueSize:      defaultQueueSize,
		minImageSize:   defaultMinImageSize,
		maxImagePixels: defaultMaxPixels,
		detector:       vision.NewSilhouetteDetector(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}
	s.engine = recommend.NewEngine(
		recommend.WithStrict(s.strictRules),
		recommend.WithLogger(s.logger.Named("rules")),
	)

	return s
}

// Start initializes the photo queue and worker pool.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	s.logger.Info(ctx, "starting stylemate service...")

	s.queue = queue.NewInMemoryQueue(queue.WithCapacity(s.queueSize))
	s.pool = worker.NewPool(s.workerCount, s.queue, &photoProcessor{
		minSide:   s.minImageSize,
		maxPixels: s.maxImagePixels,
		detector:  s.detector,
	})
	s.pool.Start(ctx)

	s.started = true
	s.logger.Info(ctx, "stylemate service started",
		logger.Int("workers", s.workerCount),
		logger.Int("queueSize", s.queueSize),
		logger.Int("minImageSize", s.minImageSize),
		logger.Int("maxImagePixels", s.maxImagePixels),
		logger.Bool("strictRules", s.strictRules),
	)

	return nil
}

// Stop drains the photo queue and stops the workers.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return nil
	}

	s.logger.Info(ctx, "stopping stylemate service...")
	s.started = false
	if err := s.pool.Shutdown(ctx); err != nil {
		s.logger.Warn(ctx, "worker pool did not drain", logger.Error(err))
		return err
	}
	s.logger.Info(ctx, "stylemate service stopped")
	return nil
}

// Recommend parses a profile and returns items with shopping links.
func (s *Service) Recommend(ctx context.Context, in model.ProfileInput) (recommend.Recommendation, error) {
	p, err := model.ParseProfile(in)
	if err != nil {
		metrics.RecordErrorByComponent("service", "invalid_profile")
		return recommend.Recommendation{}, err
	}

	rec := s.engine.Recommend(ctx, p)
	metrics.RecordRecommendation(string(p.Occasion()), string(p.Gender()), len(rec.Items))
	s.logger.Debug(ctx, "recommendation served",
		logger.String("occasion", string(p.Occasion())),
		logger.String("gender", string(p.Gender())),
		logger.String("age", string(p.AgeBracket())),
		logger.Int("items", len(rec.Items)),
	)
	return rec, nil
}

// ClassifyBodyTypeFromMeasurements classifies chest, waist and hip
// circumferences in centimetres.
func (s *Service) ClassifyBodyTypeFromMeasurements(ctx context.Context, chest, waist, hips float64) (BodyTypeResult, error) {
	for _, m := range []struct {
		name string
		v    float64
	}{{"chest", chest}, {"waist", waist}, {"hips", hips}} {
		if math.IsNaN(m.v) || m.v < MinMeasurement || m.v > MaxMeasurement {
			return BodyTypeResult{}, fmt.Errorf("%w: %s must be between %.0f and %.0f cm, got %v",
				bodytype.ErrInvalidMeasurement, m.name, MinMeasurement, MaxMeasurement, m.v)
		}
	}

	bt, err := bodytype.FromMeasurements(chest, waist, hips)
	if err != nil {
		return BodyTypeResult{}, err
	}
	metrics.RecordClassification("body_measurements", string(bt))
	s.logger.Debug(ctx, "body type from measurements", logger.String("body_type", string(bt)))
	return BodyTypeResult{BodyType: bt, Detected: true}, nil
}

// ClassifySkinTone analyses a photo on the worker pool.
func (s *Service) ClassifySkinTone(ctx context.Context, data []byte) (SkinToneResult, error) {
	res, err := s.submit(ctx, model.JobSkinTone, data)
	if err != nil {
		return SkinToneResult{}, err
	}
	metrics.RecordClassification("skin_tone", string(res.SkinTone))
	return SkinToneResult{SkinTone: res.SkinTone, Brightness: res.Brightness, MeanRGB: res.MeanRGB}, nil
}

// ClassifyBodyTypeFromPhoto analyses a photo's silhouette on the worker pool.
// A photo without a usable silhouette is not an error.
func (s *Service) ClassifyBodyTypeFromPhoto(ctx context.Context, data []byte) (BodyTypeResult, error) {
	res, err := s.submit(ctx, model.JobBodyType, data)
	if err != nil {
		return BodyTypeResult{}, err
	}
	metrics.RecordClassification("body_photo", string(res.BodyType))
	out := BodyTypeResult{BodyType: res.BodyType, Detected: res.Detected}
	if res.Detected {
		l := res.Landmarks
		out.Landmarks = &l
	}
	return out, nil
}

// submit enqueues a photo job and waits for its result or for ctx.
func (s *Service) submit(ctx context.Context, kind model.JobKind, data []byte) (model.PhotoResult, error) {
	s.mu.RLock()
	q, started := s.queue, s.started
	s.mu.RUnlock()
	if !started {
		return model.PhotoResult{}, ErrNotStarted
	}

	job := model.NewPhotoJob(kind, data)
	if err := q.Enqueue(ctx, job); err != nil {
		switch {
		case errors.Is(err, queue.ErrFull):
			return model.PhotoResult{}, fmt.Errorf("%w: %w", ErrBackpressure, err)
		case errors.Is(err, queue.ErrClosed):
			return model.PhotoResult{}, fmt.Errorf("%w: %w", ErrNotStarted, err)
		default:
			return model.PhotoResult{}, err
		}
	}
	s.logger.Debug(ctx, "photo job queued", logger.String("job_id", job.ID), logger.String("kind", string(kind)))

	select {
	case res := <-job.Result:
		if res.Err != nil {
			return model.PhotoResult{}, res.Err
		}
		return res, nil
	case <-ctx.Done():
		return model.PhotoResult{}, ctx.Err()
	}
}

// Links builds the shopping links for a keyword. An empty gender adds no prefix.
func (s *Service) Links(_ context.Context, keyword, gender string) (links.LinkSet, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, ErrEmptyKeyword
	}
	var g types.Gender
	if strings.TrimSpace(gender) != "" {
		var err error
		if g, err = types.ParseGender(gender); err != nil {
			return nil, fmt.Errorf("%w: %w", model.ErrInvalidProfile, err)
		}
	}
	return links.Build(keyword, g), nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":        s.started,
		"workerCount":    s.workerCount,
		"queueSize":      s.queueSize,
		"minImageSize":   s.minImageSize,
		"maxImagePixels": s.maxImagePixels,
		"strictRules":    s.strictRules,
	}

	if s.started {
		total, failed := s.pool.Processed()
		stats["queueLength"] = s.queue.Len(context.Background())
		stats["jobsProcessed"] = total
		stats["jobsFailed"] = failed
	}

	return stats
}
