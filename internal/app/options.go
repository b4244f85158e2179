package app

import (
	"github.com/okian/stylemate/internal/adapters/vision"
	"github.com/okian/stylemate/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount sets the number of photo worker goroutines.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize sets the maximum number of pending photo jobs.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithMinImageSize sets the minimum accepted width and height of a photo.
func WithMinImageSize(px int) Option {
	return func(s *Service) {
		if px >= 0 {
			s.minImageSize = px
		}
	}
}

// WithMaxImagePixels caps width*height of an accepted photo.
func WithMaxImagePixels(px int) Option {
	return func(s *Service) {
		if px > 0 {
			s.maxImagePixels = px
		}
	}
}

// WithStrictRules makes rule table misses panic.
func WithStrictRules(strict bool) Option {
	return func(s *Service) {
		s.strictRules = strict
	}
}

// WithLandmarkDetector replaces the silhouette detector used for photo body typing.
func WithLandmarkDetector(d vision.LandmarkDetector) Option {
	return func(s *Service) {
		if d != nil {
			s.detector = d
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}
