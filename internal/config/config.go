// Package config defines service configuration and how it is loaded.
package config

import (
	"runtime"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`
	// QueueSize bounds the in-memory photo job queue.
	QueueSize int `koanf:"queue_size"`
	// WorkerCount sets the number of photo workers.
	WorkerCount int `koanf:"worker_count"`
	// MaxUploadBytes caps the size of an uploaded photo.
	MaxUploadBytes int64 `koanf:"max_upload_bytes"`
	// MinImageSize is the smallest accepted photo side, in pixels.
	MinImageSize int `koanf:"min_image_size"`
	// MaxImagePixels caps width*height of an uploaded photo, read from its
	// header before any pixels are decoded.
	MaxImagePixels int `koanf:"max_image_pixels"`
	// DetectorTolerance is the summed RGB distance from the background above
	// which a pixel belongs to the figure.
	DetectorTolerance int `koanf:"detector_tolerance"`
	// DetectorMinCoverage is the smallest figure height, as a fraction of the
	// photo height, that counts as a detected silhouette.
	DetectorMinCoverage float64 `koanf:"detector_min_coverage"`
	// StrictRules makes a recommendation rule miss panic instead of
	// falling back to the casual outfit. Meant for tests and staging.
	StrictRules bool `koanf:"strict_rules"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           ":9080",
		QueueSize:      256,
		WorkerCount:    runtime.NumCPU(),
		MaxUploadBytes: 10 << 20,
		MinImageSize:   32,
		MaxImagePixels: 24_000_000,
		StrictRules:    false,

		DetectorTolerance:   90,
		DetectorMinCoverage: 0.3,
	}
}
