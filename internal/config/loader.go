package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix     = "STYLEMATE_"
	envFileKey    = "STYLEMATE_CONFIG"
	dotenvKey     = "STYLEMATE_DOTENV"
	dotenvDefault = ".env"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if STYLEMATE_CONFIG is set
//  3. env (prefix STYLEMATE_), including variables from a dotenv file
//
// The dotenv file is STYLEMATE_DOTENV or ./.env when present. It never
// overrides variables already set in the process environment.
func Load(_ context.Context) (*Config, error) {
	if err := loadDotenv(); err != nil {
		return nil, fmt.Errorf("%w: dotenv: %w", ErrLoadConfig, err)
	}

	base := New()
	k := koanf.New(".")

	if path := os.Getenv(envFileKey); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
		}
	}

	// STYLEMATE_QUEUE_SIZE -> queue_size; underscores are kept to match the koanf tags.
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), strings.ToLower(envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadDotenv() error {
	path := os.Getenv(dotenvKey)
	if path == "" {
		path = dotenvDefault
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return nil
		}
	}
	return godotenv.Load(path)
}

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.QueueSize < 1:
		return fmt.Errorf("%w: queue_size must be positive, got %d", ErrInvalidConfig, c.QueueSize)
	case c.WorkerCount < 1:
		return fmt.Errorf("%w: worker_count must be positive, got %d", ErrInvalidConfig, c.WorkerCount)
	case c.MaxUploadBytes < 1:
		return fmt.Errorf("%w: max_upload_bytes must be positive, got %d", ErrInvalidConfig, c.MaxUploadBytes)
	case c.MinImageSize < 0:
		return fmt.Errorf("%w: min_image_size must not be negative, got %d", ErrInvalidConfig, c.MinImageSize)
	case c.MaxImagePixels < 1:
		return fmt.Errorf("%w: max_image_pixels must be positive, got %d", ErrInvalidConfig, c.MaxImagePixels)
	case c.DetectorTolerance < 1 || c.DetectorTolerance > 765:
		return fmt.Errorf("%w: detector_tolerance must be in 1..765, got %d", ErrInvalidConfig, c.DetectorTolerance)
	case !(c.DetectorMinCoverage > 0 && c.DetectorMinCoverage <= 1):
		return fmt.Errorf("%w: detector_min_coverage must be in (0, 1], got %g", ErrInvalidConfig, c.DetectorMinCoverage)
	}
	return nil
}
