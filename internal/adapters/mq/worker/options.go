package worker

import (
	"github.com/okian/stylemate/pkg/logger"
)

// Option applies a configuration option to the InMemoryWorker.
type Option func(*InMemoryWorker)

// WithName sets the worker name for identification and logging.
func WithName(name string) Option {
	return func(w *InMemoryWorker) {
		if name != "" {
			w.name = name
		}
	}
}

// WithLogger sets a custom logger for the worker.
func WithLogger(logger logger.Logger) Option {
	return func(w *InMemoryWorker) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithProcessedHook sets a function called after every job.
func WithProcessedHook(fn func(failed bool)) Option {
	return func(w *InMemoryWorker) {
		w.onProcessed = fn
	}
}
