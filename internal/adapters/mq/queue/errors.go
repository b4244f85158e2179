package queue

import "errors"

var (
	// ErrClosed is returned when enqueuing after Close.
	ErrClosed = errors.New("queue closed")
	// ErrFull is returned when the queue is at capacity.
	ErrFull = errors.New("queue full")
)
