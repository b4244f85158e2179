package app

import "errors"

var (
	// ErrBackpressure is returned when the photo queue is full.
	ErrBackpressure = errors.New("photo queue is full, retry later")
	// ErrNotStarted is returned when photo work is submitted before Start or after Stop.
	ErrNotStarted = errors.New("service not started")
	// ErrEmptyKeyword is returned when links are requested for an empty keyword.
	ErrEmptyKeyword = errors.New("keyword must not be empty")
)
