package dispatch

import "errors"

var (
	// ErrStopped is returned when an event is submitted after the dispatcher stopped.
	ErrStopped = errors.New("dispatcher is stopped")

	// ErrAlreadyStarted is returned when Start is called more than once.
	ErrAlreadyStarted = errors.New("dispatcher is already started")
)
