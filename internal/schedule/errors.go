package schedule

import "errors"

// Domain-specific errors for the schedule package.
var (
	ErrEmptyTitle      = errors.New("event title is empty")
	ErrInvalidDuration = errors.New("event end must be after its start")
	ErrEditInFlight    = errors.New("another edit for this event is still in flight")
)
