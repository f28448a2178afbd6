package timeparse

import "errors"

// Parse errors surfaced to the user as inline, non-fatal messages.
var (
	ErrUnparseable      = errors.New("could not parse time expression")
	ErrUnrecognizedTime = errors.New("unrecognized time of day")
	ErrInvalidRange     = errors.New("end time must be after start time")
)
