package timeparse

import "time"

// Schedule is the parser output: a concrete start/end pair, not yet persisted.
// End is always strictly after Start; point-in-time input is widened to the
// parser's default duration.
type Schedule struct {
	Start  time.Time
	End    time.Time
	AllDay bool
}

// Duration returns the schedule length.
func (s Schedule) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// Preset is a named, parameterless shortcut producing a Schedule
// deterministically from the reference clock.
type Preset struct {
	ID    string
	Label string
}
