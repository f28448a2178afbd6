package model

import "time"

// EventSource indicates which external collaborator owns the record.
type EventSource string

const (
	SourceCalendar EventSource = "calendar"
	SourceTaskList EventSource = "task-list"
)

// CalendarEvent is the persisted entity. The external calendar store assigns
// the ID; local code never invents one. Local copies are optimistic caches
// and may be stale until the next confirmed read.
type CalendarEvent struct {
	ID     string
	Title  string
	Start  time.Time
	End    time.Time
	AllDay bool
	Source EventSource

	// Overlaps lists the ids of same-day timed events this one intersects.
	// Rendering-only: overlapping events are permitted.
	Overlaps []string
}

// Duration returns the event length.
func (e CalendarEvent) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// OverlapsWith reports whether two timed events intersect. All-day events
// never count as overlapping.
func (e CalendarEvent) OverlapsWith(other CalendarEvent) bool {
	if e.AllDay || other.AllDay {
		return false
	}
	return e.Start.Before(other.End) && other.Start.Before(e.End)
}
