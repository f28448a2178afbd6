package model

import "time"

// WeekWindow is the displayed 7-day span: a pure projection over the cached
// event set, never authoritative. Offset counts weeks from the current one.
type WeekWindow struct {
	Offset int
	Start  time.Time // Monday 00:00
	End    time.Time // next Monday 00:00, exclusive
	Days   [7]WeekDay
	AllDay []CalendarEvent
}

// WeekDay is one column of the week grid.
type WeekDay struct {
	Date   time.Time
	Events []CalendarEvent
}

// WeekStart returns Monday 00:00 of the week containing t, shifted by offset
// weeks, in t's location.
func WeekStart(t time.Time, offset int) time.Time {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	monday := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).
		AddDate(0, 0, -daysSinceMonday)
	return monday.AddDate(0, 0, 7*offset)
}
