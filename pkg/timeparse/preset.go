package timeparse

import (
	"fmt"
	"time"
)

// Quick-preset identifiers. The set is closed: preset ids come from the UI's
// own buttons, so an unknown id is a programming error, not user input.
const (
	PresetIn30Min       = "in-30-min"
	PresetIn1Hour       = "in-1-hour"
	PresetTomorrow9am   = "tomorrow-9am"
	PresetNextMonday9am = "next-monday-9am"
)

var presets = []Preset{
	{ID: PresetIn30Min, Label: "In 30 min"},
	{ID: PresetIn1Hour, Label: "In 1 hour"},
	{ID: PresetTomorrow9am, Label: "Tomorrow 9am"},
	{ID: PresetNextMonday9am, Label: "Next Monday"},
}

// Presets returns the quick presets in display order.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// FromPreset resolves a preset id to a Schedule as a pure function of now.
// Panics on an unknown id.
func (p *Parser) FromPreset(id string, now time.Time) Schedule {
	var start time.Time

	switch id {
	case PresetIn30Min:
		start = now.Add(30 * time.Minute)
	case PresetIn1Hour:
		start = now.Add(time.Hour)
	case PresetTomorrow9am:
		start = startOfDay(now.AddDate(0, 0, 1)).Add(9 * time.Hour)
	case PresetNextMonday9am:
		day, _ := resolveDayRef("next monday", now)
		start = day.Add(9 * time.Hour)
	default:
		panic(fmt.Sprintf("timeparse: unknown preset id %q", id))
	}

	return Schedule{Start: start, End: start.Add(p.defaultDuration)}
}
