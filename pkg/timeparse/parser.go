package timeparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultDuration is applied when input gives a start but no end.
const DefaultDuration = 30 * time.Minute

// Parser converts free-text time expressions to concrete schedules.
type Parser struct {
	defaultDuration time.Duration
}

// NewParser creates a parser. A non-positive defaultDuration falls back to
// DefaultDuration.
func NewParser(defaultDuration time.Duration) *Parser {
	if defaultDuration <= 0 {
		defaultDuration = DefaultDuration
	}
	return &Parser{defaultDuration: defaultDuration}
}

const (
	dayRefPattern = `today|tomorrow|(?:next\s+)?(?:monday|tuesday|wednesday|thursday|friday|saturday|sunday)`
	clockPattern  = `\d{1,2}(?::[0-5]\d)?(?:\s*(?:am|pm))?`
)

var (
	rangeRe    = regexp.MustCompile(`^(?:(` + dayRefPattern + `)\s+)?(` + clockPattern + `)\s*(?:-|–|to)\s*(` + clockPattern + `)$`)
	pointRe    = regexp.MustCompile(`^(?:(` + dayRefPattern + `)\s+)?(` + clockPattern + `)$`)
	relativeRe = regexp.MustCompile(`^in\s+(\d+)\s*(min|mins|minute|minutes|hr|hrs|hour|hours|day|days)$`)
	dayOnlyRe  = regexp.MustCompile(`^(` + dayRefPattern + `)$`)
	clockRe    = regexp.MustCompile(`^(\d{1,2})(?::([0-5]\d))?\s*(am|pm)?$`)

	weekdays = map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}
)

// Parse converts a time expression to a Schedule using now as the reference
// point. Phrase shapes are tried in priority order: range, point with implicit
// duration, relative offset, bare day reference (all-day). Parsing the same
// text twice with the same reference time yields the same Schedule.
func (p *Parser) Parse(text string, now time.Time) (Schedule, error) {
	input := strings.ToLower(strings.TrimSpace(text))
	if input == "" {
		return Schedule{}, ErrUnparseable
	}

	if m := rangeRe.FindStringSubmatch(input); m != nil {
		return p.parseRange(m[1], m[2], m[3], now)
	}

	if m := pointRe.FindStringSubmatch(input); m != nil {
		return p.parsePoint(m[1], m[2], now)
	}

	if m := relativeRe.FindStringSubmatch(input); m != nil {
		return p.parseRelative(m[1], m[2], now)
	}

	if m := dayOnlyRe.FindStringSubmatch(input); m != nil {
		day, err := resolveDayRef(m[1], now)
		if err != nil {
			return Schedule{}, err
		}
		return Schedule{Start: day, End: day.AddDate(0, 0, 1), AllDay: true}, nil
	}

	return Schedule{}, ErrUnparseable
}

// parseRange handles "<day-ref> <time> - <time>", e.g. "friday 9am - 11am".
func (p *Parser) parseRange(dayRef, startTok, endTok string, now time.Time) (Schedule, error) {
	day, err := resolveDayRef(dayRef, now)
	if err != nil {
		return Schedule{}, err
	}

	startClock, err := parseClock(startTok)
	if err != nil {
		return Schedule{}, err
	}
	if !startClock.hasMeridiem {
		return Schedule{}, ErrUnrecognizedTime
	}

	endClock, err := parseClock(endTok)
	if err != nil {
		return Schedule{}, err
	}

	start := day.Add(startClock.offset())

	// A bare end token inherits the start's meridiem; if the result lands at
	// or before the start, assume it crosses noon ("9am - 2" means 2pm).
	if !endClock.hasMeridiem {
		endClock.pm = startClock.pm
		if end := day.Add(endClock.offset()); !end.After(start) && !endClock.pm {
			endClock.pm = true
		}
	}

	end := day.Add(endClock.offset())
	if !end.After(start) {
		return Schedule{}, ErrInvalidRange
	}

	return Schedule{Start: start, End: end}, nil
}

// parsePoint handles "<day-ref> <time>", e.g. "tomorrow 2pm".
func (p *Parser) parsePoint(dayRef, tok string, now time.Time) (Schedule, error) {
	day, err := resolveDayRef(dayRef, now)
	if err != nil {
		return Schedule{}, err
	}

	c, err := parseClock(tok)
	if err != nil {
		return Schedule{}, err
	}
	if !c.hasMeridiem {
		return Schedule{}, ErrUnrecognizedTime
	}

	start := day.Add(c.offset())
	return Schedule{Start: start, End: start.Add(p.defaultDuration)}, nil
}

// parseRelative handles "in <N> <unit>", e.g. "in 30 min".
func (p *Parser) parseRelative(amountTok, unit string, now time.Time) (Schedule, error) {
	amount, err := strconv.Atoi(amountTok)
	if err != nil {
		return Schedule{}, fmt.Errorf("%w: %q", ErrUnparseable, amountTok)
	}

	var start time.Time
	switch {
	case strings.HasPrefix(unit, "min"):
		start = now.Add(time.Duration(amount) * time.Minute)
	case strings.HasPrefix(unit, "hour"), strings.HasPrefix(unit, "hr"):
		start = now.Add(time.Duration(amount) * time.Hour)
	case strings.HasPrefix(unit, "day"):
		start = now.AddDate(0, 0, amount)
	default:
		return Schedule{}, fmt.Errorf("%w: unit %q", ErrUnparseable, unit)
	}

	return Schedule{Start: start, End: start.Add(p.defaultDuration)}, nil
}

// resolveDayRef resolves a day reference to midnight of the target day in
// now's location. An empty reference defaults to today. A bare weekday name
// resolves to the nearest occurrence on or after today; "next <weekday>" is
// strictly after today.
func resolveDayRef(ref string, now time.Time) (time.Time, error) {
	ref = strings.TrimSpace(ref)

	switch ref {
	case "", "today":
		return startOfDay(now), nil
	case "tomorrow":
		return startOfDay(now.AddDate(0, 0, 1)), nil
	}

	strict := false
	if name, ok := strings.CutPrefix(ref, "next "); ok {
		strict = true
		ref = strings.TrimSpace(name)
	}

	target, ok := weekdays[ref]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: day %q", ErrUnparseable, ref)
	}

	daysUntil := int(target - now.Weekday())
	if daysUntil < 0 || (strict && daysUntil == 0) {
		daysUntil += 7
	}

	return startOfDay(now.AddDate(0, 0, daysUntil)), nil
}

// clockValue is a parsed 12-hour clock token.
type clockValue struct {
	hour        int // 1..12
	minute      int
	pm          bool
	hasMeridiem bool
}

// offset returns the duration from midnight.
func (c clockValue) offset() time.Duration {
	h := c.hour % 12
	if c.pm {
		h += 12
	}
	return time.Duration(h)*time.Hour + time.Duration(c.minute)*time.Minute
}

// parseClock parses tokens like "9", "9:30", "2pm", "11:15 am".
func parseClock(tok string) (clockValue, error) {
	m := clockRe.FindStringSubmatch(strings.TrimSpace(tok))
	if m == nil {
		return clockValue{}, ErrUnrecognizedTime
	}

	hour, _ := strconv.Atoi(m[1])
	if hour < 1 || hour > 12 {
		return clockValue{}, ErrUnrecognizedTime
	}

	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}

	return clockValue{
		hour:        hour,
		minute:      minute,
		pm:          m[3] == "pm",
		hasMeridiem: m[3] != "",
	}, nil
}

// startOfDay returns midnight of the given day in its own location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
