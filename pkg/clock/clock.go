package clock

import "time"

// Clock is the reference time source. Injecting it keeps parsing and week
// projection deterministic under test.
type Clock interface {
	Now() time.Time
}

type realClock struct {
	location *time.Location
}

// New returns a Clock reporting wall time in the given IANA timezone.
func New(timezone string) (Clock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, err
	}
	return &realClock{location: loc}, nil
}

func (c *realClock) Now() time.Time {
	return time.Now().In(c.location)
}

// Fixed is a Clock pinned to a single instant, for tests.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time { return f.T }
