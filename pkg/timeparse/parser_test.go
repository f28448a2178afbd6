package timeparse_test

import (
	"errors"
	"testing"
	"time"

	"weekly-agenda/pkg/timeparse"
)

func TestParse(t *testing.T) {
	parser := timeparse.NewParser(0)
	// Monday, January 1, 2024, 10:00 UTC
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	day := func(offset int) time.Time {
		return time.Date(2024, 1, 1+offset, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name      string
		input     string
		wantStart time.Time
		wantEnd   time.Time
		wantAll   bool
		wantErr   error
	}{
		{
			name:      "Range on weekday",
			input:     "friday 9am - 11am",
			wantStart: day(4).Add(9 * time.Hour),
			wantEnd:   day(4).Add(11 * time.Hour),
		},
		{
			name:      "Range with minutes",
			input:     "today 9:15am - 10:45am",
			wantStart: day(0).Add(9*time.Hour + 15*time.Minute),
			wantEnd:   day(0).Add(10*time.Hour + 45*time.Minute),
		},
		{
			name:      "Range without day-ref defaults to today",
			input:     "2pm - 4pm",
			wantStart: day(0).Add(14 * time.Hour),
			wantEnd:   day(0).Add(16 * time.Hour),
		},
		{
			name:      "Range end inherits meridiem",
			input:     "friday 9am - 11",
			wantStart: day(4).Add(9 * time.Hour),
			wantEnd:   day(4).Add(11 * time.Hour),
		},
		{
			name:      "Range end crossing noon gets bumped",
			input:     "friday 9am - 2",
			wantStart: day(4).Add(9 * time.Hour),
			wantEnd:   day(4).Add(14 * time.Hour),
		},
		{
			name:      "Range with to separator",
			input:     "tomorrow 9am to 11am",
			wantStart: day(1).Add(9 * time.Hour),
			wantEnd:   day(1).Add(11 * time.Hour),
		},
		{
			name:    "Range end before start",
			input:   "friday 11am - 9am",
			wantErr: timeparse.ErrInvalidRange,
		},
		{
			name:    "Range end equal to start",
			input:   "friday 9am - 9am",
			wantErr: timeparse.ErrInvalidRange,
		},
		{
			name:      "Point with implicit duration",
			input:     "tomorrow 2pm",
			wantStart: day(1).Add(14 * time.Hour),
			wantEnd:   day(1).Add(14*time.Hour + 30*time.Minute),
		},
		{
			name:      "Point without day-ref",
			input:     "2pm",
			wantStart: day(0).Add(14 * time.Hour),
			wantEnd:   day(0).Add(14*time.Hour + 30*time.Minute),
		},
		{
			name:      "Point at noon",
			input:     "tomorrow 12pm",
			wantStart: day(1).Add(12 * time.Hour),
			wantEnd:   day(1).Add(12*time.Hour + 30*time.Minute),
		},
		{
			name:      "Point at midnight",
			input:     "tomorrow 12am",
			wantStart: day(1),
			wantEnd:   day(1).Add(30 * time.Minute),
		},
		{
			name:      "Uppercase and padding tolerated",
			input:     "  Tomorrow 2 PM ",
			wantStart: day(1).Add(14 * time.Hour),
			wantEnd:   day(1).Add(14*time.Hour + 30*time.Minute),
		},
		{
			name:      "Relative minutes",
			input:     "in 30 min",
			wantStart: now.Add(30 * time.Minute),
			wantEnd:   now.Add(time.Hour),
		},
		{
			name:      "Relative hours",
			input:     "in 2 hours",
			wantStart: now.Add(2 * time.Hour),
			wantEnd:   now.Add(2*time.Hour + 30*time.Minute),
		},
		{
			name:      "Relative days keep clock time",
			input:     "in 3 days",
			wantStart: now.AddDate(0, 0, 3),
			wantEnd:   now.AddDate(0, 0, 3).Add(30 * time.Minute),
		},
		{
			name:      "Bare day-ref is all-day",
			input:     "tomorrow",
			wantStart: day(1),
			wantEnd:   day(2),
			wantAll:   true,
		},
		{
			name:      "Bare weekday is all-day",
			input:     "wednesday",
			wantStart: day(2),
			wantEnd:   day(3),
			wantAll:   true,
		},
		{
			name:    "Time without meridiem",
			input:   "tomorrow 9",
			wantErr: timeparse.ErrUnrecognizedTime,
		},
		{
			name:    "Hour out of range",
			input:   "tomorrow 13pm",
			wantErr: timeparse.ErrUnrecognizedTime,
		},
		{
			name:    "Range start without meridiem",
			input:   "friday 9 - 11am",
			wantErr: timeparse.ErrUnrecognizedTime,
		},
		{
			name:    "Empty input",
			input:   "   ",
			wantErr: timeparse.ErrUnparseable,
		},
		{
			name:    "Gibberish",
			input:   "lunch with sam sometime",
			wantErr: timeparse.ErrUnparseable,
		},
		{
			name:    "Relative with unknown unit",
			input:   "in 3 fortnights",
			wantErr: timeparse.ErrUnparseable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.input, now)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse(%q) error = %v, want %v", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if !got.Start.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", got.Start, tt.wantStart)
			}
			if !got.End.Equal(tt.wantEnd) {
				t.Errorf("end = %v, want %v", got.End, tt.wantEnd)
			}
			if got.AllDay != tt.wantAll {
				t.Errorf("allDay = %v, want %v", got.AllDay, tt.wantAll)
			}
		})
	}
}

func TestParseWeekdayNeverInPast(t *testing.T) {
	parser := timeparse.NewParser(0)
	names := []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

	// Sweep the reference across a full week so every weekday/reference pair
	// is covered.
	for offset := 0; offset < 7; offset++ {
		now := time.Date(2024, 1, 1+offset, 10, 0, 0, 0, time.UTC)
		for _, name := range names {
			got, err := parser.Parse(name+" 9am", now)
			if err != nil {
				t.Fatalf("Parse(%q) at %v: %v", name, now, err)
			}
			if got.Start.Before(now.Truncate(24 * time.Hour)) {
				t.Errorf("Parse(%q) at %v resolved to the past: %v", name, now, got.Start)
			}
			if int(got.Start.Sub(time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)).Hours()/24) > 6 {
				t.Errorf("Parse(%q) at %v resolved more than 6 days out: %v", name, now, got.Start)
			}
		}
	}
}

func TestParseSameWeekdayResolvesToToday(t *testing.T) {
	parser := timeparse.NewParser(0)
	// Monday
	now := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

	got, err := parser.Parse("monday 9am", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	if !got.Start.Equal(want) {
		t.Errorf("bare weekday on the same day should resolve to today, got %v", got.Start)
	}

	// "next monday" on a Monday is a week out.
	got, err = parser.Parse("next monday 9am", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want = time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC)
	if !got.Start.Equal(want) {
		t.Errorf("next monday on a Monday should be a week out, got %v", got.Start)
	}
}

func TestParseIdempotent(t *testing.T) {
	parser := timeparse.NewParser(0)
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	first, err := parser.Parse("friday 9am - 11am", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := parser.Parse("friday 9am - 11am", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("same input and reference produced different schedules: %+v vs %+v", first, second)
	}
}

func TestParseCustomDefaultDuration(t *testing.T) {
	parser := timeparse.NewParser(45 * time.Minute)
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	got, err := parser.Parse("tomorrow 2pm", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Duration() != 45*time.Minute {
		t.Errorf("duration = %v, want 45m", got.Duration())
	}
}
