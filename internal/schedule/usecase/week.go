package usecase

import (
	"context"
	"time"

	"weekly-agenda/internal/model"
)

// Week projects the event set onto a Monday-anchored 7-day window at the
// given offset from the current week. The raw event list is served from the
// week cache when present; the projection itself is recomputed every call.
func (uc *implUseCase) Week(ctx context.Context, offset int) (model.WeekWindow, error) {
	weekStart := model.WeekStart(uc.clk.Now(), offset)

	events, err := uc.weekEvents(ctx, weekStart)
	if err != nil {
		return model.WeekWindow{}, err
	}

	return buildWeek(offset, weekStart, events), nil
}

// weekEvents returns the cached event list for the week starting at
// weekStart, fetching and caching it on a miss. Only confirmed store state
// ever enters the cache.
func (uc *implUseCase) weekEvents(ctx context.Context, weekStart time.Time) ([]model.CalendarEvent, error) {
	key := weekStart.Unix()

	uc.mu.Lock()
	cached, ok := uc.weeks.Get(key)
	uc.mu.Unlock()
	if ok {
		return cached, nil
	}

	events, err := uc.store.List(ctx, weekStart, weekStart.AddDate(0, 0, 7))
	if err != nil {
		uc.l.Errorf(ctx, "Week: store list failed for week of %s: %v", weekStart.Format("2006-01-02"), err)
		return nil, err
	}

	uc.mu.Lock()
	uc.weeks.Add(key, events)
	uc.mu.Unlock()

	return events, nil
}

// buildWeek buckets events into day columns and annotates overlaps.
func buildWeek(offset int, weekStart time.Time, events []model.CalendarEvent) model.WeekWindow {
	week := model.WeekWindow{
		Offset: offset,
		Start:  weekStart,
		End:    weekStart.AddDate(0, 0, 7),
	}
	for i := range week.Days {
		week.Days[i].Date = weekStart.AddDate(0, 0, i)
	}

	for _, ev := range events {
		if ev.AllDay {
			week.AllDay = append(week.AllDay, ev)
			continue
		}
		if idx := dayIndex(weekStart, ev.Start); idx >= 0 {
			week.Days[idx].Events = append(week.Days[idx].Events, ev)
		}
	}

	for i := range week.Days {
		annotateOverlaps(week.Days[i].Events)
	}

	return week
}

// dayIndex returns which of the 7 day columns t's calendar date falls on,
// or -1 when outside the window. Date comparison, not division: weeks with
// a DST transition are not 168 hours long.
func dayIndex(weekStart, t time.Time) int {
	y, m, d := t.In(weekStart.Location()).Date()
	for i := 0; i < 7; i++ {
		dy, dm, dd := weekStart.AddDate(0, 0, i).Date()
		if y == dy && m == dm && d == dd {
			return i
		}
	}
	return -1
}

// annotateOverlaps fills each event's Overlaps list with the ids of
// intersecting events in the same slice. Quadratic, but a day column holds
// at most a handful of events.
func annotateOverlaps(events []model.CalendarEvent) {
	for i := range events {
		events[i].Overlaps = nil
		for j := range events {
			if i != j && events[i].OverlapsWith(events[j]) {
				events[i].Overlaps = append(events[i].Overlaps, events[j].ID)
			}
		}
	}
}
