package usecase

import (
	"context"
	"time"

	"weekly-agenda/internal/model"
	"weekly-agenda/internal/schedule"
)

// beginEdit claims the single in-flight edit slot for an event id.
func (uc *implUseCase) beginEdit(id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if _, busy := uc.pending[id]; busy {
		return schedule.ErrEditInFlight
	}
	uc.pending[id] = struct{}{}
	return nil
}

func (uc *implUseCase) endEdit(id string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.pending, id)
}

// commitToWeek appends a store-confirmed event to its week's cache entry, if
// that week is cached. Misses are left alone: the next Week call refetches.
func (uc *implUseCase) commitToWeek(ev model.CalendarEvent) {
	key := uc.weekKey(ev.Start)

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if cached, ok := uc.weeks.Get(key); ok {
		uc.weeks.Add(key, append(cached, ev))
	}
}

// dropWeeks invalidates the cache entries for the weeks containing the given
// times. Called only after a confirmed store mutation.
func (uc *implUseCase) dropWeeks(times ...time.Time) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	for _, t := range times {
		uc.weeks.Remove(uc.weekKey(t))
	}
}

func (uc *implUseCase) weekKey(t time.Time) int64 {
	return model.WeekStart(t.In(uc.clk.Now().Location()), 0).Unix()
}

// overlapIDs computes the rendering-only overlap annotation for a single
// event against the rest of its day. Annotation failures are swallowed:
// the event itself is already confirmed.
func (uc *implUseCase) overlapIDs(ctx context.Context, ev model.CalendarEvent) []string {
	if ev.AllDay {
		return nil
	}

	dayStart := startOfDay(ev.Start.In(uc.clk.Now().Location()))
	events, err := uc.weekEvents(ctx, model.WeekStart(dayStart, 0))
	if err != nil {
		uc.l.Warnf(ctx, "overlap annotation for %s skipped: %v", ev.ID, err)
		return nil
	}

	var ids []string
	for _, other := range events {
		if other.ID != ev.ID && ev.OverlapsWith(other) {
			ids = append(ids, other.ID)
		}
	}
	return ids
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
