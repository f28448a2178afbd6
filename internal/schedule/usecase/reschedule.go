package usecase

import (
	"context"

	"weekly-agenda/internal/model"
	"weekly-agenda/internal/schedule"
	"weekly-agenda/pkg/timeparse"
)

// MoveEvent reschedules an event to a new start. The original duration is
// preserved: moving [14:00, 14:45) to 16:00 yields [16:00, 16:45).
func (uc *implUseCase) MoveEvent(ctx context.Context, input schedule.MoveEventInput) (model.CalendarEvent, error) {
	if err := uc.beginEdit(input.ID); err != nil {
		return model.CalendarEvent{}, err
	}
	defer uc.endEdit(input.ID)

	existing, err := uc.store.Get(ctx, input.ID)
	if err != nil {
		return model.CalendarEvent{}, err
	}

	sched := timeparse.Schedule{
		Start:  input.NewStart,
		End:    input.NewStart.Add(existing.Duration()),
		AllDay: existing.AllDay,
	}
	if !sched.End.After(sched.Start) {
		return model.CalendarEvent{}, schedule.ErrInvalidDuration
	}

	updated, err := uc.store.Update(ctx, input.ID, existing.Title, sched)
	if err != nil {
		uc.l.Errorf(ctx, "MoveEvent: store update %s failed: %v", input.ID, err)
		return model.CalendarEvent{}, err
	}

	uc.dropWeeks(existing.Start, updated.Start)
	updated.Overlaps = uc.overlapIDs(ctx, updated)

	uc.l.Infof(ctx, "MoveEvent: moved %s to %s", input.ID, updated.Start)

	return updated, nil
}

// ResizeEvent moves both edges of an event, recomputing its duration.
func (uc *implUseCase) ResizeEvent(ctx context.Context, input schedule.ResizeEventInput) (model.CalendarEvent, error) {
	// Reject before any store call so a bad resize leaves the original
	// event untouched.
	if !input.NewEnd.After(input.NewStart) {
		return model.CalendarEvent{}, schedule.ErrInvalidDuration
	}

	if err := uc.beginEdit(input.ID); err != nil {
		return model.CalendarEvent{}, err
	}
	defer uc.endEdit(input.ID)

	existing, err := uc.store.Get(ctx, input.ID)
	if err != nil {
		return model.CalendarEvent{}, err
	}

	sched := timeparse.Schedule{
		Start:  input.NewStart,
		End:    input.NewEnd,
		AllDay: existing.AllDay,
	}

	updated, err := uc.store.Update(ctx, input.ID, existing.Title, sched)
	if err != nil {
		uc.l.Errorf(ctx, "ResizeEvent: store update %s failed: %v", input.ID, err)
		return model.CalendarEvent{}, err
	}

	uc.dropWeeks(existing.Start, updated.Start)
	updated.Overlaps = uc.overlapIDs(ctx, updated)

	return updated, nil
}
