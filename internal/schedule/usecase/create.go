package usecase

import (
	"context"
	"strings"
	"time"

	"weekly-agenda/internal/schedule"
	"weekly-agenda/pkg/timeparse"
)

// CreateEvent resolves the input's time expression (or preset), persists the
// event, and optionally mirrors it to the task list.
func (uc *implUseCase) CreateEvent(ctx context.Context, input schedule.CreateEventInput) (schedule.CreateEventOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return schedule.CreateEventOutput{}, schedule.ErrEmptyTitle
	}

	now := uc.clk.Now()

	var (
		sched timeparse.Schedule
		err   error
	)
	switch {
	case strings.TrimSpace(input.Text) != "":
		sched, err = uc.parser.Parse(input.Text, now)
		if err != nil {
			return schedule.CreateEventOutput{}, err
		}
	case input.PresetID != "":
		// Unknown preset ids panic inside FromPreset: presets come from our
		// own UI buttons, never from free-form user input.
		sched = uc.parser.FromPreset(input.PresetID, now)
	default:
		return schedule.CreateEventOutput{}, timeparse.ErrUnparseable
	}

	// The parser guarantees End > Start; re-check before touching the store.
	if !sched.End.After(sched.Start) {
		return schedule.CreateEventOutput{}, schedule.ErrInvalidDuration
	}

	created, err := uc.store.Create(ctx, title, sched)
	if err != nil {
		// Cache stays on the last confirmed state: a failed remote write
		// leaves no local trace.
		uc.l.Errorf(ctx, "CreateEvent: store create %q failed: %v", title, err)
		return schedule.CreateEventOutput{}, err
	}

	uc.commitToWeek(created)
	created.Overlaps = uc.overlapIDs(ctx, created)

	mirrored := false
	if input.MirrorToTasks && uc.tasks != nil {
		uc.mirrorToTasks(title, sched.Start)
		mirrored = true
	}

	uc.l.Infof(ctx, "CreateEvent: created %q id=%s start=%s", title, created.ID, created.Start.Format(time.RFC3339))

	return schedule.CreateEventOutput{Event: created, TaskMirrored: mirrored}, nil
}

// mirrorToTasks dispatches the task-list mirror without blocking the caller.
// Failures are logged and dropped: the task list offers no read-back and the
// calendar event is already confirmed.
func (uc *implUseCase) mirrorToTasks(title string, due time.Time) {
	go func() {
		ctx := context.Background()
		if err := uc.tasks.AddTask(ctx, title, due); err != nil {
			uc.l.Warnf(ctx, "CreateEvent: task mirror for %q failed (non-fatal): %v", title, err)
		}
	}()
}
