package schedule

import (
	"context"

	"weekly-agenda/internal/model"
	"weekly-agenda/pkg/timeparse"
)

// UseCase is the business logic interface for the schedule domain.
type UseCase interface {
	// ParsePreview parses a time expression without persisting anything,
	// so the UI can echo the interpretation while the user types.
	ParsePreview(ctx context.Context, input ParseInput) (ParseOutput, error)

	// Presets returns the quick presets in display order.
	Presets() []timeparse.Preset

	// Week projects the cached event set onto a 7-day window at the given
	// offset from the current week.
	Week(ctx context.Context, offset int) (model.WeekWindow, error)

	// CreateEvent resolves a time expression or preset, persists the event
	// in the calendar store, and optionally mirrors it to the task list.
	CreateEvent(ctx context.Context, input CreateEventInput) (CreateEventOutput, error)

	// MoveEvent reschedules an event to a new start, preserving its duration.
	MoveEvent(ctx context.Context, input MoveEventInput) (model.CalendarEvent, error)

	// ResizeEvent changes both edges of an event, recomputing its duration.
	ResizeEvent(ctx context.Context, input ResizeEventInput) (model.CalendarEvent, error)

	// DeleteEvent removes an event from the calendar store.
	DeleteEvent(ctx context.Context, id string) error
}
