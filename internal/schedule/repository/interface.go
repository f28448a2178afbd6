package repository

import (
	"context"
	"time"

	"weekly-agenda/internal/model"
	"weekly-agenda/pkg/timeparse"
)

// EventStore is the boundary to the external calendar store. Implementations
// own id assignment; callers never invent ids.
type EventStore interface {
	// List returns events with a start in [from, to).
	List(ctx context.Context, from, to time.Time) ([]model.CalendarEvent, error)
	Create(ctx context.Context, title string, s timeparse.Schedule) (model.CalendarEvent, error)
	Get(ctx context.Context, id string) (model.CalendarEvent, error)
	Update(ctx context.Context, id, title string, s timeparse.Schedule) (model.CalendarEvent, error)
	Delete(ctx context.Context, id string) error
}

// TaskList is the boundary to the external task manager. Fire-and-forget:
// no id comes back and nothing is ever read from it.
type TaskList interface {
	AddTask(ctx context.Context, title string, due time.Time) error
}
