package schedule

import (
	"time"

	"weekly-agenda/internal/model"
	"weekly-agenda/pkg/timeparse"
)

// ParseInput carries a raw time expression from the UI input field.
type ParseInput struct {
	Text string
}

// ParseOutput echoes the parser's interpretation.
type ParseOutput struct {
	Schedule timeparse.Schedule
}

// CreateEventInput creates a new event from free text or a preset id.
// Exactly one of Text and PresetID should be set; Text wins if both are.
type CreateEventInput struct {
	Title         string
	Text          string
	PresetID      string
	MirrorToTasks bool
}

// CreateEventOutput is the confirmed event plus whether a task-list mirror
// was dispatched (dispatch only: the mirror is fire-and-forget).
type CreateEventOutput struct {
	Event        model.CalendarEvent
	TaskMirrored bool
}

// MoveEventInput is a drag-and-drop move: only the start changes, the
// original duration is preserved.
type MoveEventInput struct {
	ID       string
	NewStart time.Time
}

// ResizeEventInput is a drag-and-drop resize: both edges move.
type ResizeEventInput struct {
	ID       string
	NewStart time.Time
	NewEnd   time.Time
}
