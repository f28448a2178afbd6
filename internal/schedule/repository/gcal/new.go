package gcal

import (
	"context"

	"golang.org/x/time/rate"

	"weekly-agenda/internal/schedule/repository"
	"weekly-agenda/pkg/gcalendar"
	pkgLog "weekly-agenda/pkg/log"
)

// API is the slice of the Google Calendar client the store needs.
type API interface {
	CreateEvent(ctx context.Context, req gcalendar.EventRequest) (*gcalendar.Event, error)
	GetEvent(ctx context.Context, calID, eventID string) (*gcalendar.Event, error)
	UpdateEvent(ctx context.Context, eventID string, req gcalendar.EventRequest) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calID, eventID string) error
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]*gcalendar.Event, error)
}

type implStore struct {
	client     API
	calendarID string
	timezone   string
	limiter    *rate.Limiter
	l          pkgLog.Logger
}

// New creates a Google Calendar backed event store. requestsPerSecond caps
// outbound API calls (Google enforces per-user quotas).
func New(client API, calendarID, timezone string, requestsPerSecond float64, l pkgLog.Logger) repository.EventStore {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 5
	}
	return &implStore{
		client:     client,
		calendarID: calendarID,
		timezone:   timezone,
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
		l:          l,
	}
}
