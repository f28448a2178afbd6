package gcal_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"google.golang.org/api/googleapi"

	"weekly-agenda/internal/model"
	"weekly-agenda/internal/schedule/repository"
	"weekly-agenda/internal/schedule/repository/gcal"
	"weekly-agenda/pkg/gcalendar"
	"weekly-agenda/pkg/timeparse"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}

type mockAPI struct {
	createFunc func(req gcalendar.EventRequest) (*gcalendar.Event, error)
	getFunc    func(eventID string) (*gcalendar.Event, error)
	updateFunc func(eventID string, req gcalendar.EventRequest) (*gcalendar.Event, error)
	deleteFunc func(eventID string) error
	listFunc   func(req gcalendar.ListEventsRequest) ([]*gcalendar.Event, error)
}

func (m *mockAPI) CreateEvent(ctx context.Context, req gcalendar.EventRequest) (*gcalendar.Event, error) {
	return m.createFunc(req)
}

func (m *mockAPI) GetEvent(ctx context.Context, calID, eventID string) (*gcalendar.Event, error) {
	return m.getFunc(eventID)
}

func (m *mockAPI) UpdateEvent(ctx context.Context, eventID string, req gcalendar.EventRequest) (*gcalendar.Event, error) {
	return m.updateFunc(eventID, req)
}

func (m *mockAPI) DeleteEvent(ctx context.Context, calID, eventID string) error {
	return m.deleteFunc(eventID)
}

func (m *mockAPI) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]*gcalendar.Event, error) {
	return m.listFunc(req)
}

func TestEventStore(t *testing.T) {
	start := time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)
	sched := timeparse.Schedule{Start: start, End: start.Add(2 * time.Hour)}

	t.Run("Create maps request and result", func(t *testing.T) {
		api := &mockAPI{
			createFunc: func(req gcalendar.EventRequest) (*gcalendar.Event, error) {
				if req.Summary != "Budget review" || req.CalendarID != "primary" {
					t.Errorf("unexpected request: %+v", req)
				}
				return &gcalendar.Event{ID: "ev-1", Summary: req.Summary, StartTime: req.StartTime, EndTime: req.EndTime}, nil
			},
		}
		store := gcal.New(api, "primary", "UTC", 100, &mockLogger{})

		got, err := store.Create(context.Background(), "Budget review", sched)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "ev-1" || got.Source != model.SourceCalendar {
			t.Errorf("unexpected event: %+v", got)
		}
	})

	t.Run("List drops cancelled events", func(t *testing.T) {
		api := &mockAPI{
			listFunc: func(req gcalendar.ListEventsRequest) ([]*gcalendar.Event, error) {
				return []*gcalendar.Event{
					{ID: "ev-1", Summary: "Keep", StartTime: start, EndTime: start.Add(time.Hour)},
					{ID: "ev-2", Summary: "Dropped", Status: "cancelled"},
				}, nil
			},
		}
		store := gcal.New(api, "primary", "UTC", 100, &mockLogger{})

		events, err := store.List(context.Background(), start, start.AddDate(0, 0, 7))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(events) != 1 || events[0].ID != "ev-1" {
			t.Errorf("expected only the confirmed event, got %+v", events)
		}
	})

	t.Run("Error taxonomy", func(t *testing.T) {
		tests := []struct {
			name string
			err  error
			want error
		}{
			{"Missing event", &googleapi.Error{Code: 404}, repository.ErrNotFound},
			{"Gone event", &googleapi.Error{Code: 410}, repository.ErrNotFound},
			{"Quota refused", &googleapi.Error{Code: 403}, repository.ErrRejected},
			{"Server error", &googleapi.Error{Code: 503}, repository.ErrUnreachable},
			{"Transport failure", errors.New("dial tcp: timeout"), repository.ErrUnreachable},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				api := &mockAPI{
					getFunc: func(eventID string) (*gcalendar.Event, error) { return nil, tt.err },
				}
				store := gcal.New(api, "primary", "UTC", 100, &mockLogger{})

				_, err := store.Get(context.Background(), "ev-1")
				if !errors.Is(err, tt.want) {
					t.Errorf("Get error = %v, want %v", err, tt.want)
				}
			})
		}
	})

	t.Run("Update and Delete pass through", func(t *testing.T) {
		api := &mockAPI{
			updateFunc: func(eventID string, req gcalendar.EventRequest) (*gcalendar.Event, error) {
				return &gcalendar.Event{ID: eventID, Summary: req.Summary, StartTime: req.StartTime, EndTime: req.EndTime}, nil
			},
			deleteFunc: func(eventID string) error {
				if eventID != "ev-1" {
					t.Errorf("unexpected id %s", eventID)
				}
				return nil
			},
		}
		store := gcal.New(api, "primary", "UTC", 100, &mockLogger{})

		updated, err := store.Update(context.Background(), "ev-1", "Moved", sched)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.ID != "ev-1" || updated.Title != "Moved" {
			t.Errorf("unexpected event: %+v", updated)
		}

		if err := store.Delete(context.Background(), "ev-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("All-day schedules round-trip", func(t *testing.T) {
		api := &mockAPI{
			createFunc: func(req gcalendar.EventRequest) (*gcalendar.Event, error) {
				if !req.AllDay {
					t.Errorf("expected all-day request")
				}
				return &gcalendar.Event{ID: "ev-3", Summary: req.Summary, StartTime: req.StartTime, EndTime: req.EndTime, AllDay: true}, nil
			},
		}
		store := gcal.New(api, "primary", "UTC", 100, &mockLogger{})

		day := time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)
		got, err := store.Create(context.Background(), "Conference", timeparse.Schedule{
			Start: day, End: day.AddDate(0, 0, 1), AllDay: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.AllDay {
			t.Errorf("all-day flag lost in conversion")
		}
	})
}
