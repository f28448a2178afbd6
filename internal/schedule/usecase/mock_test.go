package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"weekly-agenda/internal/model"
	"weekly-agenda/internal/schedule/repository"
	"weekly-agenda/pkg/clock"
	"weekly-agenda/pkg/timeparse"
)

type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// fakeStore is an in-memory EventStore. Override func fields to inject
// failures; unset fields fall through to the in-memory behavior.
type fakeStore struct {
	mu     sync.Mutex
	nextID int
	events map[string]model.CalendarEvent

	listFn   func(ctx context.Context, from, to time.Time) ([]model.CalendarEvent, error)
	createFn func(ctx context.Context, title string, s timeparse.Schedule) (model.CalendarEvent, error)
	updateFn func(ctx context.Context, id, title string, s timeparse.Schedule) (model.CalendarEvent, error)
	deleteFn func(ctx context.Context, id string) error
}

func newFakeStore() *fakeStore {
	return &fakeStore{events: make(map[string]model.CalendarEvent)}
}

func (f *fakeStore) List(ctx context.Context, from, to time.Time) ([]model.CalendarEvent, error) {
	if f.listFn != nil {
		return f.listFn(ctx, from, to)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.CalendarEvent
	for _, ev := range f.events {
		if !ev.Start.Before(from) && ev.Start.Before(to) {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (f *fakeStore) Create(ctx context.Context, title string, s timeparse.Schedule) (model.CalendarEvent, error) {
	if f.createFn != nil {
		return f.createFn(ctx, title, s)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	ev := model.CalendarEvent{
		ID:     fmt.Sprintf("ev-%d", f.nextID),
		Title:  title,
		Start:  s.Start,
		End:    s.End,
		AllDay: s.AllDay,
		Source: model.SourceCalendar,
	}
	f.events[ev.ID] = ev
	return ev, nil
}

func (f *fakeStore) Get(ctx context.Context, id string) (model.CalendarEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ev, ok := f.events[id]
	if !ok {
		return model.CalendarEvent{}, repository.ErrNotFound
	}
	return ev, nil
}

func (f *fakeStore) Update(ctx context.Context, id, title string, s timeparse.Schedule) (model.CalendarEvent, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, id, title, s)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	ev, ok := f.events[id]
	if !ok {
		return model.CalendarEvent{}, repository.ErrNotFound
	}
	ev.Title = title
	ev.Start = s.Start
	ev.End = s.End
	ev.AllDay = s.AllDay
	f.events[id] = ev
	return ev, nil
}

func (f *fakeStore) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.events[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.events, id)
	return nil
}

func (f *fakeStore) put(ev model.CalendarEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events[ev.ID] = ev
}

// fakeTasks records AddTask calls and signals each one on done.
type fakeTasks struct {
	mu    sync.Mutex
	calls []string
	done  chan struct{}
	err   error
}

func newFakeTasks() *fakeTasks {
	return &fakeTasks{done: make(chan struct{}, 8)}
}

func (f *fakeTasks) AddTask(ctx context.Context, title string, due time.Time) error {
	f.mu.Lock()
	f.calls = append(f.calls, title)
	f.mu.Unlock()
	f.done <- struct{}{}
	return f.err
}

func (f *fakeTasks) titles() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// refNow is Wednesday 2026-03-04 10:00 UTC.
var refNow = time.Date(2026, time.March, 4, 10, 0, 0, 0, time.UTC)

func newTestUseCase(store *fakeStore, tasks *fakeTasks) *implUseCase {
	if tasks == nil {
		return New(mockLogger{}, timeparse.NewParser(0), store, nil, clock.Fixed{T: refNow}, 0)
	}
	return New(mockLogger{}, timeparse.NewParser(0), store, tasks, clock.Fixed{T: refNow}, 0)
}
