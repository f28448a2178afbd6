package gcal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/api/googleapi"

	"weekly-agenda/internal/model"
	"weekly-agenda/internal/schedule/repository"
	"weekly-agenda/pkg/gcalendar"
	"weekly-agenda/pkg/timeparse"
)

func (r *implStore) List(ctx context.Context, from, to time.Time) ([]model.CalendarEvent, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrUnreachable, err)
	}

	items, err := r.client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: r.calendarID,
		TimeMin:    from,
		TimeMax:    to,
	})
	if err != nil {
		r.l.Errorf(ctx, "gcal store: list [%v, %v) failed: %v", from, to, err)
		return nil, r.mapError(err)
	}

	events := make([]model.CalendarEvent, 0, len(items))
	for _, item := range items {
		if item.Status == "cancelled" {
			continue
		}
		events = append(events, r.toModel(item))
	}
	return events, nil
}

func (r *implStore) Create(ctx context.Context, title string, s timeparse.Schedule) (model.CalendarEvent, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return model.CalendarEvent{}, fmt.Errorf("%w: %v", repository.ErrUnreachable, err)
	}

	created, err := r.client.CreateEvent(ctx, r.toRequest(title, s))
	if err != nil {
		r.l.Errorf(ctx, "gcal store: create %q failed: %v", title, err)
		return model.CalendarEvent{}, r.mapError(err)
	}
	return r.toModel(created), nil
}

func (r *implStore) Get(ctx context.Context, id string) (model.CalendarEvent, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return model.CalendarEvent{}, fmt.Errorf("%w: %v", repository.ErrUnreachable, err)
	}

	item, err := r.client.GetEvent(ctx, r.calendarID, id)
	if err != nil {
		return model.CalendarEvent{}, r.mapError(err)
	}
	return r.toModel(item), nil
}

func (r *implStore) Update(ctx context.Context, id, title string, s timeparse.Schedule) (model.CalendarEvent, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return model.CalendarEvent{}, fmt.Errorf("%w: %v", repository.ErrUnreachable, err)
	}

	updated, err := r.client.UpdateEvent(ctx, id, r.toRequest(title, s))
	if err != nil {
		r.l.Errorf(ctx, "gcal store: update %s failed: %v", id, err)
		return model.CalendarEvent{}, r.mapError(err)
	}
	return r.toModel(updated), nil
}

func (r *implStore) Delete(ctx context.Context, id string) error {
	if err := r.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrUnreachable, err)
	}

	if err := r.client.DeleteEvent(ctx, r.calendarID, id); err != nil {
		r.l.Errorf(ctx, "gcal store: delete %s failed: %v", id, err)
		return r.mapError(err)
	}
	return nil
}

// mapError folds Google API failures into the store taxonomy: 404/410 means
// the event is gone, other 4xx means the request was refused, everything
// else (5xx, transport, timeout) counts as unreachable.
func (r *implStore) mapError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == 404 || apiErr.Code == 410:
			return fmt.Errorf("%w: %v", repository.ErrNotFound, err)
		case apiErr.Code >= 400 && apiErr.Code < 500:
			return fmt.Errorf("%w: %v", repository.ErrRejected, err)
		}
	}
	return fmt.Errorf("%w: %v", repository.ErrUnreachable, err)
}

func (r *implStore) toRequest(title string, s timeparse.Schedule) gcalendar.EventRequest {
	return gcalendar.EventRequest{
		CalendarID: r.calendarID,
		Summary:    title,
		StartTime:  s.Start,
		EndTime:    s.End,
		AllDay:     s.AllDay,
		Timezone:   r.timezone,
	}
}

func (r *implStore) toModel(item *gcalendar.Event) model.CalendarEvent {
	return model.CalendarEvent{
		ID:     item.ID,
		Title:  item.Summary,
		Start:  item.StartTime,
		End:    item.EndTime,
		AllDay: item.AllDay,
		Source: model.SourceCalendar,
	}
}
