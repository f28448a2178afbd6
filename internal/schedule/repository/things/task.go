package things

import (
	"context"
	"time"

	"weekly-agenda/internal/schedule/repository"
	pkgLog "weekly-agenda/pkg/log"
)

// Adder is the slice of the Things client this adapter needs.
type Adder interface {
	AddTask(ctx context.Context, title string, due time.Time) error
}

type implTaskList struct {
	client Adder
	l      pkgLog.Logger
}

// New creates a Things 3 backed task list.
func New(client Adder, l pkgLog.Logger) repository.TaskList {
	return &implTaskList{client: client, l: l}
}

func (r *implTaskList) AddTask(ctx context.Context, title string, due time.Time) error {
	if err := r.client.AddTask(ctx, title, due); err != nil {
		r.l.Warnf(ctx, "things task list: add %q failed: %v", title, err)
		return err
	}
	return nil
}
