package http

import (
	"weekly-agenda/internal/schedule"
	"weekly-agenda/pkg/log"
)

// Handler is the public interface for the schedule HTTP delivery layer.
type Handler interface {
	Parse(c interface{})
	Presets(c interface{})
	Week(c interface{})
	Create(c interface{})
	Move(c interface{})
	Resize(c interface{})
	Delete(c interface{})
}

type handler struct {
	l  log.Logger
	uc schedule.UseCase
}

// New creates a new HTTP handler for the schedule domain.
func New(l log.Logger, uc schedule.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
