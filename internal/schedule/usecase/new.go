package usecase

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"weekly-agenda/internal/model"
	"weekly-agenda/internal/schedule/repository"
	"weekly-agenda/pkg/clock"
	pkgLog "weekly-agenda/pkg/log"
	"weekly-agenda/pkg/timeparse"
)

const defaultWeekCacheSize = 8

type implUseCase struct {
	l      pkgLog.Logger
	parser *timeparse.Parser
	store  repository.EventStore
	tasks  repository.TaskList
	clk    clock.Clock

	// mu guards the week cache and the pending edit set. The UI issues one
	// operation at a time, but gin serves requests concurrently, so the
	// one-in-flight-edit-per-event rule is enforced here.
	mu      sync.Mutex
	weeks   *lru.Cache[int64, []model.CalendarEvent]
	pending map[string]struct{}
}

// New creates a new schedule UseCase instance. tasks may be nil when the
// Things integration is disabled.
func New(
	l pkgLog.Logger,
	parser *timeparse.Parser,
	store repository.EventStore,
	tasks repository.TaskList,
	clk clock.Clock,
	weekCacheSize int,
) *implUseCase {
	if weekCacheSize <= 0 {
		weekCacheSize = defaultWeekCacheSize
	}
	weeks, _ := lru.New[int64, []model.CalendarEvent](weekCacheSize)

	return &implUseCase{
		l:       l,
		parser:  parser,
		store:   store,
		tasks:   tasks,
		clk:     clk,
		weeks:   weeks,
		pending: make(map[string]struct{}),
	}
}
