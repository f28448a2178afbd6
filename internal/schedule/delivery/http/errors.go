package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"weekly-agenda/internal/schedule"
	"weekly-agenda/internal/schedule/repository"
	"weekly-agenda/pkg/response"
	"weekly-agenda/pkg/timeparse"
)

// respondError translates domain/use-case errors into HTTP responses.
// RULE: panic on unknown errors in development to force explicit handling.
func (h *handler) respondError(c *gin.Context, err error, data map[string]interface{}) {
	switch {
	case errors.Is(err, timeparse.ErrUnparseable),
		errors.Is(err, timeparse.ErrUnrecognizedTime),
		errors.Is(err, timeparse.ErrInvalidRange),
		errors.Is(err, schedule.ErrEmptyTitle),
		errors.Is(err, schedule.ErrInvalidDuration):
		response.Error(c, err, data)
	case errors.Is(err, repository.ErrNotFound):
		response.NotFound(c, err)
	case errors.Is(err, schedule.ErrEditInFlight):
		response.Conflict(c, err)
	case errors.Is(err, repository.ErrRejected),
		errors.Is(err, repository.ErrUnreachable):
		response.BadGateway(c, err)
	default:
		// Force developers to explicitly handle every domain error.
		panic(err)
	}
}
