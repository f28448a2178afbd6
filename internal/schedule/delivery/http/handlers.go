package http

import (
	"github.com/gin-gonic/gin"

	"weekly-agenda/pkg/response"
)

// Parse godoc
// @Summary     Preview a time expression
// @Description Parses a natural-language time expression ("tomorrow 2pm", "friday 9am - 11am", "in 30 min") without creating anything.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Expression to parse"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Unparseable expression"
// @Router      /api/v1/schedule/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ParsePreview(ctx, req.toInput())
	if err != nil {
		// The UI shows the error inline and keeps the typed text.
		h.respondError(c, err, map[string]interface{}{"text": req.Text})
		return
	}

	response.OK(c, h.newParseResp(output))
}

// Presets godoc
// @Summary     List quick presets
// @Description Returns the quick scheduling presets in display order.
// @Tags        Schedule
// @Produce     json
// @Success     200 {object} presetsResp
// @Router      /api/v1/schedule/presets [GET]
func (h *handler) Presets(c *gin.Context) {
	response.OK(c, h.newPresetsResp(h.uc.Presets()))
}

// Week godoc
// @Summary     Get a week window
// @Description Returns the 7-day window at the given offset from the current week, Monday first, with overlap annotations.
// @Tags        Schedule
// @Produce     json
// @Param       offset query int false "Weeks from the current one (default: 0, negative for past)"
// @Success     200 {object} weekResp
// @Failure     502 {object} response.Resp "Calendar store unreachable"
// @Router      /api/v1/schedule/week [GET]
func (h *handler) Week(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processWeekReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	week, err := h.uc.Week(ctx, req.Offset)
	if err != nil {
		h.l.Errorf(ctx, "uc.Week: %v", err)
		h.respondError(c, err, nil)
		return
	}

	response.OK(c, h.newWeekResp(week))
}

// Create godoc
// @Summary     Create an event
// @Description Creates an event from a title plus either a time expression or a preset id. Optionally mirrors it to the task list.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Event data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad request or unparseable expression"
// @Failure     502 {object} response.Resp "Calendar store rejected or unreachable"
// @Router      /api/v1/schedule/events [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CreateEvent(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateEvent: %v", err)
		h.respondError(c, err, map[string]interface{}{"text": req.Text})
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// Move godoc
// @Summary     Move an event
// @Description Reschedules an event to a new start, preserving its duration.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       id   path string  true "Event ID"
// @Param       body body moveReq true "New start"
// @Success     200 {object} eventUpdateResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Another edit in flight"
// @Failure     502 {object} response.Resp "Calendar store rejected or unreachable"
// @Router      /api/v1/schedule/events/{id}/move [PATCH]
func (h *handler) Move(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMoveReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	updated, err := h.uc.MoveEvent(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.MoveEvent: %v", err)
		h.respondError(c, err, nil)
		return
	}

	response.OK(c, h.newEventUpdateResp(updated))
}

// Resize godoc
// @Summary     Resize an event
// @Description Moves both edges of an event, recomputing its duration. Rejected when the end is not after the start.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Event ID"
// @Param       body body resizeReq true "New edges"
// @Success     200 {object} eventUpdateResp
// @Failure     400 {object} response.Resp "Invalid duration"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Another edit in flight"
// @Failure     502 {object} response.Resp "Calendar store rejected or unreachable"
// @Router      /api/v1/schedule/events/{id}/resize [PATCH]
func (h *handler) Resize(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processResizeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	updated, err := h.uc.ResizeEvent(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ResizeEvent: %v", err)
		h.respondError(c, err, nil)
		return
	}

	response.OK(c, h.newEventUpdateResp(updated))
}

// Delete godoc
// @Summary     Delete an event
// @Description Permanently removes an event by ID.
// @Tags        Schedule
// @Produce     json
// @Param       id path string true "Event ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Another edit in flight"
// @Failure     502 {object} response.Resp "Calendar store rejected or unreachable"
// @Router      /api/v1/schedule/events/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingID, nil)
		return
	}

	if err := h.uc.DeleteEvent(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.DeleteEvent: %v", err)
		h.respondError(c, err, nil)
		return
	}

	response.OK(c, nil)
}
