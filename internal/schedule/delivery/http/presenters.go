package http

import (
	"fmt"
	"time"

	"weekly-agenda/internal/model"
	"weekly-agenda/internal/schedule"
	"weekly-agenda/pkg/timeparse"
)

// --- Request DTOs ---

type parseReq struct {
	Text string `json:"text" binding:"required,min=1,max=200"`
}

func (r parseReq) toInput() schedule.ParseInput {
	return schedule.ParseInput{Text: r.Text}
}

// ---

type weekReq struct {
	Offset int `form:"offset"`
}

// ---

type createReq struct {
	Title         string `json:"title"           binding:"required,min=1,max=255"`
	Text          string `json:"text"            binding:"max=200"`
	PresetID      string `json:"preset_id"`
	MirrorToTasks bool   `json:"mirror_to_tasks"`
}

func (r createReq) validate() error {
	if r.PresetID == "" {
		return nil
	}
	for _, p := range timeparse.Presets() {
		if p.ID == r.PresetID {
			return nil
		}
	}
	return fmt.Errorf("unknown preset id %q", r.PresetID)
}

func (r createReq) toInput() schedule.CreateEventInput {
	return schedule.CreateEventInput{
		Title:         r.Title,
		Text:          r.Text,
		PresetID:      r.PresetID,
		MirrorToTasks: r.MirrorToTasks,
	}
}

// ---

type moveReq struct {
	ID       string    `json:"-"` // populated from URI param
	NewStart time.Time `json:"new_start" binding:"required"`
}

func (r moveReq) toInput() schedule.MoveEventInput {
	return schedule.MoveEventInput{ID: r.ID, NewStart: r.NewStart}
}

// ---

type resizeReq struct {
	ID       string    `json:"-"` // populated from URI param
	NewStart time.Time `json:"new_start" binding:"required"`
	NewEnd   time.Time `json:"new_end"   binding:"required"`
}

func (r resizeReq) toInput() schedule.ResizeEventInput {
	return schedule.ResizeEventInput{ID: r.ID, NewStart: r.NewStart, NewEnd: r.NewEnd}
}

// --- Response DTOs ---

type parseResp struct {
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	AllDay bool      `json:"all_day"`
	Pretty string    `json:"pretty"`
}

func (h *handler) newParseResp(out schedule.ParseOutput) parseResp {
	return parseResp{
		Start:  out.Schedule.Start,
		End:    out.Schedule.End,
		AllDay: out.Schedule.AllDay,
		Pretty: prettySchedule(out.Schedule),
	}
}

// prettySchedule renders the interpretation the input field shows as the
// user types.
func prettySchedule(s timeparse.Schedule) string {
	day := s.Start.Format("Monday, January 2")
	if s.AllDay {
		return day + " (all day)"
	}
	return fmt.Sprintf("%s, %s - %s", day, clockLabel(s.Start), clockLabel(s.End))
}

func clockLabel(t time.Time) string {
	if t.Minute() == 0 {
		return t.Format("3 PM")
	}
	return t.Format("3:04 PM")
}

// ---

type presetResp struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

type presetsResp struct {
	Presets []presetResp `json:"presets"`
}

func (h *handler) newPresetsResp(presets []timeparse.Preset) presetsResp {
	out := make([]presetResp, len(presets))
	for i, p := range presets {
		out[i] = presetResp{ID: p.ID, Label: p.Label}
	}
	return presetsResp{Presets: out}
}

// ---

type eventResp struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	AllDay   bool      `json:"all_day"`
	Overlaps []string  `json:"overlaps,omitempty"`
}

func newEventResp(ev model.CalendarEvent) eventResp {
	return eventResp{
		ID:       ev.ID,
		Title:    ev.Title,
		Start:    ev.Start,
		End:      ev.End,
		AllDay:   ev.AllDay,
		Overlaps: ev.Overlaps,
	}
}

type dayResp struct {
	Date   string      `json:"date"` // 2006-01-02
	Events []eventResp `json:"events"`
}

type weekResp struct {
	Offset int         `json:"offset"`
	Start  time.Time   `json:"start"`
	End    time.Time   `json:"end"`
	Days   []dayResp   `json:"days"`
	AllDay []eventResp `json:"all_day"`
}

func (h *handler) newWeekResp(week model.WeekWindow) weekResp {
	resp := weekResp{
		Offset: week.Offset,
		Start:  week.Start,
		End:    week.End,
		Days:   make([]dayResp, len(week.Days)),
		AllDay: make([]eventResp, len(week.AllDay)),
	}
	for i, day := range week.Days {
		events := make([]eventResp, len(day.Events))
		for j, ev := range day.Events {
			events[j] = newEventResp(ev)
		}
		resp.Days[i] = dayResp{Date: day.Date.Format("2006-01-02"), Events: events}
	}
	for i, ev := range week.AllDay {
		resp.AllDay[i] = newEventResp(ev)
	}
	return resp
}

// ---

type createResp struct {
	Event        eventResp `json:"event"`
	TaskMirrored bool      `json:"task_mirrored"`
}

func (h *handler) newCreateResp(out schedule.CreateEventOutput) createResp {
	return createResp{Event: newEventResp(out.Event), TaskMirrored: out.TaskMirrored}
}

type eventUpdateResp struct {
	Event eventResp `json:"event"`
}

func (h *handler) newEventUpdateResp(ev model.CalendarEvent) eventUpdateResp {
	return eventUpdateResp{Event: newEventResp(ev)}
}
