package usecase

import (
	"context"

	"weekly-agenda/internal/schedule"
	"weekly-agenda/pkg/timeparse"
)

// ParsePreview parses the expression without persisting anything, so the UI
// can show the interpretation as the user types. The input text is never
// cleared on failure; the caller surfaces the error inline.
func (uc *implUseCase) ParsePreview(ctx context.Context, input schedule.ParseInput) (schedule.ParseOutput, error) {
	sched, err := uc.parser.Parse(input.Text, uc.clk.Now())
	if err != nil {
		return schedule.ParseOutput{}, err
	}
	return schedule.ParseOutput{Schedule: sched}, nil
}

// Presets returns the quick presets in display order.
func (uc *implUseCase) Presets() []timeparse.Preset {
	return timeparse.Presets()
}
