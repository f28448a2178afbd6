package usecase

import "context"

// DeleteEvent removes an event from the store. The Get establishes which
// cached week to invalidate and surfaces NotFound before the delete call.
func (uc *implUseCase) DeleteEvent(ctx context.Context, id string) error {
	if err := uc.beginEdit(id); err != nil {
		return err
	}
	defer uc.endEdit(id)

	existing, err := uc.store.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.store.Delete(ctx, id); err != nil {
		uc.l.Errorf(ctx, "DeleteEvent: store delete %s failed: %v", id, err)
		return err
	}

	uc.dropWeeks(existing.Start)
	uc.l.Infof(ctx, "DeleteEvent: deleted %s", id)
	return nil
}
