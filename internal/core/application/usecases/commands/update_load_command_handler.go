package commands

import (
	"context"
	"log/slog"

	"loadbook/internal/core/domain/model/load"
)

// UpdateLoadCommandHandler edits a Posted load.
//
// Returns errs.ErrObjectNotFound for a missing load, errs.ErrIllegalMutation
// for a Booked or Cancelled one and errs.ErrInvalidTemporalRange when the
// merged facility window is inverted.
type UpdateLoadCommandHandler struct {
	uowFactory LoadUoWFactory
	logger     *slog.Logger
}

func NewUpdateLoadCommandHandler(uowFactory LoadUoWFactory, logger *slog.Logger) UpdateLoadCommandHandler {
	return UpdateLoadCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "UpdateLoadCommandHandler"),
	}
}

func (h UpdateLoadCommandHandler) Handle(ctx context.Context, cmd UpdateLoadCommand) (*load.Load, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var updated *load.Load
	err := retryOnConflict(ctx, h.logger, "update load", func(ctx context.Context) error {
		var err error
		updated, err = h.handle(ctx, cmd)
		return err
	})
	if err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "load updated", "load_id", updated.ID().String())
	return updated, nil
}

func (h UpdateLoadCommandHandler) handle(ctx context.Context, cmd UpdateLoadCommand) (*load.Load, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	loads := uow.LoadRepository()

	l, err := loads.GetForUpdate(ctx, cmd.LoadID())
	if err != nil {
		return nil, err
	}

	if err = l.Update(cmd.Patch()); err != nil {
		return nil, err
	}

	if err = loads.Update(ctx, l); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return l, nil
}
