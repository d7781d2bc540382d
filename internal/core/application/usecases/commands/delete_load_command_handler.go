package commands

import (
	"context"
	"log/slog"
)

// DeleteLoadCommandHandler deletes a load. Booked loads fail with
// errs.ErrIllegalMutation; storage cascades the delete to the bookings.
type DeleteLoadCommandHandler struct {
	uowFactory LoadUoWFactory
	logger     *slog.Logger
}

func NewDeleteLoadCommandHandler(uowFactory LoadUoWFactory, logger *slog.Logger) DeleteLoadCommandHandler {
	return DeleteLoadCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "DeleteLoadCommandHandler"),
	}
}

func (h DeleteLoadCommandHandler) Handle(ctx context.Context, cmd DeleteLoadCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	err := retryOnConflict(ctx, h.logger, "delete load", func(ctx context.Context) error {
		return h.handle(ctx, cmd)
	})
	if err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "load deleted", "load_id", cmd.LoadID().String())
	return nil
}

func (h DeleteLoadCommandHandler) handle(ctx context.Context, cmd DeleteLoadCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	loads := uow.LoadRepository()

	l, err := loads.GetForUpdate(ctx, cmd.LoadID())
	if err != nil {
		return err
	}

	if err = l.EnsureDeletable(); err != nil {
		return err
	}

	if err = loads.Delete(ctx, l.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
