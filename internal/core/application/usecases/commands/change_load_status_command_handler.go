package commands

import (
	"context"
	"log/slog"

	"loadbook/internal/core/domain/model/load"
)

// ChangeLoadStatusCommandHandler moves a load along its transition table:
// Posted -> {Booked, Cancelled}, Booked -> {Posted, Cancelled}, Cancelled is
// terminal. Illegal moves fail with errs.ErrInvalidTransition.
type ChangeLoadStatusCommandHandler struct {
	uowFactory LoadUoWFactory
	logger     *slog.Logger
}

func NewChangeLoadStatusCommandHandler(uowFactory LoadUoWFactory, logger *slog.Logger) ChangeLoadStatusCommandHandler {
	return ChangeLoadStatusCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "ChangeLoadStatusCommandHandler"),
	}
}

func (h ChangeLoadStatusCommandHandler) Handle(ctx context.Context, cmd ChangeLoadStatusCommand) (*load.Load, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var changed *load.Load
	err := retryOnConflict(ctx, h.logger, "change load status", func(ctx context.Context) error {
		var err error
		changed, err = h.handle(ctx, cmd)
		return err
	})
	if err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "load status updated",
		"load_id", changed.ID().String(),
		"status", changed.Status().String(),
	)
	return changed, nil
}

func (h ChangeLoadStatusCommandHandler) handle(ctx context.Context, cmd ChangeLoadStatusCommand) (*load.Load, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	lifecycle := newLoadLifecycle(uow.LoadRepository(), h.logger)

	l, err := lifecycle.lock(ctx, cmd.LoadID())
	if err != nil {
		return nil, err
	}

	if err = lifecycle.transition(ctx, l, cmd.Target()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return l, nil
}
