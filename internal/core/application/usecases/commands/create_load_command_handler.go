package commands

import (
	"context"
	"log/slog"

	"loadbook/internal/core/domain/model/load"
)

// CreateLoadCommandHandler posts a new load.
//
// Business rules:
//   - The loading time must not follow the unloading time (errs.ErrInvalidTemporalRange)
//   - The load starts Posted; storage stamps its date posted
type CreateLoadCommandHandler struct {
	uowFactory LoadUoWFactory
	logger     *slog.Logger
}

func NewCreateLoadCommandHandler(uowFactory LoadUoWFactory, logger *slog.Logger) CreateLoadCommandHandler {
	return CreateLoadCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "CreateLoadCommandHandler"),
	}
}

// Handle validates the facility window, creates the load and persists it.
func (h CreateLoadCommandHandler) Handle(ctx context.Context, cmd CreateLoadCommand) (*load.Load, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	input := cmd.Facility()
	facility, err := load.NewFacility(input.LoadingPoint, input.UnloadingPoint, input.LoadingTime, input.UnloadingTime)
	if err != nil {
		return nil, err
	}

	created, err := load.NewLoad(cmd.LoadID(), cmd.Details(), facility)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.LoadRepository().Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "load created",
		"load_id", created.ID().String(),
		"shipper_id", created.ShipperID(),
	)
	return created, nil
}
