package commands

import (
	"context"
	"log/slog"
)

// DeleteBookingCommandHandler removes a Pending or Rejected booking. Accepted
// bookings fail with errs.ErrCannotDeleteAccepted. The load goes back to
// Posted if it is Booked and no active booking remains.
type DeleteBookingCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

func NewDeleteBookingCommandHandler(uowFactory UoWFactory, logger *slog.Logger) DeleteBookingCommandHandler {
	return DeleteBookingCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "DeleteBookingCommandHandler"),
	}
}

func (h DeleteBookingCommandHandler) Handle(ctx context.Context, cmd DeleteBookingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var reverted bool
	err := retryOnConflict(ctx, h.logger, "delete booking", func(ctx context.Context) error {
		var err error
		reverted, err = h.handle(ctx, cmd)
		return err
	})
	if err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "booking deleted",
		"booking_id", cmd.BookingID().String(),
		"load_reverted", reverted,
	)
	return nil
}

func (h DeleteBookingCommandHandler) handle(ctx context.Context, cmd DeleteBookingCommand) (bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	lifecycle := newLoadLifecycle(uow.LoadRepository(), h.logger)
	bookings := uow.BookingRepository()

	locked, err := lockBooking(ctx, uow, lifecycle, cmd.BookingID())
	if err != nil {
		return false, err
	}
	b, l := locked.booking, locked.load

	if err = b.EnsureDeletable(); err != nil {
		return false, err
	}

	if err = bookings.Delete(ctx, b.ID()); err != nil {
		return false, err
	}

	reverted, err := lifecycle.revertIfIdle(ctx, l, bookings)
	if err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return reverted, nil
}
