package commands

import (
	"context"
	"log/slog"

	"loadbook/internal/core/domain/model/booking"
)

// UpdateBookingCommandHandler edits a Pending booking. Decided bookings fail
// with errs.ErrIllegalMutation.
type UpdateBookingCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

func NewUpdateBookingCommandHandler(uowFactory UoWFactory, logger *slog.Logger) UpdateBookingCommandHandler {
	return UpdateBookingCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "UpdateBookingCommandHandler"),
	}
}

func (h UpdateBookingCommandHandler) Handle(ctx context.Context, cmd UpdateBookingCommand) (*booking.Booking, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var updated *booking.Booking
	err := retryOnConflict(ctx, h.logger, "update booking", func(ctx context.Context) error {
		var err error
		updated, err = h.handle(ctx, cmd)
		return err
	})
	if err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "booking updated", "booking_id", updated.ID().String())
	return updated, nil
}

func (h UpdateBookingCommandHandler) handle(ctx context.Context, cmd UpdateBookingCommand) (*booking.Booking, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	lifecycle := newLoadLifecycle(uow.LoadRepository(), h.logger)

	locked, err := lockBooking(ctx, uow, lifecycle, cmd.BookingID())
	if err != nil {
		return nil, err
	}
	b := locked.booking

	if err = b.Update(cmd.Patch()); err != nil {
		return nil, err
	}

	if err = uow.BookingRepository().Update(ctx, b); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return b, nil
}
