package commands

import (
	"context"
	"log/slog"

	"loadbook/internal/core/domain/model/booking"
)

// RejectBookingCommandHandler declines a Pending booking. When that leaves a
// Booked load without any Pending or Accepted booking, the load goes back to
// Posted.
type RejectBookingCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

func NewRejectBookingCommandHandler(uowFactory UoWFactory, logger *slog.Logger) RejectBookingCommandHandler {
	return RejectBookingCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "RejectBookingCommandHandler"),
	}
}

func (h RejectBookingCommandHandler) Handle(ctx context.Context, cmd RejectBookingCommand) (*booking.Booking, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var (
		rejected *booking.Booking
		reverted bool
	)
	err := retryOnConflict(ctx, h.logger, "reject booking", func(ctx context.Context) error {
		var err error
		rejected, reverted, err = h.handle(ctx, cmd)
		return err
	})
	if err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "booking rejected",
		"booking_id", rejected.ID().String(),
		"load_id", rejected.LoadID().String(),
		"load_reverted", reverted,
	)
	return rejected, nil
}

func (h RejectBookingCommandHandler) handle(ctx context.Context, cmd RejectBookingCommand) (*booking.Booking, bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	lifecycle := newLoadLifecycle(uow.LoadRepository(), h.logger)
	bookings := uow.BookingRepository()

	locked, err := lockBooking(ctx, uow, lifecycle, cmd.BookingID())
	if err != nil {
		return nil, false, err
	}
	b, l := locked.booking, locked.load

	if err = b.Reject(); err != nil {
		return nil, false, err
	}

	if err = bookings.Update(ctx, b); err != nil {
		return nil, false, err
	}

	reverted, err := lifecycle.revertIfIdle(ctx, l, bookings)
	if err != nil {
		return nil, false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, false, err
	}

	return b, reverted, nil
}
