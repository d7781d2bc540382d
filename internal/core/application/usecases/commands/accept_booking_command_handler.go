package commands

import (
	"context"
	"errors"
	"log/slog"

	"loadbook/internal/core/domain/model/booking"
	"loadbook/internal/core/domain/model/load"
	"loadbook/internal/core/domain/services"
	"loadbook/internal/pkg/errs"
)

// AcceptBookingCommandHandler makes a booking the single winner of its load.
//
// In one transaction the booking becomes Accepted, the load moves to Booked and
// every other Pending booking of the load becomes Rejected.
//
// Returns:
//   - errs.ErrObjectNotFound for a missing booking
//   - errs.ErrInvalidTransition unless the booking is Pending
//   - errs.ErrLoadCancelled for a booking of a cancelled load
//   - errs.ErrAlreadyBooked when another booking of the load was accepted,
//     including when it won a race against this call and rejected this booking
//     while the call waited for the load lock
type AcceptBookingCommandHandler struct {
	uowFactory UoWFactory
	arbiter    services.BookingArbiter
	logger     *slog.Logger
}

func NewAcceptBookingCommandHandler(uowFactory UoWFactory, logger *slog.Logger) AcceptBookingCommandHandler {
	return AcceptBookingCommandHandler{
		uowFactory: uowFactory,
		arbiter:    services.NewBookingArbiter(),
		logger:     logger.With("component", "AcceptBookingCommandHandler"),
	}
}

func (h AcceptBookingCommandHandler) Handle(ctx context.Context, cmd AcceptBookingCommand) (*booking.Booking, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var (
		accepted *booking.Booking
		rejected int64
	)
	err := retryOnConflict(ctx, h.logger, "accept booking", func(ctx context.Context) error {
		var err error
		accepted, rejected, err = h.handle(ctx, cmd)
		return err
	})
	if errors.Is(err, errs.ErrConcurrentModification) {
		return nil, errs.NewRuleViolationError(errs.ErrAlreadyBooked, "load was booked by a concurrent acceptance")
	}
	if err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "booking accepted",
		"booking_id", accepted.ID().String(),
		"load_id", accepted.LoadID().String(),
		"rejected_siblings", rejected,
	)
	return accepted, nil
}

func (h AcceptBookingCommandHandler) handle(ctx context.Context, cmd AcceptBookingCommand) (*booking.Booking, int64, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	lifecycle := newLoadLifecycle(uow.LoadRepository(), h.logger)
	bookings := uow.BookingRepository()

	locked, err := lockBooking(ctx, uow, lifecycle, cmd.BookingID())
	if err != nil {
		return nil, 0, err
	}
	candidate, l := locked.booking, locked.load

	siblings, err := bookings.ListByLoad(ctx, l.ID(), booking.Pending, booking.Accepted)
	if err != nil {
		return nil, 0, err
	}

	if locked.changedWhileWaiting && hasAccepted(siblings) {
		return nil, 0, errs.NewRuleViolationError(errs.ErrAlreadyBooked, "load was booked by a concurrent acceptance")
	}

	if _, err = h.arbiter.Accept(l, candidate, siblings); err != nil {
		return nil, 0, err
	}

	if err = bookings.Accept(ctx, candidate); err != nil {
		return nil, 0, err
	}

	if err = lifecycle.transition(ctx, l, load.Booked); err != nil {
		return nil, 0, err
	}

	rejected, err := bookings.RejectPending(ctx, l.ID(), candidate.ID())
	if err != nil {
		return nil, 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, 0, err
	}

	return candidate, rejected, nil
}

func hasAccepted(bookings []*booking.Booking) bool {
	for _, b := range bookings {
		if b.Status() == booking.Accepted {
			return true
		}
	}
	return false
}
