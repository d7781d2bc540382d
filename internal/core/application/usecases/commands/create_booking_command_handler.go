package commands

import (
	"context"
	"log/slog"

	"loadbook/internal/core/domain/model/booking"
	"loadbook/internal/core/domain/services"
)

// CreateBookingCommandHandler records a Pending proposal for a load.
//
// Business rules:
//   - The load must exist (errs.ErrObjectNotFound) and not be Cancelled (errs.ErrLoadCancelled)
//   - A transporter proposes at most once per load (errs.ErrDuplicateBooking)
//   - A Booked load still accepts proposals; its status is left untouched
type CreateBookingCommandHandler struct {
	uowFactory UoWFactory
	arbiter    services.BookingArbiter
	logger     *slog.Logger
}

func NewCreateBookingCommandHandler(uowFactory UoWFactory, logger *slog.Logger) CreateBookingCommandHandler {
	return CreateBookingCommandHandler{
		uowFactory: uowFactory,
		arbiter:    services.NewBookingArbiter(),
		logger:     logger.With("component", "CreateBookingCommandHandler"),
	}
}

func (h CreateBookingCommandHandler) Handle(ctx context.Context, cmd CreateBookingCommand) (*booking.Booking, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	proposal, err := booking.NewBooking(
		cmd.BookingID(),
		cmd.LoadID(),
		cmd.TransporterID(),
		cmd.ProposedRate(),
		cmd.Comment(),
	)
	if err != nil {
		return nil, err
	}

	err = retryOnConflict(ctx, h.logger, "create booking", func(ctx context.Context) error {
		return h.handle(ctx, proposal)
	})
	if err != nil {
		return nil, err
	}

	h.logger.InfoContext(ctx, "booking created",
		"booking_id", proposal.ID().String(),
		"load_id", proposal.LoadID().String(),
		"transporter_id", proposal.TransporterID(),
	)
	return proposal, nil
}

func (h CreateBookingCommandHandler) handle(ctx context.Context, proposal *booking.Booking) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	lifecycle := newLoadLifecycle(uow.LoadRepository(), h.logger)
	bookings := uow.BookingRepository()

	l, err := lifecycle.lock(ctx, proposal.LoadID())
	if err != nil {
		return err
	}

	exists, err := bookings.ExistsForTransporter(ctx, l.ID(), proposal.TransporterID())
	if err != nil {
		return err
	}

	if err = h.arbiter.Admit(l, exists); err != nil {
		return err
	}

	if err = bookings.Add(ctx, proposal); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
