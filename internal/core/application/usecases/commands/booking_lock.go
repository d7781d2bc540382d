package commands

import (
	"context"

	"loadbook/internal/core/domain/model/booking"
	"loadbook/internal/core/domain/model/kernel"
	"loadbook/internal/core/domain/model/load"
)

// lockedBooking is a booking read under its load's row lock.
type lockedBooking struct {
	booking *booking.Booking
	load    *load.Load

	// changedWhileWaiting is set when another transaction moved the booking
	// to a different status between the first read and the lock grant.
	changedWhileWaiting bool
}

// lockBooking reads a booking together with its load, holding the load's row
// lock. The booking is read again after the lock is granted because a writer
// that held the lock before may have changed it.
func lockBooking(ctx context.Context, uow UoW, lifecycle loadLifecycle, id kernel.UUID) (lockedBooking, error) {
	bookings := uow.BookingRepository()

	observed, err := bookings.Get(ctx, id)
	if err != nil {
		return lockedBooking{}, err
	}

	l, err := lifecycle.lock(ctx, observed.LoadID())
	if err != nil {
		return lockedBooking{}, err
	}

	current, err := bookings.Get(ctx, id)
	if err != nil {
		return lockedBooking{}, err
	}

	return lockedBooking{
		booking:             current,
		load:                l,
		changedWhileWaiting: current.Status() != observed.Status(),
	}, nil
}
