package ports

import (
	"context"

	"loadbook/internal/core/domain/model/booking"
	"loadbook/internal/core/domain/model/kernel"
)

// BookingRepository defines the persistence contract for booking aggregates.
type BookingRepository interface {
	// Add persists a new booking. A second booking for the same
	// (load, transporter) pair fails with errs.ErrDuplicateBooking.
	Add(ctx context.Context, aggregate *booking.Booking) error

	// Update persists rate, comment and status changes of a booking.
	Update(ctx context.Context, aggregate *booking.Booking) error

	// Get retrieves a booking by identifier.
	// Returns errs.ObjectNotFoundError when no booking matches.
	Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error)

	// Delete removes a booking.
	Delete(ctx context.Context, id kernel.UUID) error

	// ExistsForTransporter reports whether the transporter already proposed for the load.
	ExistsForTransporter(ctx context.Context, loadID kernel.UUID, transporterID string) (bool, error)

	// ListByLoad returns the load's bookings in the given statuses, all of them
	// when no status is passed.
	ListByLoad(ctx context.Context, loadID kernel.UUID, statuses ...booking.Status) ([]*booking.Booking, error)

	// CountByStatus returns how many bookings of the load are in each status.
	CountByStatus(ctx context.Context, loadID kernel.UUID) (map[booking.Status]int64, error)

	// Accept stores aggregate as Accepted with a single conditional write that
	// only succeeds while the stored booking is Pending and no other booking
	// of the same load is Accepted. Otherwise it fails with
	// errs.ErrConcurrentModification and nothing is written.
	Accept(ctx context.Context, aggregate *booking.Booking) error

	// RejectPending moves every Pending booking of the load except the given
	// one to Rejected and returns how many rows changed.
	RejectPending(ctx context.Context, loadID kernel.UUID, except kernel.UUID) (int64, error)
}
