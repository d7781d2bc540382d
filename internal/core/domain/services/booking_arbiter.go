package services

import (
	"fmt"

	"loadbook/internal/core/domain/model/booking"
	"loadbook/internal/core/domain/model/load"
	"loadbook/internal/pkg/errs"
)

// BookingArbiter decides the fate of competing bookings on one load.
//
// Key responsibilities:
//   - Admitting new proposals (no bookings on cancelled loads, one per transporter)
//   - Picking the single winner of a load and rejecting every other pending proposal
//
// Business rules:
//   - At most one booking of a load is Accepted at any time
//   - Accepting a booking requires its load to be bookable; moving the load to
//     Booked is left to the caller so that every load status change takes the
//     same path
//   - Every other Pending booking of the load is Rejected in the same step
//
// The arbiter works on the in-memory view it is given. Callers persist the
// outcome in a single transaction and must still guard the acceptance with a
// conditional write, because the view may be stale by the time it is stored.
//
// Example usage:
//
//	arbiter := services.NewBookingArbiter()
//	rejected, err := arbiter.Accept(l, candidate, siblings)
//	if errors.Is(err, errs.ErrAlreadyBooked) {
//	    // another transporter won the load
//	}
//	// persist candidate, then move l to load.Booked
type BookingArbiter struct{}

func NewBookingArbiter() BookingArbiter {
	return BookingArbiter{}
}

// Admit checks that a transporter may propose for the load.
//
// Parameters:
//   - l: the load being proposed for
//   - alreadyProposed: whether the transporter already has a booking on l
//
// Returns:
//   - errs.ErrLoadCancelled for a cancelled load
//   - errs.ErrDuplicateBooking when the transporter already proposed
//
// A Booked load still admits proposals; exclusivity is enforced on acceptance.
func (a BookingArbiter) Admit(l *load.Load, alreadyProposed bool) error {
	if err := l.Validate(); err != nil {
		return err
	}

	if l.Status() == load.Cancelled {
		return errs.NewRuleViolationError(errs.ErrLoadCancelled, "cannot book a cancelled load")
	}

	if alreadyProposed {
		return errs.NewRuleViolationError(errs.ErrDuplicateBooking, "")
	}

	return nil
}

// Accept makes candidate the winner of l. The load itself is not mutated.
//
// Parameters:
//   - l: the load owning candidate
//   - candidate: the booking to accept
//   - siblings: the other active bookings of l; candidate itself is skipped if present
//
// Returns:
//   - []*booking.Booking: the siblings moved from Pending to Rejected
//   - error: errs.ErrInvalidTransition unless candidate is Pending,
//     errs.ErrLoadCancelled for a cancelled load, errs.ErrAlreadyBooked when a
//     sibling is already Accepted, or the load transition error
//
// Nothing is mutated unless every check passes.
func (a BookingArbiter) Accept(
	l *load.Load,
	candidate *booking.Booking,
	siblings []*booking.Booking,
) ([]*booking.Booking, error) {
	if err := a.validate(l, candidate); err != nil {
		return nil, err
	}

	if _, err := candidate.Status().Accept(); err != nil {
		return nil, err
	}

	if l.Status() == load.Cancelled {
		return nil, errs.NewRuleViolationError(errs.ErrLoadCancelled, "cannot accept a booking of a cancelled load")
	}

	pending := make([]*booking.Booking, 0, len(siblings))
	for _, sibling := range siblings {
		if err := sibling.Validate(); err != nil {
			return nil, err
		}
		if sibling.IsEqual(candidate) || !sibling.LoadID().IsEqual(l.ID()) {
			continue
		}

		switch sibling.Status() {
		case booking.Accepted:
			return nil, errs.NewRuleViolationError(errs.ErrAlreadyBooked,
				fmt.Sprintf("booking %s was already accepted", sibling.ID()))
		case booking.Pending:
			pending = append(pending, sibling)
		}
	}

	if _, err := l.Status().TransitionTo(load.Booked); err != nil {
		return nil, err
	}

	if err := candidate.Accept(); err != nil {
		return nil, err
	}
	for _, sibling := range pending {
		if err := sibling.Reject(); err != nil {
			return nil, err
		}
	}

	return pending, nil
}

func (a BookingArbiter) validate(l *load.Load, candidate *booking.Booking) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if err := candidate.Validate(); err != nil {
		return err
	}
	if !candidate.LoadID().IsEqual(l.ID()) {
		return errs.NewValueIsInvalidErrorWithCause("loadId",
			fmt.Errorf("booking %s belongs to load %s, not %s", candidate.ID(), candidate.LoadID(), l.ID()))
	}
	return nil
}
