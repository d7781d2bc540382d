package commands

import (
	"errors"

	"loadbook/internal/core/domain/model/booking"
	"loadbook/internal/core/domain/model/kernel"
	"loadbook/internal/pkg/guard"
)

var ErrUpdateBookingCommandIsNotConstructed = errors.New(
	"UpdateBookingCommand must be created via NewUpdateBookingCommand constructor",
)

// UpdateBookingCommand changes the rate or comment of a Pending booking.
type UpdateBookingCommand struct {
	bookingID kernel.UUID
	patch     booking.Patch

	guard guard.ConstructorGuard
}

func NewUpdateBookingCommand(bookingID kernel.UUID, patch booking.Patch) (UpdateBookingCommand, error) {
	if err := bookingID.Validate(); err != nil {
		return UpdateBookingCommand{}, err
	}

	return UpdateBookingCommand{
		bookingID: bookingID,
		patch:     patch,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateBookingCommand) Validate() error {
	return c.guard.Validate(ErrUpdateBookingCommandIsNotConstructed)
}

func (c UpdateBookingCommand) BookingID() kernel.UUID {
	return c.bookingID
}

func (c UpdateBookingCommand) Patch() booking.Patch {
	return c.patch
}
