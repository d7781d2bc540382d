package commands

import (
	"errors"

	"loadbook/internal/core/domain/model/kernel"
	"loadbook/internal/pkg/guard"
)

var ErrAcceptBookingCommandIsNotConstructed = errors.New(
	"AcceptBookingCommand must be created via NewAcceptBookingCommand constructor",
)

// AcceptBookingCommand picks a booking as the winner of its load.
type AcceptBookingCommand struct {
	bookingID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAcceptBookingCommand(bookingID kernel.UUID) (AcceptBookingCommand, error) {
	if err := bookingID.Validate(); err != nil {
		return AcceptBookingCommand{}, err
	}

	return AcceptBookingCommand{
		bookingID: bookingID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AcceptBookingCommand) Validate() error {
	return c.guard.Validate(ErrAcceptBookingCommandIsNotConstructed)
}

func (c AcceptBookingCommand) BookingID() kernel.UUID {
	return c.bookingID
}
