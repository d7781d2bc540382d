package commands

import (
	"errors"

	"loadbook/internal/core/domain/model/kernel"
	"loadbook/internal/pkg/guard"
)

var ErrRejectBookingCommandIsNotConstructed = errors.New(
	"RejectBookingCommand must be created via NewRejectBookingCommand constructor",
)

type RejectBookingCommand struct {
	bookingID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRejectBookingCommand(bookingID kernel.UUID) (RejectBookingCommand, error) {
	if err := bookingID.Validate(); err != nil {
		return RejectBookingCommand{}, err
	}

	return RejectBookingCommand{
		bookingID: bookingID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RejectBookingCommand) Validate() error {
	return c.guard.Validate(ErrRejectBookingCommandIsNotConstructed)
}

func (c RejectBookingCommand) BookingID() kernel.UUID {
	return c.bookingID
}
