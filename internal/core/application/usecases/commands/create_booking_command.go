package commands

import (
	"errors"

	"loadbook/internal/core/domain/model/kernel"
	"loadbook/internal/pkg/guard"
)

var ErrCreateBookingCommandIsNotConstructed = errors.New(
	"CreateBookingCommand must be created via NewCreateBookingCommand constructor",
)

// CreateBookingCommand represents a transporter proposing a rate for a load.
type CreateBookingCommand struct {
	bookingID     kernel.UUID
	loadID        kernel.UUID
	transporterID string
	proposedRate  float64
	comment       string

	guard guard.ConstructorGuard
}

func NewCreateBookingCommand(
	bookingID kernel.UUID,
	loadID kernel.UUID,
	transporterID string,
	proposedRate float64,
	comment string,
) (CreateBookingCommand, error) {
	if err := errors.Join(bookingID.Validate(), loadID.Validate()); err != nil {
		return CreateBookingCommand{}, err
	}

	return CreateBookingCommand{
		bookingID:     bookingID,
		loadID:        loadID,
		transporterID: transporterID,
		proposedRate:  proposedRate,
		comment:       comment,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c CreateBookingCommand) Validate() error {
	return c.guard.Validate(ErrCreateBookingCommandIsNotConstructed)
}

func (c CreateBookingCommand) BookingID() kernel.UUID {
	return c.bookingID
}

func (c CreateBookingCommand) LoadID() kernel.UUID {
	return c.loadID
}

func (c CreateBookingCommand) TransporterID() string {
	return c.transporterID
}

func (c CreateBookingCommand) ProposedRate() float64 {
	return c.proposedRate
}

func (c CreateBookingCommand) Comment() string {
	return c.comment
}
