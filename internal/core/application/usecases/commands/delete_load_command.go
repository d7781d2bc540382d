package commands

import (
	"errors"

	"loadbook/internal/core/domain/model/kernel"
	"loadbook/internal/pkg/guard"
)

var ErrDeleteLoadCommandIsNotConstructed = errors.New(
	"DeleteLoadCommand must be created via NewDeleteLoadCommand constructor",
)

// DeleteLoadCommand removes a Posted or Cancelled load together with its bookings.
type DeleteLoadCommand struct {
	loadID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteLoadCommand(loadID kernel.UUID) (DeleteLoadCommand, error) {
	if err := loadID.Validate(); err != nil {
		return DeleteLoadCommand{}, err
	}

	return DeleteLoadCommand{
		loadID: loadID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteLoadCommand) Validate() error {
	return c.guard.Validate(ErrDeleteLoadCommandIsNotConstructed)
}

func (c DeleteLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}
