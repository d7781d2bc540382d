package commands

import (
	"errors"

	"loadbook/internal/core/domain/model/kernel"
	"loadbook/internal/core/domain/model/load"
	"loadbook/internal/pkg/guard"
)

var ErrChangeLoadStatusCommandIsNotConstructed = errors.New(
	"ChangeLoadStatusCommand must be created via NewChangeLoadStatusCommand constructor",
)

// ChangeLoadStatusCommand requests a load status transition, typically a
// cancellation by the shipper.
type ChangeLoadStatusCommand struct {
	loadID kernel.UUID
	target load.Status

	guard guard.ConstructorGuard
}

func NewChangeLoadStatusCommand(loadID kernel.UUID, target load.Status) (ChangeLoadStatusCommand, error) {
	if err := errors.Join(loadID.Validate(), target.Validate()); err != nil {
		return ChangeLoadStatusCommand{}, err
	}

	return ChangeLoadStatusCommand{
		loadID: loadID,
		target: target,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeLoadStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeLoadStatusCommandIsNotConstructed)
}

func (c ChangeLoadStatusCommand) LoadID() kernel.UUID {
	return c.loadID
}

func (c ChangeLoadStatusCommand) Target() load.Status {
	return c.target
}
