package commands

import (
	"errors"

	"loadbook/internal/core/domain/model/kernel"
	"loadbook/internal/core/domain/model/load"
	"loadbook/internal/pkg/guard"
)

var ErrUpdateLoadCommandIsNotConstructed = errors.New(
	"UpdateLoadCommand must be created via NewUpdateLoadCommand constructor",
)

// UpdateLoadCommand applies a partial update to a Posted load. Fields left
// nil in the patch keep their stored value.
type UpdateLoadCommand struct {
	loadID kernel.UUID
	patch  load.Patch

	guard guard.ConstructorGuard
}

func NewUpdateLoadCommand(loadID kernel.UUID, patch load.Patch) (UpdateLoadCommand, error) {
	if err := loadID.Validate(); err != nil {
		return UpdateLoadCommand{}, err
	}

	return UpdateLoadCommand{
		loadID: loadID,
		patch:  patch,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateLoadCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLoadCommandIsNotConstructed)
}

func (c UpdateLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}

func (c UpdateLoadCommand) Patch() load.Patch {
	return c.patch
}
