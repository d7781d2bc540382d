package commands

import (
	"errors"
	"time"

	"loadbook/internal/core/domain/model/kernel"
	"loadbook/internal/core/domain/model/load"
	"loadbook/internal/pkg/guard"
)

var ErrCreateLoadCommandIsNotConstructed = errors.New(
	"CreateLoadCommand must be created via NewCreateLoadCommand constructor",
)

// FacilityInput carries the loading and unloading window of a new load as
// received from the caller. The range itself is checked by the handler.
type FacilityInput struct {
	LoadingPoint   string
	UnloadingPoint string
	LoadingTime    time.Time
	UnloadingTime  time.Time
}

// CreateLoadCommand represents a shipper posting a new load.
//
// Example:
//
//	cmd, err := NewCreateLoadCommand(kernel.NewUUID(), load.Details{
//	    ShipperID:   "shipper-1",
//	    ProductType: "Electronics",
//	    TruckType:   "Container",
//	    TruckCount:  2,
//	    Weight:      1500,
//	}, FacilityInput{LoadingPoint: "Mumbai", UnloadingPoint: "Delhi", LoadingTime: t1, UnloadingTime: t2})
//	if err != nil {
//	    return fmt.Errorf("invalid load data: %w", err)
//	}
//	l, err := handler.Handle(ctx, cmd)
type CreateLoadCommand struct {
	loadID   kernel.UUID
	details  load.Details
	facility FacilityInput

	guard guard.ConstructorGuard
}

// NewCreateLoadCommand validates the identifier; descriptive fields are
// validated by the load aggregate.
func NewCreateLoadCommand(loadID kernel.UUID, details load.Details, facility FacilityInput) (CreateLoadCommand, error) {
	if err := loadID.Validate(); err != nil {
		return CreateLoadCommand{}, err
	}

	return CreateLoadCommand{
		loadID:   loadID,
		details:  details,
		facility: facility,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateLoadCommand) Validate() error {
	return c.guard.Validate(ErrCreateLoadCommandIsNotConstructed)
}

func (c CreateLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}

func (c CreateLoadCommand) Details() load.Details {
	return c.details
}

func (c CreateLoadCommand) Facility() FacilityInput {
	return c.facility
}
