package queries

import (
	"errors"

	"loadbook/internal/core/domain/model/kernel"
	"loadbook/internal/core/domain/model/load"
	"loadbook/internal/pkg/guard"
)

var ErrFindInconsistentLoadsQueryIsNotConstructed = errors.New(
	"FindInconsistentLoadsQuery must be created via NewFindInconsistentLoadsQuery constructor",
)

// FindInconsistentLoadsQuery looks for loads whose status disagrees with
// their bookings: a Booked load without exactly one Accepted booking, or any
// load holding more than one Accepted booking.
type FindInconsistentLoadsQuery struct {
	guard guard.ConstructorGuard
}

func NewFindInconsistentLoadsQuery() FindInconsistentLoadsQuery {
	return FindInconsistentLoadsQuery{guard: guard.NewConstructorGuard()}
}

func (q FindInconsistentLoadsQuery) Validate() error {
	return q.guard.Validate(ErrFindInconsistentLoadsQueryIsNotConstructed)
}

// InconsistentLoad describes one finding.
type InconsistentLoad struct {
	LoadID   kernel.UUID
	Status   load.Status
	Pending  int64
	Accepted int64
}
