package queries

import (
	"errors"

	"loadbook/internal/core/domain/model/booking"
	"loadbook/internal/core/domain/model/kernel"
	"loadbook/internal/pkg/guard"
)

var ErrListBookingsQueryIsNotConstructed = errors.New(
	"ListBookingsQuery must be created via NewListBookingsQuery constructor",
)

// BookingFilter narrows a booking listing; zero fields do not filter.
type BookingFilter struct {
	LoadID        *kernel.UUID
	TransporterID string
	Status        *booking.Status
}

// ListBookingsQuery pages through bookings, most recently requested first.
type ListBookingsQuery struct {
	filter BookingFilter
	page   Page

	guard guard.ConstructorGuard
}

func NewListBookingsQuery(filter BookingFilter, page Page) (ListBookingsQuery, error) {
	var err error
	if filter.LoadID != nil {
		err = errors.Join(err, filter.LoadID.Validate())
	}
	if filter.Status != nil {
		err = errors.Join(err, filter.Status.Validate())
	}
	if err != nil {
		return ListBookingsQuery{}, err
	}

	return ListBookingsQuery{
		filter: filter,
		page:   page,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListBookingsQuery) Validate() error {
	return q.guard.Validate(ErrListBookingsQueryIsNotConstructed)
}

func (q ListBookingsQuery) Filter() BookingFilter {
	return q.filter
}

func (q ListBookingsQuery) Page() Page {
	return q.page
}
