package queries

import (
	"errors"

	"loadbook/internal/core/domain/model/load"
	"loadbook/internal/pkg/guard"
)

var ErrListLoadsQueryIsNotConstructed = errors.New(
	"ListLoadsQuery must be created via NewListLoadsQuery constructor",
)

// LoadFilter narrows a load listing. Empty fields do not filter; set fields
// are combined with AND.
type LoadFilter struct {
	ShipperID string
	TruckType string
	Status    *load.Status
}

// ListLoadsQuery pages through loads, newest first.
//
// Example:
//
//	page, err := queries.NewPage(0, 20)
//	booked := load.Booked
//	query, err := queries.NewListLoadsQuery(queries.LoadFilter{Status: &booked}, page)
//	result, err := handler.Handle(ctx, query)
//	fmt.Println(result.TotalElements, len(result.Content))
type ListLoadsQuery struct {
	filter LoadFilter
	page   Page

	guard guard.ConstructorGuard
}

func NewListLoadsQuery(filter LoadFilter, page Page) (ListLoadsQuery, error) {
	if filter.Status != nil {
		if err := filter.Status.Validate(); err != nil {
			return ListLoadsQuery{}, err
		}
	}

	return ListLoadsQuery{
		filter: filter,
		page:   page,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListLoadsQuery) Validate() error {
	return q.guard.Validate(ErrListLoadsQueryIsNotConstructed)
}

func (q ListLoadsQuery) Filter() LoadFilter {
	return q.filter
}

func (q ListLoadsQuery) Page() Page {
	return q.page
}
