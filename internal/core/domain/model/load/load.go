package load

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"loadbook/internal/core/domain/model/kernel"
	"loadbook/internal/pkg/errs"
	"loadbook/internal/pkg/guard"
)

// MaxCommentLength is the longest comment, in characters, a load may carry.
const MaxCommentLength = 1000

var ErrLoadIsNotConstructed = errors.New("Load must be created via NewLoad constructor")

// Details groups the descriptive attributes of a load supplied by the shipper.
type Details struct {
	ShipperID   string
	ProductType string
	TruckType   string
	TruckCount  int
	Weight      float64
	Comment     string
}

// Patch carries a partial update of a load. Nil fields are left unchanged.
type Patch struct {
	ShipperID   *string
	ProductType *string
	TruckType   *string
	TruckCount  *int
	Weight      *float64
	Comment     *string
	Facility    FacilityPatch
}

// Load is the aggregate root for a freight shipment posted by a shipper.
//
// Load follows these invariants:
//   - Identifier, shipper, product type and truck type are always set
//   - Truck count and weight are positive
//   - The facility loading time never follows the unloading time
//   - Status changes go through the load transition table only
//   - Details are editable only while the load is Posted
//
// Timestamps are owned by storage; the aggregate only carries the values
// reported back through RecordTimestamps.
type Load struct {
	id          kernel.UUID
	shipperID   string
	facility    Facility
	productType string
	truckType   string
	truckCount  int
	weight      float64
	comment     string
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
	guard       guard.ConstructorGuard
}

// NewLoad creates a Posted load.
//
// Parameters:
//   - id: identifier of the load (must be valid UUID)
//   - details: shipper supplied attributes
//   - facility: validated loading and unloading window
//
// Returns:
//   - *Load: the created load if all validations pass
//   - error: all validation failures joined together
//
// Example:
//
//	facility, err := load.NewFacility("Mumbai", "Delhi", pickup, dropoff)
//	if err != nil {
//	    return err // errs.ErrInvalidTemporalRange when pickup > dropoff
//	}
//	l, err := load.NewLoad(kernel.NewUUID(), load.Details{
//	    ShipperID:   "shipper-1",
//	    ProductType: "Electronics",
//	    TruckType:   "Container",
//	    TruckCount:  2,
//	    Weight:      1500,
//	}, facility)
func NewLoad(id kernel.UUID, details Details, facility Facility) (*Load, error) {
	l := &Load{
		status: Posted,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setID(id),
		l.setFacility(facility),
		l.setDetails(details),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreLoad rebuilds a load from storage without re-running creation rules.
func RestoreLoad(
	id kernel.UUID,
	details Details,
	facility Facility,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) *Load {
	return &Load{
		id:          id,
		shipperID:   details.ShipperID,
		facility:    facility,
		productType: details.ProductType,
		truckType:   details.TruckType,
		truckCount:  details.TruckCount,
		weight:      details.Weight,
		comment:     details.Comment,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		guard:       guard.NewConstructorGuard(),
	}
}

// Validate ensures the load was created via NewLoad or RestoreLoad.
func (l *Load) Validate() error {
	if l == nil {
		return ErrLoadIsNotConstructed
	}
	return l.guard.Validate(ErrLoadIsNotConstructed)
}

// IsEqual compares two loads by identifier.
func (l *Load) IsEqual(other *Load) bool {
	return other != nil && l.id.IsEqual(other.id)
}

func (l *Load) ID() kernel.UUID {
	return l.id
}

func (l *Load) ShipperID() string {
	return l.shipperID
}

func (l *Load) Facility() Facility {
	return l.facility
}

func (l *Load) ProductType() string {
	return l.productType
}

func (l *Load) TruckType() string {
	return l.truckType
}

func (l *Load) TruckCount() int {
	return l.truckCount
}

func (l *Load) Weight() float64 {
	return l.weight
}

func (l *Load) Comment() string {
	return l.comment
}

func (l *Load) Status() Status {
	return l.status
}

// DatePosted is the creation timestamp stamped by storage.
func (l *Load) DatePosted() time.Time {
	return l.createdAt
}

func (l *Load) UpdatedAt() time.Time {
	return l.updatedAt
}

// Details returns the descriptive attributes of the load.
func (l *Load) Details() Details {
	return Details{
		ShipperID:   l.shipperID,
		ProductType: l.productType,
		TruckType:   l.truckType,
		TruckCount:  l.truckCount,
		Weight:      l.weight,
		Comment:     l.comment,
	}
}

// Update applies a partial update.
//
// Business rules:
//   - Only Posted loads are editable; Booked and Cancelled loads fail with
//     errs.ErrIllegalMutation
//   - A facility change is re-validated as a whole, so errs.ErrInvalidTemporalRange
//     is returned when the merged window is inverted
//   - Nothing is applied unless every field is valid
func (l *Load) Update(patch Patch) error {
	if !l.status.IsEditable() {
		return errs.NewRuleViolationError(errs.ErrIllegalMutation,
			fmt.Sprintf("cannot update a %s load", strings.ToLower(l.status.String())))
	}

	details := l.Details()
	if patch.ShipperID != nil {
		details.ShipperID = *patch.ShipperID
	}
	if patch.ProductType != nil {
		details.ProductType = *patch.ProductType
	}
	if patch.TruckType != nil {
		details.TruckType = *patch.TruckType
	}
	if patch.TruckCount != nil {
		details.TruckCount = *patch.TruckCount
	}
	if patch.Weight != nil {
		details.Weight = *patch.Weight
	}
	if patch.Comment != nil {
		details.Comment = *patch.Comment
	}

	facility := l.facility
	if !patch.Facility.IsEmpty() {
		var err error
		if facility, err = l.facility.Apply(patch.Facility); err != nil {
			return err
		}
	}

	next := *l
	if err := errors.Join(
		next.setFacility(facility),
		next.setDetails(details),
	); err != nil {
		return err
	}

	*l = next
	return nil
}

// EnsureDeletable fails with errs.ErrIllegalMutation for a Booked load.
func (l *Load) EnsureDeletable() error {
	if !l.status.IsDeletable() {
		return errs.NewRuleViolationError(errs.ErrIllegalMutation,
			fmt.Sprintf("cannot delete a %s load", strings.ToLower(l.status.String())))
	}
	return nil
}

// TransitionTo moves the load to target if the transition table allows it.
func (l *Load) TransitionTo(target Status) error {
	next, err := l.status.TransitionTo(target)
	if err != nil {
		return err
	}
	l.status = next
	return nil
}

// RecordTimestamps stores the timestamps stamped by storage after a write.
func (l *Load) RecordTimestamps(createdAt time.Time, updatedAt time.Time) {
	if !createdAt.IsZero() {
		l.createdAt = createdAt
	}
	if !updatedAt.IsZero() {
		l.updatedAt = updatedAt
	}
}

func (l *Load) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Load) setFacility(facility Facility) error {
	if err := facility.Validate(); err != nil {
		return err
	}
	l.facility = facility
	return nil
}

func (l *Load) setDetails(d Details) error {
	err := errors.Join(
		requireText("shipperId", d.ShipperID),
		requireText("productType", d.ProductType),
		requireText("truckType", d.TruckType),
		validateTruckCount(d.TruckCount),
		validateWeight(d.Weight),
		validateComment(d.Comment),
	)
	if err != nil {
		return err
	}

	l.shipperID = strings.TrimSpace(d.ShipperID)
	l.productType = strings.TrimSpace(d.ProductType)
	l.truckType = strings.TrimSpace(d.TruckType)
	l.truckCount = d.TruckCount
	l.weight = d.Weight
	l.comment = d.Comment
	return nil
}

func validateTruckCount(count int) error {
	if count <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("noOfTrucks", fmt.Errorf("%d is not greater than 0", count))
	}
	return nil
}

func validateWeight(weight float64) error {
	if !(weight > 0) {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%v is not greater than 0", weight))
	}
	return nil
}

func validateComment(comment string) error {
	if n := utf8.RuneCountInString(comment); n > MaxCommentLength {
		return errs.NewValueIsOutOfRangeError("comment length", n, 0, MaxCommentLength)
	}
	return nil
}
