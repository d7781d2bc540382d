package booking

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

// MaxCommentLength is the longest comment, in characters, a booking may carry.
const MaxCommentLength = 1000

var ErrBookingIsNotConstructed = errors.New("Booking must be created via NewBooking constructor")

// Patch carries a partial update of a booking. Nil fields are left unchanged.
type Patch struct {
	ProposedRate *float64
	Comment      *string
}

// Booking is a transporter's proposal to carry a load at a given rate.
//
// Business rules:
//   - A booking always references exactly one load
//   - It starts Pending and moves to Accepted or Rejected exactly once
//   - Only Pending bookings are editable
//   - Accepted bookings can never be deleted
//
// Rules spanning several bookings of the same load (single winner, cascading
// rejection, load reversion) live in the domain services package.
type Booking struct {
	id            kernel.UUID
	loadID        kernel.UUID
	transporterID string
	proposedRate  float64
	comment       string
	status        Status
	requestedAt   time.Time
	updatedAt     time.Time
	guard         guard.ConstructorGuard
}

// NewBooking creates a Pending booking.
//
// Parameters:
//   - id: identifier of the booking
//   - loadID: identifier of the owning load
//   - transporterID: identifier of the proposing transporter (non-blank)
//   - proposedRate: offered rate (positive)
//   - comment: free text, at most MaxCommentLength characters
//
// Example:
//
//	b, err := booking.NewBooking(kernel.NewUUID(), l.ID(), "transporter-7", 25000, "")
//	if err != nil {
//	    // Handle validation error
//	}
func NewBooking(
	id kernel.UUID,
	loadID kernel.UUID,
	transporterID string,
	proposedRate float64,
	comment string,
) (*Booking, error) {
	b := &Booking{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setLoadID(loadID),
		b.setTransporterID(transporterID),
		b.setProposedRate(proposedRate),
		b.setComment(comment),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBooking rebuilds a booking from storage.
func RestoreBooking(
	id kernel.UUID,
	loadID kernel.UUID,
	transporterID string,
	proposedRate float64,
	comment string,
	status Status,
	requestedAt time.Time,
	updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		loadID:        loadID,
		transporterID: transporterID,
		proposedRate:  proposedRate,
		comment:       comment,
		status:        status,
		requestedAt:   requestedAt,
		updatedAt:     updatedAt,
		guard:         guard.NewConstructorGuard(),
	}
}

func (b *Booking) Validate() error {
	if b == nil {
		return ErrBookingIsNotConstructed
	}
	return b.guard.Validate(ErrBookingIsNotConstructed)
}

func (b *Booking) IsEqual(other *Booking) bool {
	return other != nil && b.id.IsEqual(other.id)
}

func (b *Booking) ID() kernel.UUID {
	return b.id
}

func (b *Booking) LoadID() kernel.UUID {
	return b.loadID
}

func (b *Booking) TransporterID() string {
	return b.transporterID
}

func (b *Booking) ProposedRate() float64 {
	return b.proposedRate
}

func (b *Booking) Comment() string {
	return b.comment
}

func (b *Booking) Status() Status {
	return b.status
}

func (b *Booking) RequestedAt() time.Time {
	return b.requestedAt
}

func (b *Booking) UpdatedAt() time.Time {
	return b.updatedAt
}

// Update applies a rate and/or comment change to a Pending booking.
// Accepted and Rejected bookings fail with errs.ErrIllegalMutation.
func (b *Booking) Update(patch Patch) error {
	if !b.status.IsEditable() {
		return errs.NewRuleViolationError(errs.ErrIllegalMutation,
			fmt.Sprintf("cannot update a %s booking", strings.ToLower(b.status.String())))
	}

	next := *b
	var err error
	if patch.ProposedRate != nil {
		err = errors.Join(err, next.setProposedRate(*patch.ProposedRate))
	}
	if patch.Comment != nil {
		err = errors.Join(err, next.setComment(*patch.Comment))
	}
	if err != nil {
		return err
	}

	*b = next
	return nil
}

// Accept moves a Pending booking to Accepted.
func (b *Booking) Accept() error {
	next, err := b.status.Accept()
	if err != nil {
		return err
	}
	b.status = next
	return nil
}

// Reject moves a Pending booking to Rejected.
func (b *Booking) Reject() error {
	next, err := b.status.Reject()
	if err != nil {
		return err
	}
	b.status = next
	return nil
}

// EnsureDeletable fails with errs.ErrCannotDeleteAccepted for an Accepted booking.
func (b *Booking) EnsureDeletable() error {
	if b.status == Accepted {
		return errs.NewRuleViolationError(errs.ErrCannotDeleteAccepted, "")
	}
	return nil
}

// RecordTimestamps stores the timestamps stamped by storage. requestedAt is
// only taken once.
func (b *Booking) RecordTimestamps(requestedAt time.Time, updatedAt time.Time) {
	if b.requestedAt.IsZero() && !requestedAt.IsZero() {
		b.requestedAt = requestedAt
	}
	if !updatedAt.IsZero() {
		b.updatedAt = updatedAt
	}
}

func (b *Booking) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Booking) setLoadID(loadID kernel.UUID) error {
	if err := loadID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("loadId", err)
	}
	b.loadID = loadID
	return nil
}

func (b *Booking) setTransporterID(transporterID string) error {
	if strings.TrimSpace(transporterID) == "" {
		return errs.NewValueIsRequiredError("transporterId")
	}
	b.transporterID = strings.TrimSpace(transporterID)
	return nil
}

func (b *Booking) setProposedRate(rate float64) error {
	if !(rate > 0) {
		return errs.NewValueIsInvalidErrorWithCause("proposedRate", fmt.Errorf("%v is not greater than 0", rate))
	}
	b.proposedRate = rate
	return nil
}

func (b *Booking) setComment(comment string) error {
	if n := utf8.RuneCountInString(comment); n > MaxCommentLength {
		return errs.NewValueIsOutOfRangeError("comment length", n, 0, MaxCommentLength)
	}
	b.comment = comment
	return nil
}
