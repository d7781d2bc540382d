package booking

import (
	"fmt"
	"strings"

	"loadbook/internal/core/domain/model/kernel"
	"loadbook/internal/pkg/errs"
)

// Status represents the lifecycle state of a booking.
//
// State transitions:
//
//	Pending ──┬──> Accepted
//	          └──> Rejected
//
// Accepted and Rejected are terminal. A Pending booking may also be deleted.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status of every booking.
	Pending

	// Accepted marks the single winning booking of a load.
	Accepted

	// Rejected marks a booking that lost or was declined.
	Rejected
)

var statusNames = map[Status]string{
	Pending:  "PENDING",
	Accepted: "ACCEPTED",
	Rejected: "REJECTED",
}

var transitions = kernel.NewTransitionTable("booking", map[Status][]Status{
	Pending:  {Accepted, Rejected},
	Accepted: {},
	Rejected: {},
})

// ParseStatus converts the wire name ("PENDING", "accepted", ...) into a Status.
func ParseStatus(name string) (Status, error) {
	for status, statusName := range statusNames {
		if strings.EqualFold(statusName, strings.TrimSpace(name)) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a booking status", name))
}

// Statuses returns every valid status in declaration order.
func Statuses() []Status {
	return []Status{Pending, Accepted, Rejected}
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// Accept returns Accepted for a Pending status.
func (s Status) Accept() (Status, error) {
	if err := transitions.Validate(s, Accepted); err != nil {
		return Unknown, err
	}
	return Accepted, nil
}

// Reject returns Rejected for a Pending status.
func (s Status) Reject() (Status, error) {
	if err := transitions.Validate(s, Rejected); err != nil {
		return Unknown, err
	}
	return Rejected, nil
}

// IsActive reports whether the booking still counts against its load:
// Pending and Accepted bookings keep a Booked load from reverting to Posted.
func (s Status) IsActive() bool {
	return s == Pending || s == Accepted
}

// IsEditable reports whether rate and comment may still change.
func (s Status) IsEditable() bool {
	return s == Pending
}
