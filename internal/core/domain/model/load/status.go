package load

import (
	"fmt"
	"strings"

	"loadbook/internal/core/domain/model/kernel"
	"loadbook/internal/pkg/errs"
)

// Status represents the lifecycle state of a load.
//
// State transitions:
//
//	Posted <────> Booked
//	   │            │
//	   └─────┬──────┘
//	         ▼
//	     Cancelled
//
// Booked returns to Posted when the load has no pending or accepted booking left.
// Cancelled is terminal: no transition leaves it, not even to itself.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Posted is the initial status; the load is open for bookings and edits.
	Posted

	// Booked is reached only through the acceptance of one of the load's bookings.
	Booked

	// Cancelled is the terminal state of a load.
	Cancelled
)

var statusNames = map[Status]string{
	Posted:    "POSTED",
	Booked:    "BOOKED",
	Cancelled: "CANCELLED",
}

var transitions = kernel.NewTransitionTable("load", map[Status][]Status{
	Posted:    {Booked, Cancelled},
	Booked:    {Posted, Cancelled},
	Cancelled: {},
})

// ParseStatus converts the wire name ("POSTED", "booked", ...) into a Status.
func ParseStatus(name string) (Status, error) {
	for status, statusName := range statusNames {
		if strings.EqualFold(statusName, strings.TrimSpace(name)) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a load status", name))
}

// Statuses returns every valid status in declaration order.
func Statuses() []Status {
	return []Status{Posted, Booked, Cancelled}
}

// Validate checks that the status is one of Posted, Booked or Cancelled.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, "UNKNOWN" for invalid values.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// TransitionTo returns target when the transition table allows moving to it.
//
// Returns:
//   - (target, nil) on a legal transition
//   - (Unknown, *errs.InvalidTransitionError) otherwise
//
// Example:
//
//	next, err := load.Posted.TransitionTo(load.Booked) // Booked, nil
//	_, err = load.Cancelled.TransitionTo(load.Posted)  // errs.ErrInvalidTransition
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := transitions.Validate(s, target); err != nil {
		return Unknown, err
	}
	return target, nil
}

// IsEditable reports whether load details may still be changed.
func (s Status) IsEditable() bool {
	return s == Posted
}

// IsDeletable reports whether a load in this status may be deleted.
func (s Status) IsDeletable() bool {
	return s == Posted || s == Cancelled
}

// IsTerminal reports whether no transition leaves the status.
func (s Status) IsTerminal() bool {
	return transitions.IsTerminal(s)
}
