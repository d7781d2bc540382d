package kernel

import (
	"fmt"
	"slices"

	"loadbook/internal/pkg/errs"
)

// StatusValue is implemented by the closed status enumerations of the domain.
type StatusValue interface {
	comparable
	fmt.Stringer
}

// TransitionTable is the single place where the legality of a status change is
// decided. Both the load and the booking state machines are declared as a table
// and validated through it, so the rules can be audited and tested in isolation.
//
// A status missing from the table, or mapped to an empty list, is terminal:
// every transition out of it fails, including a transition to itself.
//
// Example:
//
//	var loadTransitions = kernel.NewTransitionTable("load", map[Status][]Status{
//	    Posted:    {Booked, Cancelled},
//	    Booked:    {Posted, Cancelled},
//	    Cancelled: {},
//	})
//
//	if err := loadTransitions.Validate(Cancelled, Posted); err != nil {
//	    // errors.Is(err, errs.ErrInvalidTransition) == true
//	}
type TransitionTable[S StatusValue] struct {
	subject string
	allowed map[S][]S
}

// NewTransitionTable builds a table for the named subject ("load", "booking").
// The map is copied so later changes by the caller have no effect.
func NewTransitionTable[S StatusValue](subject string, allowed map[S][]S) TransitionTable[S] {
	table := TransitionTable[S]{
		subject: subject,
		allowed: make(map[S][]S, len(allowed)),
	}
	for from, targets := range allowed {
		table.allowed[from] = slices.Clone(targets)
	}
	return table
}

// Allows reports whether from may move to to.
func (t TransitionTable[S]) Allows(from S, to S) bool {
	return slices.Contains(t.allowed[from], to)
}

// Targets returns the statuses reachable from the given one.
func (t TransitionTable[S]) Targets(from S) []S {
	return slices.Clone(t.allowed[from])
}

// IsTerminal reports whether no transition leaves the given status.
func (t TransitionTable[S]) IsTerminal(from S) bool {
	return len(t.allowed[from]) == 0
}

// Validate returns an *errs.InvalidTransitionError when the table forbids the move.
func (t TransitionTable[S]) Validate(from S, to S) error {
	if !t.Allows(from, to) {
		return errs.NewInvalidTransitionError(t.subject, from, to)
	}
	return nil
}
