package errs

import (
	"errors"
	"fmt"
)

// Business rule kinds. Callers classify with errors.Is; none of them is retried.
var (
	ErrInvalidTransition      = errors.New("invalid status transition")
	ErrInvalidTemporalRange   = errors.New("invalid temporal range")
	ErrIllegalMutation        = errors.New("illegal mutation")
	ErrLoadCancelled          = errors.New("load is cancelled")
	ErrAlreadyBooked          = errors.New("load is already booked")
	ErrDuplicateBooking       = errors.New("booking already exists for this load and transporter")
	ErrCannotDeleteAccepted   = errors.New("cannot delete an accepted booking")
	ErrConcurrentModification = errors.New("concurrent modification")
	ErrStorageTimeout         = errors.New("storage timeout")
)

// InvalidTransitionError reports a status change that the transition table forbids.
type InvalidTransitionError struct {
	Subject string
	From    fmt.Stringer
	To      fmt.Stringer
}

func NewInvalidTransitionError(subject string, from fmt.Stringer, to fmt.Stringer) *InvalidTransitionError {
	return &InvalidTransitionError{
		Subject: subject,
		From:    from,
		To:      to,
	}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s cannot move from %s to %s", ErrInvalidTransition, e.Subject, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// RuleViolationError carries a human readable reason for one of the rule kinds above.
type RuleViolationError struct {
	Rule   error
	Reason string
}

func NewRuleViolationError(rule error, reason string) *RuleViolationError {
	return &RuleViolationError{
		Rule:   rule,
		Reason: reason,
	}
}

func (e *RuleViolationError) Error() string {
	if e.Reason == "" {
		return e.Rule.Error()
	}
	return fmt.Sprintf("%s: %s", e.Rule, e.Reason)
}

func (e *RuleViolationError) Unwrap() error {
	return e.Rule
}

// IsBusinessRule reports whether err is a caller error of the lifecycle engine.
func IsBusinessRule(err error) bool {
	for _, rule := range []error{
		ErrInvalidTransition,
		ErrInvalidTemporalRange,
		ErrIllegalMutation,
		ErrLoadCancelled,
		ErrAlreadyBooked,
		ErrDuplicateBooking,
		ErrCannotDeleteAccepted,
	} {
		if errors.Is(err, rule) {
			return true
		}
	}
	return false
}
