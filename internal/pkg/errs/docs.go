// Package errs provides the error vocabulary of the load booking service.
//
// Two families live here:
//   - value errors raised while constructing domain objects
//     (ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError) and
//     lookup failures (ObjectNotFoundError);
//   - lifecycle errors raised by the load and booking state machines
//     (InvalidTransitionError, RuleViolationError and the sentinel rule kinds).
//
// Every struct type unwraps to a package level sentinel, so callers classify
// errors with errors.Is and never by message. The HTTP adapter relies on that
// to map each kind to a status code.
package errs
