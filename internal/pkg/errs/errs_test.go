package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"loadbook/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("loadId", "123")

		assert.Equal(t, "loadId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("loadId", "123", cause)

		assert.Equal(t, "loadId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: loadId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("bookingId", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("transporterId")

		assert.Equal(t, "transporterId", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: transporterId", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("transporterId", cause)

		assert.Equal(t, "transporterId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: transporterId (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("truckCount", 150, 1, 120)

		assert.Equal(t, "truckCount", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 120, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 150 is truckCount, min value is 1, max value is 120", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("weight", -5, 0, 100, cause)

		assert.Equal(t, "weight", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 100, err.Max)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is weight, min value is 0, max value is 100 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("shipperId")

		assert.Equal(t, "shipperId", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: shipperId", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("shipperId", cause)

		assert.Equal(t, "shipperId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: shipperId (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		objectNotFoundErr := errs.NewObjectNotFoundError("loadId", "123")
		require.ErrorIs(t, objectNotFoundErr, errs.ErrObjectNotFound)

		valueInvalidErr := errs.NewValueIsInvalidError("transporterId")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueOutOfRangeErr := errs.NewValueIsOutOfRangeError("truckCount", 150, 1, 120)
		require.ErrorIs(t, valueOutOfRangeErr, errs.ErrValueIsOutOfRange)

		valueRequiredErr := errs.NewValueIsRequiredError("shipperId")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)
	})
}

func TestInvalidTransitionError(t *testing.T) {
	err := errs.NewInvalidTransitionError("load", stringer("CANCELLED"), stringer("POSTED"))

	assert.Equal(t, "load", err.Subject)
	assert.Equal(t, "invalid status transition: load cannot move from CANCELLED to POSTED", err.Error())
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.True(t, errs.IsBusinessRule(err))
}

func TestRuleViolationError(t *testing.T) {
	t.Run("with reason", func(t *testing.T) {
		err := errs.NewRuleViolationError(errs.ErrIllegalMutation, "cannot update a booked load")

		assert.Equal(t, "illegal mutation: cannot update a booked load", err.Error())
		require.ErrorIs(t, err, errs.ErrIllegalMutation)
		assert.NotErrorIs(t, err, errs.ErrLoadCancelled)
	})

	t.Run("without reason", func(t *testing.T) {
		err := errs.NewRuleViolationError(errs.ErrCannotDeleteAccepted, "")

		assert.Equal(t, "cannot delete an accepted booking", err.Error())
	})

	t.Run("wrapped rule violations stay classifiable", func(t *testing.T) {
		err := fmt.Errorf("accept booking: %w", errs.NewRuleViolationError(errs.ErrAlreadyBooked, "load L1"))

		require.ErrorIs(t, err, errs.ErrAlreadyBooked)
		assert.True(t, errs.IsBusinessRule(err))
	})
}

func TestIsBusinessRule(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{"temporal range", errs.ErrInvalidTemporalRange, true},
		{"duplicate booking", errs.ErrDuplicateBooking, true},
		{"load cancelled", errs.ErrLoadCancelled, true},
		{"not found", errs.NewObjectNotFoundError("loadId", "1"), false},
		{"conflict", errs.ErrConcurrentModification, false},
		{"timeout", errs.ErrStorageTimeout, false},
		{"plain error", errors.New("boom"), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, errs.IsBusinessRule(tc.err))
		})
	}
}

type stringer string

func (s stringer) String() string {
	return string(s)
}
