// Package dberr maps driver failures onto the error kinds of the lifecycle engine.
package dberr

import (
	"context"
	"errors"
	"fmt"

	"loadbook/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

// Index names shared by the gorm schema tags and the translation below.
const (
	LoadTransporterIndex = "idx_bookings_load_transporter"
	SingleAcceptedIndex  = "idx_bookings_single_accepted"
)

// PostgreSQL error codes handled by Translate.
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03"
	codeQueryCanceled        = "57014"
	codeUniqueViolation      = "23505"
)

// Translate classifies err:
//   - deadline exceeded, driver timeouts and statement_timeout cancellations
//     become errs.ErrStorageTimeout
//   - serialization failures, deadlocks, lock timeouts and a second accepted
//     booking become errs.ErrConcurrentModification
//   - a second booking of the same transporter becomes errs.ErrDuplicateBooking
//
// The driver error stays in the chain. Anything else is returned unchanged.
func Translate(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, errs.ErrStorageTimeout) || errors.Is(err, errs.ErrConcurrentModification) {
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return fmt.Errorf("%w: %w", errs.ErrStorageTimeout, err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case codeQueryCanceled:
		return fmt.Errorf("%w: %w", errs.ErrStorageTimeout, err)
	case codeSerializationFailure, codeDeadlockDetected, codeLockNotAvailable:
		return fmt.Errorf("%w: %w", errs.ErrConcurrentModification, err)
	case codeUniqueViolation:
		switch pgErr.ConstraintName {
		case SingleAcceptedIndex:
			return fmt.Errorf("%w: %w", errs.ErrConcurrentModification, err)
		case LoadTransporterIndex:
			return errs.NewRuleViolationError(errs.ErrDuplicateBooking, "")
		}
	}

	return err
}
