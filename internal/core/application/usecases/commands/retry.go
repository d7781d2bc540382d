package commands

import (
	"context"
	"errors"
	"log/slog"

	"loadbook/internal/pkg/errs"
)

// conflictAttempts bounds how often a read-modify-write sequence runs when it
// keeps losing to concurrent writers: the first attempt plus one retry.
const conflictAttempts = 2

// retryOnConflict runs fn again, in a fresh transaction, when it fails with
// errs.ErrConcurrentModification. Any other outcome, timeouts included, is
// returned as is.
func retryOnConflict(ctx context.Context, logger *slog.Logger, operation string, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 1; attempt <= conflictAttempts; attempt++ {
		if err = fn(ctx); !errors.Is(err, errs.ErrConcurrentModification) {
			return err
		}

		logger.WarnContext(ctx, "concurrent modification",
			"operation", operation,
			"attempt", attempt,
			"error", err,
		)
	}
	return err
}
