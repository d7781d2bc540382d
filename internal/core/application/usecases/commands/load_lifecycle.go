package commands

import (
	"context"
	"log/slog"

	"loadbook/internal/core/domain/model/booking"
	"loadbook/internal/core/domain/model/kernel"
	"loadbook/internal/core/domain/model/load"
	"loadbook/internal/core/domain/services"
	"loadbook/internal/core/ports"
)

// loadLifecycle is the only path through which handlers change a load's
// status. Load handlers use it directly; booking handlers use it for the
// Booked and Posted side effects of acceptance, rejection and deletion.
type loadLifecycle struct {
	loads  ports.LoadRepository
	logger *slog.Logger
}

func newLoadLifecycle(loads ports.LoadRepository, logger *slog.Logger) loadLifecycle {
	return loadLifecycle{
		loads:  loads,
		logger: logger,
	}
}

// lock reads the load with a row lock held until the transaction ends.
func (lc loadLifecycle) lock(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	return lc.loads.GetForUpdate(ctx, id)
}

// transition validates the change against the load transition table and
// persists it.
func (lc loadLifecycle) transition(ctx context.Context, l *load.Load, target load.Status) error {
	from := l.Status()
	if err := l.TransitionTo(target); err != nil {
		return err
	}

	if err := lc.loads.Update(ctx, l); err != nil {
		return err
	}

	lc.logger.DebugContext(ctx, "load status changed",
		"load_id", l.ID().String(),
		"from", from.String(),
		"to", target.String(),
	)
	return nil
}

// revertIfIdle moves a Booked load back to Posted when none of its bookings
// is Pending or Accepted any more. It reports whether it did.
func (lc loadLifecycle) revertIfIdle(ctx context.Context, l *load.Load, bookings ports.BookingRepository) (bool, error) {
	counts, err := bookings.CountByStatus(ctx, l.ID())
	if err != nil {
		return false, err
	}

	active := services.ActiveBookings{
		Pending:  counts[booking.Pending],
		Accepted: counts[booking.Accepted],
	}
	if !services.NewReversionPolicy().ShouldRevert(l, active) {
		return false, nil
	}

	if err = lc.transition(ctx, l, load.Posted); err != nil {
		return false, err
	}
	return true, nil
}
