// Package ports defines the storage contracts of the lifecycle engine.
// Adapters implement them; command handlers depend on them only.
package ports

import (
	"context"

	"loadbook/internal/core/domain/model/kernel"
	"loadbook/internal/core/domain/model/load"
)

// LoadRepository defines the persistence contract for load aggregates.
type LoadRepository interface {
	// Add persists a new load. Storage stamps the creation and update times
	// and reports them back through load.RecordTimestamps.
	Add(ctx context.Context, aggregate *load.Load) error

	// Update persists changes to an existing load.
	Update(ctx context.Context, aggregate *load.Load) error

	// Get retrieves a load by identifier without locking it.
	// Returns errs.ObjectNotFoundError when no load matches.
	Get(ctx context.Context, id kernel.UUID) (*load.Load, error)

	// GetForUpdate retrieves a load and locks its row until the surrounding
	// transaction ends. Every booking mutation takes this lock first, which
	// serialises concurrent writers on the same load's booking set.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*load.Load, error)

	// Delete removes a load. Its bookings are removed by storage in the same
	// statement (ON DELETE CASCADE).
	Delete(ctx context.Context, id kernel.UUID) error
}
