package ports

import (
	"context"
)

// UnitOfWorkFactory creates a new UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents one business transaction.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction. After Commit it only
	// returns an error, so it is safe to defer.
	Rollback(ctx context.Context) error

	// LoadRepository returns a repository bound to the current transaction.
	LoadRepository() LoadRepository

	// BookingRepository returns a repository bound to the current transaction.
	BookingRepository() BookingRepository
}
