// Package commands contains the operations that change loads and bookings.
// Every handler follows the same pattern: validate the command, open a unit
// of work, lock what it is about to change, apply the domain rules, persist
// and commit. A handler that loses a race against a concurrent writer is
// retried once from scratch.
package commands

import (
	"context"

	"loadbook/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// LoadRepoFactory provides access to the load repository within a transaction.
	LoadRepoFactory interface {
		LoadRepository() ports.LoadRepository
	}

	// BookingRepoFactory provides access to the booking repository within a transaction.
	BookingRepoFactory interface {
		BookingRepository() ports.BookingRepository
	}

	// LoadUoW manages transactions for load-only operations.
	LoadUoW interface {
		TxManager
		LoadRepoFactory
	}

	// LoadUoWFactory creates new load unit of work instances.
	LoadUoWFactory interface {
		Create() LoadUoW
	}

	// UoW manages transactions spanning a load and its bookings.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   l, err := uow.LoadRepository().GetForUpdate(ctx, loadID)
	//   bookings := uow.BookingRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		LoadRepoFactory
		BookingRepoFactory
	}

	// UoWFactory creates new unit of work instances for booking operations.
	UoWFactory interface {
		Create() UoW
	}
)
