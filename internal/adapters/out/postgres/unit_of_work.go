// Package postgres provides the GORM implementation of the Unit of Work pattern
// and the schema of the lifecycle engine.
//
// Every command runs inside one unit of work:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	l, err := uow.LoadRepository().GetForUpdate(ctx, loadID)
//	// ...
//	return uow.Commit(ctx)
//
// Concurrency considerations:
//   - Each UnitOfWork instance owns one transaction; goroutines never share one
//   - Booking writers serialise on the parent load row (SELECT ... FOR UPDATE)
//   - Commit failures caused by serialization or deadlocks are reported as
//     errs.ErrConcurrentModification so callers can retry once
package postgres

import (
	"context"
	"database/sql"

	"loadbook/internal/adapters/out/postgres/bookingrepo"
	"loadbook/internal/adapters/out/postgres/dberr"
	"loadbook/internal/adapters/out/postgres/loadrepo"
	"loadbook/internal/core/domain/model/kernel"
	"loadbook/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances on one gorm connection pool.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	isolation sql.IsolationLevel
}

// NewGormUnitOfWorkFactory creates a factory whose transactions run at READ
// COMMITTED. Row locks and the conditional acceptance update provide the
// serialisation the lifecycle rules need.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{
		db:        db,
		isolation: sql.LevelReadCommitted,
	}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		isolation:         f.isolation,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and records the
// aggregates written through its repositories.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	isolation         sql.IsolationLevel
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling it twice does not nest transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin(&sql.TxOptions{Isolation: uow.isolation})
	if tx.Error != nil {
		return dberr.Translate(tx.Error)
	}

	uow.tx = tx
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

// Commit finalises the transaction. Returns gorm.ErrInvalidTransaction when
// no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return dberr.Translate(err)
}

// Rollback discards the transaction. After Commit it returns
// gorm.ErrInvalidTransaction, which makes `defer uow.Rollback(ctx)` safe.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// LoadRepository returns a repository bound to the active transaction, or to
// the pool when none is active.
func (uow *GormUnitOfWork) LoadRepository() ports.LoadRepository {
	return loadrepo.NewGormLoadRepository(uow.conn(), uow)
}

// BookingRepository returns a repository bound to the active transaction, or
// to the pool when none is active.
func (uow *GormUnitOfWork) BookingRepository() ports.BookingRepository {
	return bookingrepo.NewGormBookingRepository(uow.conn(), uow)
}

// TrackAggregate is called by repositories after every successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedIDs returns the identifiers written in the current transaction, in write order.
func (uow *GormUnitOfWork) TrackedIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(uow.trackedAggregates))
	for _, tracked := range uow.trackedAggregates {
		ids = append(ids, tracked.ID)
	}
	return ids
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
