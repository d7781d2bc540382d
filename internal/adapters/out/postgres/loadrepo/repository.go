package loadrepo

import (
	"context"
	"errors"
	"time"

	"loadbook/internal/adapters/out/postgres/dberr"
	"loadbook/internal/core/domain/model/kernel"
	"loadbook/internal/core/domain/model/load"
	"loadbook/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormLoadRepository implements ports.LoadRepository using GORM.
type GormLoadRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormLoadRepository(db *gorm.DB, tracker aggregateTracker) *GormLoadRepository {
	return &GormLoadRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the load and records the timestamps gorm stamped on the row.
func (r *GormLoadRepository) Add(ctx context.Context, aggregate *load.Load) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dberr.Translate(err)
	}

	aggregate.RecordTimestamps(dto.DatePosted, dto.UpdatedAt)
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes every mutable column, including zero values.
func (r *GormLoadRepository) Update(ctx context.Context, aggregate *load.Load) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&LoadDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "date_posted").
		Updates(&dto)
	if result.Error != nil {
		return dberr.Translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("load", aggregate.ID().String())
	}

	if err := r.refreshTimestamps(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormLoadRepository) Get(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate reads the load with SELECT ... FOR UPDATE.
func (r *GormLoadRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormLoadRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&LoadDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return dberr.Translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("load", id.String())
	}

	return nil
}

func (r *GormLoadRepository) get(db *gorm.DB, id kernel.UUID) (*load.Load, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LoadDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("load", id.String())
		}
		return nil, dberr.Translate(err)
	}

	return ToDomain(dto)
}

func (r *GormLoadRepository) refreshTimestamps(ctx context.Context, aggregate *load.Load) error {
	var stamps struct {
		DatePosted time.Time
		UpdatedAt  time.Time
	}

	err := r.db.WithContext(ctx).
		Model(&LoadDTO{}).
		Select("date_posted", "updated_at").
		Where("id = ?", aggregate.ID().Bytes()).
		Take(&stamps).Error
	if err != nil {
		return dberr.Translate(err)
	}

	aggregate.RecordTimestamps(stamps.DatePosted, stamps.UpdatedAt)
	return nil
}
