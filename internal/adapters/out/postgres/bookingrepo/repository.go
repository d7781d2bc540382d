package bookingrepo

import (
	"context"
	"errors"
	"time"

	"loadbook/internal/adapters/out/postgres/dberr"
	"loadbook/internal/core/domain/model/booking"
	"loadbook/internal/core/domain/model/kernel"
	"loadbook/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBookingRepository implements ports.BookingRepository using GORM.
type GormBookingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormBookingRepository(db *gorm.DB, tracker aggregateTracker) *GormBookingRepository {
	return &GormBookingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the booking. The (load, transporter) unique index turns a
// concurrent duplicate into errs.ErrDuplicateBooking.
func (r *GormBookingRepository) Add(ctx context.Context, aggregate *booking.Booking) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return dberr.Translate(err)
	}

	aggregate.RecordTimestamps(dto.RequestedAt, dto.UpdatedAt)
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes rate, comment and status. requested_at is never rewritten.
func (r *GormBookingRepository) Update(ctx context.Context, aggregate *booking.Booking) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&BookingDTO{}).
		Where("id = ?", dto.ID).
		Select("proposed_rate", "comment", "status", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return dberr.Translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("booking", aggregate.ID().String())
	}

	if err := r.refreshTimestamps(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormBookingRepository) Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BookingDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("booking", id.String())
		}
		return nil, dberr.Translate(err)
	}

	return ToDomain(dto)
}

func (r *GormBookingRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&BookingDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return dberr.Translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("booking", id.String())
	}

	return nil
}

func (r *GormBookingRepository) ExistsForTransporter(
	ctx context.Context,
	loadID kernel.UUID,
	transporterID string,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&BookingDTO{}).
		Where("load_id = ? AND transporter_id = ?", loadID.Bytes(), transporterID).
		Count(&count).Error
	if err != nil {
		return false, dberr.Translate(err)
	}

	return count > 0, nil
}

// ListByLoad returns the bookings of a load, newest request first.
func (r *GormBookingRepository) ListByLoad(
	ctx context.Context,
	loadID kernel.UUID,
	statuses ...booking.Status,
) ([]*booking.Booking, error) {
	query := r.db.WithContext(ctx).Where("load_id = ?", loadID.Bytes())
	if len(statuses) > 0 {
		values := make([]int, 0, len(statuses))
		for _, status := range statuses {
			values = append(values, int(status))
		}
		query = query.Where("status IN ?", values)
	}

	var dtos []BookingDTO
	if err := query.Order("requested_at DESC").Find(&dtos).Error; err != nil {
		return nil, dberr.Translate(err)
	}

	bookings := make([]*booking.Booking, 0, len(dtos))
	for _, dto := range dtos {
		b, err := ToDomain(dto)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}

	return bookings, nil
}

func (r *GormBookingRepository) CountByStatus(ctx context.Context, loadID kernel.UUID) (map[booking.Status]int64, error) {
	var rows []struct {
		Status int
		Total  int64
	}

	err := r.db.WithContext(ctx).
		Model(&BookingDTO{}).
		Select("status, COUNT(*) AS total").
		Where("load_id = ?", loadID.Bytes()).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, dberr.Translate(err)
	}

	counts := make(map[booking.Status]int64, len(rows))
	for _, row := range rows {
		counts[booking.Status(row.Status)] = row.Total
	}

	return counts, nil
}

// Accept is a single conditional UPDATE: the row must still be Pending and no
// other booking of the load may be Accepted. When the condition does not hold
// nothing is written and errs.ErrConcurrentModification is returned.
func (r *GormBookingRepository) Accept(ctx context.Context, aggregate *booking.Booking) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if aggregate.Status() != booking.Accepted {
		return errs.NewValueIsInvalidError("booking must be accepted before it is stored as accepted")
	}

	id := aggregate.ID().Bytes()
	loadID := aggregate.LoadID().Bytes()

	acceptedSibling := r.db.
		Table("bookings AS sibling").
		Select("1").
		Where("sibling.load_id = ? AND sibling.status = ? AND sibling.id <> ?", loadID, int(booking.Accepted), id)

	result := r.db.WithContext(ctx).
		Model(&BookingDTO{}).
		Where("id = ? AND load_id = ? AND status = ?", id, loadID, int(booking.Pending)).
		Where("NOT EXISTS (?)", acceptedSibling).
		Update("status", int(booking.Accepted))
	if result.Error != nil {
		return dberr.Translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.ErrConcurrentModification
	}

	if err := r.refreshTimestamps(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormBookingRepository) RejectPending(ctx context.Context, loadID kernel.UUID, except kernel.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&BookingDTO{}).
		Where("load_id = ? AND status = ? AND id <> ?", loadID.Bytes(), int(booking.Pending), except.Bytes()).
		Update("status", int(booking.Rejected))
	if result.Error != nil {
		return 0, dberr.Translate(result.Error)
	}

	return result.RowsAffected, nil
}

func (r *GormBookingRepository) refreshTimestamps(ctx context.Context, aggregate *booking.Booking) error {
	var stamps struct {
		RequestedAt time.Time
		UpdatedAt   time.Time
	}

	err := r.db.WithContext(ctx).
		Model(&BookingDTO{}).
		Select("requested_at", "updated_at").
		Where("id = ?", aggregate.ID().Bytes()).
		Take(&stamps).Error
	if err != nil {
		return dberr.Translate(err)
	}

	aggregate.RecordTimestamps(stamps.RequestedAt, stamps.UpdatedAt)
	return nil
}
