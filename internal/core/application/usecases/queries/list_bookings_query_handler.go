package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListBookingsQueryHandler struct {
	db *gorm.DB
}

func NewListBookingsQueryHandler(db *gorm.DB) ListBookingsQueryHandler {
	return ListBookingsQueryHandler{db: db}
}

// Handle returns one page of bookings ordered by request time, newest first.
func (h ListBookingsQueryHandler) Handle(ctx context.Context, query ListBookingsQuery) (Paged[BookingView], error) {
	if err := query.Validate(); err != nil {
		return Paged[BookingView]{}, err
	}

	filtered := func() *gorm.DB {
		tx := h.db.WithContext(ctx).Table("bookings")
		filter := query.Filter()
		if filter.LoadID != nil {
			tx = tx.Where("load_id = ?", filter.LoadID.Bytes())
		}
		if filter.TransporterID != "" {
			tx = tx.Where("transporter_id = ?", filter.TransporterID)
		}
		if filter.Status != nil {
			tx = tx.Where("status = ?", int(*filter.Status))
		}
		return tx
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return Paged[BookingView]{}, err
	}

	page := query.Page()
	var rows []bookingRow
	err := filtered().
		Select(bookingColumns).
		Order("requested_at DESC").
		Order("id").
		Limit(page.Size()).
		Offset(page.offset()).
		Scan(&rows).Error
	if err != nil {
		return Paged[BookingView]{}, err
	}

	views := make([]BookingView, 0, len(rows))
	for _, row := range rows {
		view, err := row.view()
		if err != nil {
			return Paged[BookingView]{}, err
		}
		views = append(views, view)
	}

	return newPaged(views, page, total), nil
}
