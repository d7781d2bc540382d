package queries

import (
	"context"

	"loadbook/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetBookingQueryHandler struct {
	db *gorm.DB
}

func NewGetBookingQueryHandler(db *gorm.DB) GetBookingQueryHandler {
	return GetBookingQueryHandler{db: db}
}

func (h GetBookingQueryHandler) Handle(ctx context.Context, query GetBookingQuery) (BookingView, error) {
	if err := query.Validate(); err != nil {
		return BookingView{}, err
	}

	var row bookingRow
	result := h.db.WithContext(ctx).
		Raw(`SELECT `+bookingColumns+` FROM bookings WHERE id = ?`, query.BookingID().Bytes()).
		Scan(&row)
	if result.Error != nil {
		return BookingView{}, result.Error
	}

	if result.RowsAffected == 0 {
		return BookingView{}, errs.NewObjectNotFoundError("booking", query.BookingID().String())
	}

	return row.view()
}
