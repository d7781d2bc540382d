package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListLoadsQueryHandler lists loads ordered by date posted, newest first.
type ListLoadsQueryHandler struct {
	db *gorm.DB
}

func NewListLoadsQueryHandler(db *gorm.DB) ListLoadsQueryHandler {
	return ListLoadsQueryHandler{db: db}
}

func (h ListLoadsQueryHandler) Handle(ctx context.Context, query ListLoadsQuery) (Paged[LoadView], error) {
	if err := query.Validate(); err != nil {
		return Paged[LoadView]{}, err
	}

	filtered := func() *gorm.DB {
		tx := h.db.WithContext(ctx).Table("loads")
		filter := query.Filter()
		if filter.ShipperID != "" {
			tx = tx.Where("shipper_id = ?", filter.ShipperID)
		}
		if filter.TruckType != "" {
			tx = tx.Where("truck_type = ?", filter.TruckType)
		}
		if filter.Status != nil {
			tx = tx.Where("status = ?", int(*filter.Status))
		}
		return tx
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return Paged[LoadView]{}, err
	}

	page := query.Page()
	var rows []loadRow
	err := filtered().
		Select(loadColumns).
		Order("date_posted DESC").
		Order("id").
		Limit(page.Size()).
		Offset(page.offset()).
		Scan(&rows).Error
	if err != nil {
		return Paged[LoadView]{}, err
	}

	views := make([]LoadView, 0, len(rows))
	for _, row := range rows {
		view, err := row.view()
		if err != nil {
			return Paged[LoadView]{}, err
		}
		views = append(views, view)
	}

	return newPaged(views, page, total), nil
}
