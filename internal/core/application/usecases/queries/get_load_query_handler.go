package queries

import (
	"context"

	"loadbook/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetLoadQueryHandler struct {
	db *gorm.DB
}

func NewGetLoadQueryHandler(db *gorm.DB) GetLoadQueryHandler {
	return GetLoadQueryHandler{db: db}
}

// Handle returns the load or errs.ErrObjectNotFound.
func (h GetLoadQueryHandler) Handle(ctx context.Context, query GetLoadQuery) (LoadView, error) {
	if err := query.Validate(); err != nil {
		return LoadView{}, err
	}

	var row loadRow
	result := h.db.WithContext(ctx).
		Raw(`SELECT `+loadColumns+` FROM loads WHERE id = ?`, query.LoadID().Bytes()).
		Scan(&row)
	if result.Error != nil {
		return LoadView{}, result.Error
	}

	if result.RowsAffected == 0 {
		return LoadView{}, errs.NewObjectNotFoundError("load", query.LoadID().String())
	}

	return row.view()
}
