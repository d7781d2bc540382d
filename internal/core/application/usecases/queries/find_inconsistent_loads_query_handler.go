package queries

import (
	"context"

	"loadbook/internal/core/domain/model/booking"
	"loadbook/internal/core/domain/model/kernel"
	"loadbook/internal/core/domain/model/load"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FindInconsistentLoadsQueryHandler audits the load and booking tables. It
// only reads.
type FindInconsistentLoadsQueryHandler struct {
	db *gorm.DB
}

func NewFindInconsistentLoadsQueryHandler(db *gorm.DB) FindInconsistentLoadsQueryHandler {
	return FindInconsistentLoadsQueryHandler{db: db}
}

func (h FindInconsistentLoadsQueryHandler) Handle(
	ctx context.Context,
	query FindInconsistentLoadsQuery,
) ([]InconsistentLoad, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			l.id,
			l.status,
			COUNT(b.id) FILTER (WHERE b.status = @pending)  AS pending,
			COUNT(b.id) FILTER (WHERE b.status = @accepted) AS accepted
		FROM loads l
		LEFT JOIN bookings b ON b.load_id = l.id
		GROUP BY l.id, l.status
		HAVING (l.status = @booked AND COUNT(b.id) FILTER (WHERE b.status = @accepted) <> 1)
			OR COUNT(b.id) FILTER (WHERE b.status = @accepted) > 1
		ORDER BY l.id
	`, map[string]any{
		"pending":  int(booking.Pending),
		"accepted": int(booking.Accepted),
		"booked":   int(load.Booked),
	}).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	findings := make([]InconsistentLoad, 0)
	for rows.Next() {
		var (
			id     uuid.UUID
			status int
			found  InconsistentLoad
		)
		if err = rows.Scan(&id, &status, &found.Pending, &found.Accepted); err != nil {
			return nil, err
		}

		if found.LoadID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		found.Status = load.Status(status)
		findings = append(findings, found)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return findings, nil
}
