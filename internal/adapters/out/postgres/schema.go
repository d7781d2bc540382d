package postgres

import (
	"fmt"

	"loadbook/internal/adapters/out/postgres/bookingrepo"
	"loadbook/internal/adapters/out/postgres/loadrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the loads and bookings tables, their indexes and
// the cascading foreign key between them.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&loadrepo.LoadDTO{}, &bookingrepo.BookingDTO{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
