package postgres

import (
	"errors"
	"fmt"

	"loadbook/internal/adapters/out/postgres/dberr"

	"gorm.io/gorm"
)

const translateCallback = "loadbook:translate_errors"

// RegisterErrorTranslation classifies driver errors of read statements so
// that query handlers working on a plain *gorm.DB report timeouts the same way
// repositories do.
func RegisterErrorTranslation(db *gorm.DB) error {
	translate := func(tx *gorm.DB) {
		if tx.Error != nil {
			tx.Error = dberr.Translate(tx.Error)
		}
	}

	callbacks := db.Callback()
	if err := errors.Join(
		callbacks.Query().After("gorm:query").Register(translateCallback, translate),
		callbacks.Row().After("gorm:row").Register(translateCallback, translate),
		callbacks.Raw().After("gorm:raw").Register(translateCallback, translate),
	); err != nil {
		return fmt.Errorf("register error translation: %w", err)
	}
	return nil
}
