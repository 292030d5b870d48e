package postgres

import (
	"context"

	"envybase/internal/errors"
	"envybase/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the users table and its unique email index.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&model.UserModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate users table")
	}

	return nil
}
