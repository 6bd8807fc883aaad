package database

import (
	"fmt"

	"gorm.io/gorm"

	"jobtracker_backend/internal/models"
)

// AutoMigrate creates or updates the users and applications tables, including the unique
// indexes that back the email and (user_id, link) invariants.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Application{},
	); err != nil {
		return fmt.Errorf("auto-migrate failed: %w", err)
	}
	return nil
}
