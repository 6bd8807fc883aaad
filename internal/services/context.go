package services

import (
	"context"

	"gorm.io/gorm"
)

// withContext binds ctx to db so a cancelled request aborts its queries.
func withContext(ctx context.Context, db *gorm.DB) *gorm.DB {
	if db == nil || ctx == nil {
		return db
	}
	return db.WithContext(ctx)
}
