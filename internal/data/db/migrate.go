package db

import (
	"gorm.io/gorm"

	types "github.com/yungbote/visualenglish-backend/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&types.ContentEdit{},
		&types.FlaggedQuestion{},
		&types.QAMappingEntry{},
	)
}
