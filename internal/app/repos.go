package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/visualenglish-backend/internal/data/repos"
	"github.com/yungbote/visualenglish-backend/internal/platform/logger"
)

type Repos struct {
	ContentEdit     repos.ContentEditRepo
	FlaggedQuestion repos.FlaggedQuestionRepo
	QAMapping       repos.QAMappingRepo
}

// wireRepos leaves every repo nil without a database.
func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	if db == nil {
		log.Warn("No database; repos disabled")
		return Repos{}
	}
	log.Info("Wiring repos...")
	return Repos{
		ContentEdit:     repos.NewContentEditRepo(db, log),
		FlaggedQuestion: repos.NewFlaggedQuestionRepo(db, log),
		QAMapping:       repos.NewQAMappingRepo(db, log),
	}
}
