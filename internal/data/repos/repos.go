package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/visualenglish-backend/internal/data/repos/content"
	"github.com/yungbote/visualenglish-backend/internal/platform/logger"
)

type ContentEditRepo = content.ContentEditRepo
type FlaggedQuestionRepo = content.FlaggedQuestionRepo
type QAMappingRepo = content.QAMappingRepo

func NewContentEditRepo(db *gorm.DB, baseLog *logger.Logger) ContentEditRepo {
	return content.NewContentEditRepo(db, baseLog)
}
func NewFlaggedQuestionRepo(db *gorm.DB, baseLog *logger.Logger) FlaggedQuestionRepo {
	return content.NewFlaggedQuestionRepo(db, baseLog)
}
func NewQAMappingRepo(db *gorm.DB, baseLog *logger.Logger) QAMappingRepo {
	return content.NewQAMappingRepo(db, baseLog)
}
