package app

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/visualenglish-backend/internal/modules/qa"
	"github.com/yungbote/visualenglish-backend/internal/modules/qa/cascade"
	"github.com/yungbote/visualenglish-backend/internal/platform/logger"
	"github.com/yungbote/visualenglish-backend/internal/services"
)

type Services struct {
	Engines cascade.Engines

	Auth            services.AuthService
	ContentEdit     services.ContentEditService
	FlaggedQuestion services.FlaggedQuestionService
	QAMapping       services.QAMappingService
	QAResolve       services.QAResolveService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, repos Repos, cache services.EditCache) (Services, error) {
	log.Info("Wiring services...")
	exceptions, err := qa.LoadExceptionsFile(cfg.QAExceptionsFile)
	if err != nil {
		return Services{}, fmt.Errorf("load QA exceptions: %w", err)
	}
	engines := cascade.NewEngines(log, exceptions)

	contentEdits := services.NewContentEditService(db, log, repos.ContentEdit, cache)
	mappings := services.NewQAMappingService(db, log, repos.QAMapping)

	return Services{
		Engines:         engines,
		Auth:            services.NewAuthService(log, cfg.JWTSecretKey),
		ContentEdit:     contentEdits,
		FlaggedQuestion: services.NewFlaggedQuestionService(db, log, repos.FlaggedQuestion),
		QAMapping:       mappings,
		QAResolve:       services.NewQAResolveService(log, engines, mappings, contentEdits),
	}, nil
}
