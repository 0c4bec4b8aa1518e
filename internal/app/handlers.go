package app

import (
	httpH "github.com/yungbote/visualenglish-backend/internal/http/handlers"
	"github.com/yungbote/visualenglish-backend/internal/platform/logger"
)

type Handlers struct {
	Health          *httpH.HealthHandler
	QA              *httpH.QAHandler
	ContentEdit     *httpH.ContentEditHandler
	FlaggedQuestion *httpH.FlaggedQuestionHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:          httpH.NewHealthHandler(services.ContentEdit.DBAvailable),
		QA:              httpH.NewQAHandler(log, services.QAMapping, services.QAResolve),
		ContentEdit:     httpH.NewContentEditHandler(log, services.ContentEdit),
		FlaggedQuestion: httpH.NewFlaggedQuestionHandler(log, services.FlaggedQuestion),
	}
}
