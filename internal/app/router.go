package app

import (
	httpserver "github.com/yungbote/visualenglish-backend/internal/http"
	"github.com/yungbote/visualenglish-backend/internal/platform/logger"
)

func wireServer(log *logger.Logger, cfg Config, handlers Handlers, middleware Middleware) *httpserver.Server {
	return httpserver.NewServer(httpserver.RouterConfig{
		Log:            log,
		ServiceName:    cfg.Otel.ServiceName,
		TracingEnabled: cfg.Otel.Enabled,
		CORSOrigins:    cfg.CORSOrigins,

		AuthMiddleware: middleware.Auth,

		HealthHandler:          handlers.Health,
		QAHandler:              handlers.QA,
		ContentEditHandler:     handlers.ContentEdit,
		FlaggedQuestionHandler: handlers.FlaggedQuestion,
	})
}
