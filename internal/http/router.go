package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/visualenglish-backend/internal/http/handlers"
	httpMW "github.com/yungbote/visualenglish-backend/internal/http/middleware"
	"github.com/yungbote/visualenglish-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	ServiceName    string
	TracingEnabled bool
	CORSOrigins    []string

	AuthMiddleware *httpMW.AuthMiddleware

	HealthHandler          *httpH.HealthHandler
	QAHandler              *httpH.QAHandler
	ContentEditHandler     *httpH.ContentEditHandler
	FlaggedQuestionHandler *httpH.FlaggedQuestionHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.TracingEnabled {
		name := cfg.ServiceName
		if name == "" {
			name = "visualenglish-backend"
		}
		r.Use(otelgin.Middleware(name))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.CORS(cfg.CORSOrigins...))
	r.Use(httpMW.RequestLogger(cfg.Log))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	if cfg.AuthMiddleware != nil {
		api.Use(cfg.AuthMiddleware.OptionalAuth())
	}
	direct := api.Group("/direct")

	admin := direct.Group("/")
	if cfg.AuthMiddleware != nil {
		admin.Use(cfg.AuthMiddleware.RequireAdmin())
	}

	// Mapping + server-side resolution
	if cfg.QAHandler != nil {
		direct.GET("/:bookId/:unitId/excel-qa", cfg.QAHandler.ListMapping)
		direct.GET("/:bookId/:unitId/qa", cfg.QAHandler.Resolve)
		admin.POST("/:bookId/:unitId/excel-qa/import", cfg.QAHandler.ImportMapping)
	}

	// Content edits
	if cfg.ContentEditHandler != nil {
		direct.GET("/content-edits/:bookId/:unitId", cfg.ContentEditHandler.List)
		direct.POST("/content-edits", cfg.ContentEditHandler.Save)
		direct.DELETE("/content-edits/:bookId/:unitId/:materialId", cfg.ContentEditHandler.Delete)
	}

	// Flags
	if cfg.FlaggedQuestionHandler != nil {
		api.POST("/flagged-questions", cfg.FlaggedQuestionHandler.Create)
		admin.GET("/flagged-questions", cfg.FlaggedQuestionHandler.List)
		admin.PATCH("/flagged-questions/:id", cfg.FlaggedQuestionHandler.Review)
	}

	return r
}
