package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	redisclient "github.com/yungbote/visualenglish-backend/internal/clients/redis"
	"github.com/yungbote/visualenglish-backend/internal/data/db"
	httpserver "github.com/yungbote/visualenglish-backend/internal/http"
	"github.com/yungbote/visualenglish-backend/internal/observability"
	"github.com/yungbote/visualenglish-backend/internal/platform/logger"
	"github.com/yungbote/visualenglish-backend/internal/services"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Router   *gin.Engine
	Cfg      Config
	Repos    Repos
	Services Services

	server       *httpserver.Server
	dbService    *db.Service
	redisCache   *redisclient.EditCache
	watcher      *services.MappingWatcher
	otelShutdown func(context.Context) error
	cancel       context.CancelFunc
}

func New() (*App, error) {
	cfg := LoadConfig()
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return NewWithConfig(log, cfg)
}

// NewWithConfig wires the app. A missing database or Redis degrades the
// server instead of failing it.
func NewWithConfig(log *logger.Logger, cfg Config) (*App, error) {
	otelShutdown := observability.InitOTel(context.Background(), log, cfg.Otel)

	dbService := openDB(log, cfg)
	theDB := dbHandle(dbService)
	log.Info("Database ready", "driver", describeDB(dbService))

	cache, redisCache := wireEditCache(log, cfg)
	reposet := wireRepos(theDB, log)

	serviceset, err := wireServices(theDB, log, cfg, reposet, cache)
	if err != nil {
		if dbService != nil {
			_ = dbService.Close()
		}
		log.Sync()
		return nil, err
	}

	handlerset := wireHandlers(log, serviceset)
	middleware := wireMiddleware(log, serviceset)
	server := wireServer(log, cfg, handlerset, middleware)

	return &App{
		Log:          log,
		DB:           theDB,
		Router:       server.Engine,
		Cfg:          cfg,
		Repos:        reposet,
		Services:     serviceset,
		server:       server,
		dbService:    dbService,
		redisCache:   redisCache,
		otelShutdown: otelShutdown,
	}, nil
}

// Start launches background work: the mapping directory watcher when
// MAPPING_WATCH_DIR is set.
func (a *App) Start() error {
	if a == nil || a.cancel != nil {
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel

	if a.Cfg.MappingWatchDir == "" {
		return nil
	}
	w, err := services.NewMappingWatcher(a.Log, a.Services.QAMapping, a.Cfg.MappingWatchDir, a.Cfg.MappingDebounce)
	if err != nil {
		return fmt.Errorf("mapping watcher: %w", err)
	}
	if err := w.Start(ctx); err != nil {
		return fmt.Errorf("mapping watcher: %w", err)
	}
	a.watcher = w
	return nil
}

func (a *App) Run(addr string) error {
	if a == nil || a.server == nil {
		return fmt.Errorf("app not initialized")
	}
	a.Log.Info("Server listening", "addr", addr)
	return a.server.Run(addr)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	if a.watcher != nil {
		if err := a.watcher.Stop(); err != nil {
			a.Log.Warn("mapping watcher stop failed", "error", err)
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), a.Cfg.ShutdownTimeout)
	defer cancel()
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			a.Log.Warn("http shutdown failed", "error", err)
		}
	}
	if a.otelShutdown != nil {
		if err := a.otelShutdown(ctx); err != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
	}
	if a.redisCache != nil {
		_ = a.redisCache.Close()
	}
	if a.dbService != nil {
		_ = a.dbService.Close()
	}
	a.Log.Sync()
}
