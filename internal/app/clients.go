package app

import (
	"gorm.io/gorm"

	redisclient "github.com/yungbote/visualenglish-backend/internal/clients/redis"
	"github.com/yungbote/visualenglish-backend/internal/data/db"
	"github.com/yungbote/visualenglish-backend/internal/platform/logger"
	"github.com/yungbote/visualenglish-backend/internal/services"
)

// openDB returns a nil service when the database is disabled or unreachable.
func openDB(log *logger.Logger, cfg Config) *db.Service {
	if !cfg.DBEnabled() {
		log.Warn("Database disabled; content edits will not be persisted", "driver", cfg.DB.Driver)
		return nil
	}
	svc, err := db.Open(cfg.DB, log)
	if err != nil {
		log.Warn("Database init failed; continuing without it", "driver", cfg.DB.Driver, "error", err)
		return nil
	}
	return svc
}

func dbHandle(svc *db.Service) *gorm.DB {
	if svc == nil {
		return nil
	}
	return svc.DB()
}

// wireEditCache prefers Redis and falls back to an in-process cache.
func wireEditCache(log *logger.Logger, cfg Config) (services.EditCache, *redisclient.EditCache) {
	if cfg.RedisAddr != "" {
		rc, err := redisclient.NewEditCache(log, redisclient.EditCacheConfig{
			Addr: cfg.RedisAddr,
			TTL:  cfg.EditCacheTTL,
		})
		if err == nil {
			return rc, rc
		}
		log.Warn("Redis edit cache unavailable; using memory cache", "addr", cfg.RedisAddr, "error", err)
	}
	return services.NewMemoryEditCache(cfg.EditCacheTTL), nil
}

func describeDB(svc *db.Service) string {
	if svc == nil {
		return "none"
	}
	return svc.Driver()
}
