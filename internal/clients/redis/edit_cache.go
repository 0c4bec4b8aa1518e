package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	types "github.com/yungbote/visualenglish-backend/internal/domain"
	"github.com/yungbote/visualenglish-backend/internal/platform/logger"
)

const defaultEditCacheTTL = 5 * time.Minute

// EditCache is a read-through cache of one user's edits for a unit.
type EditCache struct {
	log    *logger.Logger
	rdb    *goredis.Client
	prefix string
	ttl    time.Duration
}

type EditCacheConfig struct {
	Addr   string
	Prefix string
	TTL    time.Duration
}

func NewEditCache(log *logger.Logger, cfg EditCacheConfig) (*EditCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	prefix := strings.TrimSpace(cfg.Prefix)
	if prefix == "" {
		prefix = "visualenglish:edits"
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultEditCacheTTL
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &EditCache{
		log:    log.With("service", "RedisEditCache"),
		rdb:    rdb,
		prefix: prefix,
		ttl:    ttl,
	}, nil
}

func (c *EditCache) key(userID, bookID, unitID string) string {
	return c.prefix + ":" + userID + ":" + bookID + ":" + unitID
}

// Get reports ok=false on a miss.
func (c *EditCache) Get(ctx context.Context, userID, bookID, unitID string) ([]*types.ContentEdit, bool, error) {
	raw, err := c.rdb.Get(ctx, c.key(userID, bookID, unitID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var edits []*types.ContentEdit
	if err := json.Unmarshal(raw, &edits); err != nil {
		// Drop the unreadable entry so the next read repopulates it.
		_ = c.rdb.Del(ctx, c.key(userID, bookID, unitID)).Err()
		return nil, false, nil
	}
	return edits, true, nil
}

func (c *EditCache) Set(ctx context.Context, userID, bookID, unitID string, edits []*types.ContentEdit) error {
	raw, err := json.Marshal(edits)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, c.key(userID, bookID, unitID), raw, c.ttl).Err()
}

func (c *EditCache) Invalidate(ctx context.Context, userID, bookID, unitID string) error {
	return c.rdb.Del(ctx, c.key(userID, bookID, unitID)).Err()
}

func (c *EditCache) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
