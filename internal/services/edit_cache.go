package services

import (
	"context"
	"sync"
	"time"

	types "github.com/yungbote/visualenglish-backend/internal/domain"
)

// EditCache holds each user's content edits per book/unit. The Redis client
// in internal/clients/redis satisfies it.
type EditCache interface {
	Get(ctx context.Context, userID, bookID, unitID string) ([]*types.ContentEdit, bool, error)
	Set(ctx context.Context, userID, bookID, unitID string, edits []*types.ContentEdit) error
	Invalidate(ctx context.Context, userID, bookID, unitID string) error
}

type memoryEditCacheEntry struct {
	edits   []*types.ContentEdit
	expires time.Time
}

type memoryEditCache struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	entries map[string]memoryEditCacheEntry
}

// NewMemoryEditCache is the in-process cache used when Redis is not configured.
func NewMemoryEditCache(ttl time.Duration) EditCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &memoryEditCache{ttl: ttl, now: time.Now, entries: map[string]memoryEditCacheEntry{}}
}

func editCacheKey(userID, bookID, unitID string) string {
	return userID + "\x00" + bookID + "\x00" + unitID
}

func (c *memoryEditCache) Get(ctx context.Context, userID, bookID, unitID string) ([]*types.ContentEdit, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := editCacheKey(userID, bookID, unitID)
	e, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}
	if !c.now().Before(e.expires) {
		delete(c.entries, key)
		return nil, false, nil
	}
	return e.edits, true, nil
}

func (c *memoryEditCache) Set(ctx context.Context, userID, bookID, unitID string, edits []*types.ContentEdit) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[editCacheKey(userID, bookID, unitID)] = memoryEditCacheEntry{edits: edits, expires: c.now().Add(c.ttl)}
	return nil
}

func (c *memoryEditCache) Invalidate(ctx context.Context, userID, bookID, unitID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, editCacheKey(userID, bookID, unitID))
	return nil
}
