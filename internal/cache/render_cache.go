// Package cache memoizes fully rendered feed pages in Redis.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/feedline/feedline/pkg/logger"
)

// RenderCache stores rendered HTML payloads keyed by (feed, page).
// Entries expire by TTL only; post writes never invalidate them, so a
// hit may serve data that has since been deleted. That staleness is
// bounded by the TTL and accepted in exchange for read latency.
// Concurrent miss-then-fill races resolve last-writer-wins: both
// fills render the same snapshot, so either payload is valid.
type RenderCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRenderCache(rdb *redis.Client, ttl time.Duration) *RenderCache {
	return &RenderCache{rdb: rdb, ttl: ttl}
}

func key(feed string, page int) string {
	return fmt.Sprintf("render:%s:%d", feed, page)
}

// Get returns the cached payload verbatim, or ok=false on a miss.
func (c *RenderCache) Get(ctx context.Context, feed string, page int) ([]byte, bool) {
	payload, err := c.rdb.Get(ctx, key(feed, page)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Warn("render cache get failed", zap.String("feed", feed), zap.Error(err))
		}
		return nil, false
	}
	return payload, true
}

// Set stores the payload with a fresh TTL. Each page number expires
// independently of the rest of the feed.
func (c *RenderCache) Set(ctx context.Context, feed string, page int, payload []byte) {
	if err := c.rdb.Set(ctx, key(feed, page), payload, c.ttl).Err(); err != nil {
		logger.Warn("render cache set failed", zap.String("feed", feed), zap.Error(err))
	}
}
