package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"mediafeed/internal/domain"
)

// UnwatchedCache keeps per-subscription unwatched counts in redis for a
// short TTL. The counts are recomputed by the store on miss; sync passes
// running elsewhere make them stale for at most the TTL. Every redis
// failure fails open so the API keeps working without the cache.
type UnwatchedCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewUnwatchedCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *UnwatchedCache {
	if ttl == 0 {
		ttl = time.Minute
	}
	return &UnwatchedCache{
		client: client,
		ttl:    ttl,
		logger: logger.With("component", "cache"),
	}
}

func subscriptionKey(subscriptionID int64) string {
	return fmt.Sprintf("unwatched:sub:%d", subscriptionID)
}

func (c *UnwatchedCache) Get(ctx context.Context, subscriptionID int64) (*domain.UnwatchedStats, bool) {
	raw, err := c.client.Get(ctx, subscriptionKey(subscriptionID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("cache read failed", "error", err)
		}
		return nil, false
	}

	var stats domain.UnwatchedStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, false
	}
	return &stats, true
}

func (c *UnwatchedCache) Set(ctx context.Context, subscriptionID int64, stats *domain.UnwatchedStats) {
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, subscriptionKey(subscriptionID), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("cache write failed", "error", err)
	}
}

// Invalidate drops the cached counts after a watched toggle.
func (c *UnwatchedCache) Invalidate(ctx context.Context, subscriptionID int64) {
	if err := c.client.Del(ctx, subscriptionKey(subscriptionID)).Err(); err != nil {
		c.logger.Warn("cache invalidate failed", "error", err)
	}
}
