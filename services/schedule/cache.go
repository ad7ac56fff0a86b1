// File: services/schedule/cache.go
package schedule

import (
	"context"
	"encoding/json"
	"time"

	"taskpilot/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Cache key prefixes.
const (
	availableSlotsKeyPrefix = "slots:"
	scheduleResultKeyPrefix = "schedule:"
	settingsKeyPrefix       = "settings:"
)

// Cache durations.
const (
	cacheVeryShort = 30 * time.Second
	cacheShort     = time.Minute
	cacheMedium    = 5 * time.Minute
	cacheLong      = time.Hour
	cacheVeryLong  = 24 * time.Hour
)

// resultCache is a fail-soft JSON cache over Redis: errors are logged and
// treated as a miss, never surfaced to callers.
type resultCache struct {
	client *redis.Client
}

func newResultCache(client *redis.Client) *resultCache {
	return &resultCache{client: client}
}

func (c *resultCache) get(ctx context.Context, key string, out interface{}) bool {
	if c == nil || c.client == nil {
		return false
	}
	data, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			utils.GetLogger().Warn("Cache get failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(data), out); err != nil {
		utils.GetLogger().Warn("Cache entry unreadable, discarding", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (c *resultCache) set(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if c == nil || c.client == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		utils.GetLogger().Warn("Cache marshal failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		utils.GetLogger().Warn("Cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// invalidatePrefix drops every key under the given prefix. Schedule runs use
// it to keep availability responses coherent with the new assignments.
func (c *resultCache) invalidatePrefix(ctx context.Context, prefix string) {
	if c == nil || c.client == nil {
		return
	}
	iter := c.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		utils.GetLogger().Warn("Cache scan failed", zap.String("prefix", prefix), zap.Error(err))
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		utils.GetLogger().Warn("Cache invalidation failed", zap.String("prefix", prefix), zap.Error(err))
	}
}

// availableSlotsKey builds a deterministic key for a date range.
func availableSlotsKey(start, end time.Time) string {
	return availableSlotsKeyPrefix + start.Format("2006-01-02") + "-" + end.Format("2006-01-02")
}
