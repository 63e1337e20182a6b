package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis key prefix for cached derived views (rosters, dashboards, trends)
	RedisSnapshotKeyPrefix = "snapshot:"

	// Timeout for individual Redis operations
	snapshotTimeout = 5 * time.Second
)

// SnapshotCache stores serialized derived views in Redis so repeated dashboard
// loads skip recomputation. Cache failures degrade to recompute: callers treat
// a miss and an error the same way.
type SnapshotCache struct {
	client *redis.Client
	log    *logrus.Logger
	ttl    time.Duration
}

func NewSnapshotCache(client *redis.Client, log *logrus.Logger, ttl time.Duration) *SnapshotCache {
	return &SnapshotCache{
		client: client,
		log:    log,
		ttl:    ttl,
	}
}

// Get loads a cached snapshot into dest. Returns false on miss, error or when
// the cache is disabled.
func (c *SnapshotCache) Get(ctx context.Context, key string, dest interface{}) bool {
	if c == nil || c.client == nil {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, snapshotTimeout)
	defer cancel()

	data, err := c.client.Get(ctx, RedisSnapshotKeyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnf("Failed to read snapshot %s: %+v", key, err)
		}
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		c.log.Warnf("Failed to decode snapshot %s: %+v", key, err)
		return false
	}

	return true
}

// Set stores a snapshot with the configured TTL. Failures are logged, never
// propagated.
func (c *SnapshotCache) Set(ctx context.Context, key string, value interface{}) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		c.log.Warnf("Failed to encode snapshot %s: %+v", key, err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, snapshotTimeout)
	defer cancel()

	if err := c.client.Set(ctx, RedisSnapshotKeyPrefix+key, data, c.ttl).Err(); err != nil {
		c.log.Warnf("Failed to store snapshot %s: %+v", key, err)
	}
}

// Invalidate drops cached snapshots after a write that changes their inputs.
func (c *SnapshotCache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil || len(keys) == 0 {
		return
	}

	prefixed := make([]string, 0, len(keys))
	for _, key := range keys {
		prefixed = append(prefixed, RedisSnapshotKeyPrefix+key)
	}

	ctx, cancel := context.WithTimeout(ctx, snapshotTimeout)
	defer cancel()

	if err := c.client.Del(ctx, prefixed...).Err(); err != nil {
		c.log.Warnf("Failed to invalidate snapshots %v: %+v", keys, err)
	}
}
