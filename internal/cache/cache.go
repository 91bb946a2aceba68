package cache

import (
	"buildunion/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Resource names a cache key family. Invalidation is coarse-grained: a
// mutation discards the whole family, not the single affected entry.
type Resource string

const (
	ResourceProjects   Resource = "projects"
	ResourceBlueprints Resource = "blueprints"
	ResourceActivity   Resource = "activity"
)

const (
	keyPrefix     = "query:"
	scanBatchSize = 100
)

// QueryCache is a keyed list-result cache backed by Redis. It mirrors the last
// successful read per (resource, filter) pair and holds no other state.
type QueryCache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *QueryCache {
	return &QueryCache{client: client, ttl: ttl}
}

func NewClient(cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

func (c *QueryCache) key(resource Resource, filter string) string {
	return keyPrefix + string(resource) + ":" + filter
}

// Get loads a cached result into dst. The second return is false on a miss;
// a corrupt entry is treated as a miss, not an error.
func (c *QueryCache) Get(ctx context.Context, resource Resource, filter string, dst interface{}) (bool, error) {
	data, err := c.client.Get(ctx, c.key(resource, filter)).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get failed: %w", err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return false, nil
	}

	return true, nil
}

func (c *QueryCache) Set(ctx context.Context, resource Resource, filter string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache marshal failed: %w", err)
	}

	if err := c.client.Set(ctx, c.key(resource, filter), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set failed: %w", err)
	}

	return nil
}

// InvalidateFamily deletes every cached entry for the resource, regardless of
// filter. Subsequent reads re-fetch from the repository.
func (c *QueryCache) InvalidateFamily(ctx context.Context, resource Resource) error {
	pattern := keyPrefix + string(resource) + ":*"

	iter := c.client.Scan(ctx, 0, pattern, scanBatchSize).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("cache scan failed: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache invalidate failed: %w", err)
	}

	return nil
}
