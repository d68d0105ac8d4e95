package infra_pool_cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis"

	"github.com/ibanezbetes/trinity-sub006/internal/model"
)

// Driver is a dumb key/value store for assembled pools. Whether a cached pool
// is usable is the orchestrator's call; the driver only stores and fetches.
type Driver struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func New(client *redis.Client, key string, ttl time.Duration) *Driver {
	return &Driver{
		client: client,
		key:    key,
		ttl:    ttl,
	}
}

func (d *Driver) Get(_ context.Context, key string) ([]model.PoolEntry, bool, error) {
	fullKey := d.getFullKey(key)

	val, err := d.client.Get(fullKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get cached pool: %w", err)
	}

	var pool []model.PoolEntry
	if err := json.Unmarshal([]byte(val), &pool); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached pool: %w", err)
	}

	return pool, true, nil
}

// Put replaces the stored pool whole. Entries are never mutated in place.
func (d *Driver) Put(_ context.Context, key string, pool []model.PoolEntry) error {
	raw, err := json.Marshal(pool)
	if err != nil {
		return fmt.Errorf("failed to encode pool: %w", err)
	}

	if err := d.client.Set(d.getFullKey(key), raw, d.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store pool: %w", err)
	}

	return nil
}

func (d *Driver) getFullKey(key string) string {
	if d.key != "" {
		return d.key + ":" + key
	}
	return key
}
