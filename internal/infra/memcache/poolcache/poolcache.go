package infra_pool_memcache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/ibanezbetes/trinity-sub006/internal/model"
)

// Driver is the in-process pool cache used when Redis is not configured.
type Driver struct {
	cache *gocache.Cache
}

func New(ttl time.Duration) *Driver {
	return &Driver{
		cache: gocache.New(ttl, 2*ttl),
	}
}

func (d *Driver) Get(_ context.Context, key string) ([]model.PoolEntry, bool, error) {
	val, ok := d.cache.Get(key)
	if !ok {
		return nil, false, nil
	}

	pool, ok := val.([]model.PoolEntry)
	if !ok {
		return nil, false, nil
	}

	return pool, true, nil
}

func (d *Driver) Put(_ context.Context, key string, pool []model.PoolEntry) error {
	d.cache.SetDefault(key, pool)
	return nil
}
