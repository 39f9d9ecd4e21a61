package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/antoninkin/parkmate-app/internal/pkg/errs"
	"github.com/antoninkin/parkmate-app/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	locationListKey   = "parkmate:locations"
	locationKeyPrefix = "parkmate:location:"
)

// RedisLocationCache keeps location reads, including live spot counts, for a short TTL.
type RedisLocationCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewRedisLocationCache(client redis.Cmdable, ttl time.Duration) *RedisLocationCache {
	return &RedisLocationCache{client: client, ttl: ttl}
}

func (c *RedisLocationCache) GetList(ctx context.Context) ([]*queries.LocationView, bool, error) {
	var views []*queries.LocationView
	ok, err := c.get(ctx, locationListKey, &views)
	return views, ok, err
}

func (c *RedisLocationCache) SetList(ctx context.Context, views []*queries.LocationView) error {
	return c.set(ctx, locationListKey, views)
}

func (c *RedisLocationCache) Get(ctx context.Context, id uuid.UUID) (*queries.LocationView, bool, error) {
	var view queries.LocationView
	ok, err := c.get(ctx, locationKey(id), &view)
	if !ok || err != nil {
		return nil, false, err
	}
	return &view, true, nil
}

func (c *RedisLocationCache) Set(ctx context.Context, view *queries.LocationView) error {
	return c.set(ctx, locationKey(view.ID), view)
}

// Invalidate always drops the list; ids drop their single-location entries too.
func (c *RedisLocationCache) Invalidate(ctx context.Context, ids ...uuid.UUID) error {
	keys := make([]string, 0, len(ids)+1)
	keys = append(keys, locationListKey)
	for _, id := range ids {
		keys = append(keys, locationKey(id))
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return errs.Wrap(err, "failed to invalidate location cache")
	}
	return nil
}

func (c *RedisLocationCache) get(ctx context.Context, key string, dst any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, errs.Wrapf(err, "failed to read cache key %s", key)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, errs.Wrapf(err, "failed to decode cache key %s", key)
	}
	return true, nil
}

func (c *RedisLocationCache) set(ctx context.Context, key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return errs.Wrap(err, "failed to encode cache value")
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return errs.Wrapf(err, "failed to write cache key %s", key)
	}
	return nil
}

func locationKey(id uuid.UUID) string {
	return locationKeyPrefix + id.String()
}

// NopLocationCache is used when no Redis address is configured.
type NopLocationCache struct{}

func (NopLocationCache) GetList(context.Context) ([]*queries.LocationView, bool, error) {
	return nil, false, nil
}

func (NopLocationCache) SetList(context.Context, []*queries.LocationView) error { return nil }

func (NopLocationCache) Get(context.Context, uuid.UUID) (*queries.LocationView, bool, error) {
	return nil, false, nil
}

func (NopLocationCache) Set(context.Context, *queries.LocationView) error { return nil }

func (NopLocationCache) Invalidate(context.Context, ...uuid.UUID) error { return nil }
