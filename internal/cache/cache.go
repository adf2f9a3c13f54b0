package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"freight-service/internal/model"
)

const keyPrefix = "freight:dropdown:"

// Dropdowns keeps {id, value} lists keyed by entity and optional scope,
// e.g. "drivers:<transportId>". A cache failure never fails the caller.
type Dropdowns interface {
	Remember(ctx context.Context, key string, load func() ([]model.DropDownRow, error)) ([]model.DropDownRow, error)
	Invalidate(ctx context.Context, entity string)
}

type RedisDropdowns struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

func NewRedisDropdowns(client *redis.Client, ttl time.Duration, log zerolog.Logger) *RedisDropdowns {
	return &RedisDropdowns{client: client, ttl: ttl, log: log}
}

// Remember returns the cached rows for key, loading and storing them on a miss.
func (c *RedisDropdowns) Remember(ctx context.Context, key string, load func() ([]model.DropDownRow, error)) ([]model.DropDownRow, error) {
	raw, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err == nil {
		var rows []model.DropDownRow
		if err := json.Unmarshal(raw, &rows); err == nil {
			return rows, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		c.log.Warn().Err(err).Str("key", key).Msg("dropdown cache read failed")
	}

	rows, err := load()
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(rows)
	if err != nil {
		return rows, nil
	}
	if err := c.client.Set(ctx, keyPrefix+key, payload, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("dropdown cache write failed")
	}
	return rows, nil
}

// Invalidate drops the entity's list and every scoped variant of it.
func (c *RedisDropdowns) Invalidate(ctx context.Context, entity string) {
	keys := []string{keyPrefix + entity}
	iter := c.client.Scan(ctx, 0, keyPrefix+entity+":*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.log.Warn().Err(err).Str("entity", entity).Msg("dropdown cache scan failed")
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn().Err(err).Str("entity", entity).Msg("dropdown cache invalidation failed")
	}
}

// Noop always loads. It serves when no redis address is configured.
type Noop struct{}

func (Noop) Remember(_ context.Context, _ string, load func() ([]model.DropDownRow, error)) ([]model.DropDownRow, error) {
	return load()
}

func (Noop) Invalidate(context.Context, string) {}

// Key joins an entity with its scope.
func Key(entity, scope string) string {
	if scope == "" {
		return entity
	}
	return entity + ":" + scope
}
