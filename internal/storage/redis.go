package storage

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"dinehall/internal/domain"
)

// RedisMenuCache is the read-through cache in front of the menu catalog.
// Values are JSON; a miss is (nil, nil).
type RedisMenuCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisMenuCache(client *redis.Client, ttl time.Duration) *RedisMenuCache {
	return &RedisMenuCache{Client: client, TTL: ttl}
}

func (c *RedisMenuCache) ItemKey(id int) string {
	return "menu:item:" + strconv.Itoa(id)
}

func (c *RedisMenuCache) Get(ctx context.Context, key string) (*domain.MenuItem, error) {
	payload, err := c.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var item domain.MenuItem
	if err := json.Unmarshal(payload, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *RedisMenuCache) Set(ctx context.Context, key string, item *domain.MenuItem) error {
	payload, err := json.Marshal(item)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, key, payload, c.TTL).Err()
}

func (c *RedisMenuCache) Invalidate(ctx context.Context, key string) error {
	return c.Client.Del(ctx, key).Err()
}
