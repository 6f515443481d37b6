package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Cache struct {
	client      *redis.Client
	serviceName string
}

func NewRedisCache(addr, password, serviceName string) *Cache {
	if addr == "" {
		return nil
	}
	return &Cache{
		client:      redis.NewClient(&redis.Options{Addr: addr, Password: password}),
		serviceName: serviceName,
	}
}

// Get returns "" on a cache miss. A nil Cache never hits.
func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	if c == nil {
		return "", nil
	}
	v, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return v, nil
}

func (c *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if c == nil {
		return nil
	}
	return c.client.Set(ctx, key, value, ttl).Err()
}

func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	if c == nil {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *Cache) Key(operation, key string) string {
	if c == nil {
		return fmt.Sprintf("%s:%s", operation, key)
	}
	return fmt.Sprintf("%s:%s:%s", c.serviceName, operation, key)
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
