package matches

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache keeps fixture lists in redis so the upstream rate limit survives
// page traffic.
type Cache struct {
	r *redis.Client
}

func NewCache(r *redis.Client) *Cache {
	return &Cache{r: r}
}

func (c *Cache) Get(ctx context.Context, key string, dst any) (bool, error) {
	b, err := c.r.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(b, dst)
}

func (c *Cache) Set(ctx context.Context, key string, v any, ttl time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.r.Set(ctx, key, b, ttl).Err()
}
