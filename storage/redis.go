package storage

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache is an optional dispatcher-side read cache for hot public
// responses (featured properties, blog listing). The entity store
// stays the only source of truth; entries are short-lived and dropped
// on every write to the entity type they shadow. A nil *Cache is a
// no-op, so the server runs unchanged without Redis.
type Cache struct {
	client *redis.Client
}

// NewCache connects to REDIS_URL. Returns nil (cache disabled) when
// the variable is unset or the server is unreachable.
func NewCache() *Cache {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     redisURL,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Println("redis unreachable, response cache disabled:", err)
		return nil
	}
	log.Println("redis response cache enabled at", redisURL)
	return &Cache{client: client}
}

func (c *Cache) Get(ctx context.Context, key string, dest interface{}) bool {
	if c == nil {
		return false
	}
	data, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(data), dest) == nil
}

func (c *Cache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if c == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.client.Set(ctx, key, data, ttl)
}

func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if c == nil || len(keys) == 0 {
		return
	}
	c.client.Del(ctx, keys...)
}
