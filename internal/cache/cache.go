package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/neexbeast/tripsaver/internal/destination"
)

const (
	DefaultTTL = time.Hour
	catalogKey = "catalog:destinations"
)

// Cache stores the destination catalog snapshot in Redis.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache constructs a Cache with a 1-hour TTL.
func NewCache(client *redis.Client) *Cache {
	return NewCacheWithTTL(client, DefaultTTL)
}

// NewCacheWithTTL constructs a Cache with a custom TTL. A non-positive ttl means DefaultTTL.
func NewCacheWithTTL(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

// GetCatalog returns the cached records.
// Returns nil, nil on a cache miss (not an error).
func (c *Cache) GetCatalog(ctx context.Context) ([]destination.Destination, error) {
	val, err := c.client.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get catalog: %w", err)
	}

	var records []destination.Destination
	if err := json.Unmarshal(val, &records); err != nil {
		return nil, fmt.Errorf("unmarshaling cached catalog: %w", err)
	}
	return records, nil
}

// SetCatalog stores records with the configured TTL. An empty slice is not cached.
func (c *Cache) SetCatalog(ctx context.Context, records []destination.Destination) error {
	if len(records) == 0 {
		return nil
	}

	b, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshaling catalog: %w", err)
	}

	if err := c.client.Set(ctx, catalogKey, b, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set catalog: %w", err)
	}
	return nil
}

// Invalidate drops the cached snapshot so the next read goes to the backing source.
func (c *Cache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, catalogKey).Err(); err != nil {
		return fmt.Errorf("cache invalidate catalog: %w", err)
	}
	return nil
}
