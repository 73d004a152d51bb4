package cache

import (
	"context"
	"log/slog"

	"github.com/neexbeast/tripsaver/internal/destination"
	"github.com/neexbeast/tripsaver/internal/metrics"
)

// CachedSource is a read-through cache in front of a destination source.
// Redis errors are logged and bypassed; only backing failures are returned.
type CachedSource struct {
	cache   *Cache
	backing destination.Source
	log     *slog.Logger
}

// NewCachedSource wraps backing with c.
func NewCachedSource(c *Cache, backing destination.Source, log *slog.Logger) *CachedSource {
	if log == nil {
		log = slog.Default()
	}
	return &CachedSource{cache: c, backing: backing, log: log}
}

// Destinations serves the cached snapshot, or loads and caches it on a miss.
func (s *CachedSource) Destinations(ctx context.Context) ([]destination.Destination, error) {
	records, err := s.cache.GetCatalog(ctx)
	if err != nil {
		s.log.Warn("catalog cache read failed", "err", err)
	}
	if len(records) > 0 {
		metrics.CatalogCacheHits.Inc()
		return records, nil
	}
	metrics.CatalogCacheMisses.Inc()

	records, err = s.backing.Destinations(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetCatalog(ctx, records); err != nil {
		s.log.Warn("catalog cache write failed", "err", err)
	}
	return records, nil
}

// Invalidate drops the cached snapshot.
func (s *CachedSource) Invalidate(ctx context.Context) error {
	return s.cache.Invalidate(ctx)
}
