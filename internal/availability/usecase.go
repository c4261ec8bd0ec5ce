package availability

import (
	"context"
	"time"
)

// CacheKey holds the cached availability map. Stock, product, and billing
// writes delete it so the next read recomputes from fresh collections.
const CacheKey = "availability:map"

// CacheTTL bounds staleness even if an invalidation is missed.
const CacheTTL = 30 * time.Second

type UseCase interface {
	// Availability returns the available quantity for every known product.
	Availability(ctx context.Context) (map[string]int, error)
}
