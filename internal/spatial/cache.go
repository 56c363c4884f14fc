package spatial

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize bounds the distance cache when no size is configured
const DefaultCacheSize = 1000

// DistanceCache memoizes DistanceKm results keyed by a pair of geohash cells.
// It is approximate below the cell size: distinct points sharing a
// CachePrecision cell (about 5 m) share one entry, so a cached distance may
// be off by up to roughly 10 m. Values are derived and idempotent, so
// concurrent callers may fill the cache independently; the underlying LRU
// handles its own locking.
type DistanceCache struct {
	entries *lru.Cache[string, float64]
}

// NewDistanceCache creates a cache holding at most size pairs
func NewDistanceCache(size int) (*DistanceCache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	entries, err := lru.New[string, float64](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create distance cache: %w", err)
	}
	return &DistanceCache{entries: entries}, nil
}

// Distance returns the cached distance in km between a and b, computing it on a miss.
// A nil cache computes directly.
func (c *DistanceCache) Distance(a, b Point) float64 {
	if a == b {
		return 0
	}
	if c == nil {
		return DistanceKm(a, b)
	}

	key := pairKey(a, b)
	if d, ok := c.entries.Get(key); ok {
		return d
	}

	d := DistanceKm(a, b)
	c.entries.Add(key, d)
	return d
}

// Len returns the number of cached pairs
func (c *DistanceCache) Len() int {
	if c == nil {
		return 0
	}
	return c.entries.Len()
}

// pairKey is order independent so distance(a,b) and distance(b,a) share an entry
func pairKey(a, b Point) string {
	ha := EncodeGeohash(a, CachePrecision)
	hb := EncodeGeohash(b, CachePrecision)
	if hb < ha {
		ha, hb = hb, ha
	}
	return ha + ":" + hb
}
