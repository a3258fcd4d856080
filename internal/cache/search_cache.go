package cache

import (
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
)

var _ Cache = (*SearchCache)(nil)

// SearchCache keeps user search results, the search box fires a query per
// keystroke and most of them repeat.
type SearchCache struct {
	mainCache *ristretto.Cache
}

func NewSearchCache() (*SearchCache, error) {
	mainCache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e5,     // number of keys to track frequency of (100k)
		MaxCost:     1 << 24, // maximum cost of cache (~16M)
		BufferItems: 64,      // number of keys per Get buffer
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ristretto cache: %w", err)
	}

	return &SearchCache{
		mainCache: mainCache,
	}, nil
}

func (sc *SearchCache) Get(key string) (interface{}, bool) {
	return sc.mainCache.Get(key)
}

// SetWithTTL waits for the write buffers so a following Get sees the value.
func (sc *SearchCache) SetWithTTL(key string, value interface{}, cost int64, ttl time.Duration) bool {
	ok := sc.mainCache.SetWithTTL(key, value, cost, ttl)
	sc.mainCache.Wait()
	return ok
}

func (sc *SearchCache) Clear() {
	sc.mainCache.Clear()
}
