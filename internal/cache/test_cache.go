package cache

import (
	"sync"
	"time"
)

var _ Cache = (*TestCache)(nil)

type testEntry struct {
	value     interface{}
	expiresAt time.Time
}

// TestCache is a map backed Cache with deterministic admission, for tests.
type TestCache struct {
	mutex sync.Mutex
	cache map[string]testEntry
	now   func() time.Time
}

func NewTestCache(now func() time.Time) *TestCache {
	if now == nil {
		now = time.Now
	}
	return &TestCache{
		cache: make(map[string]testEntry),
		now:   now,
	}
}

func (tc *TestCache) Get(key string) (interface{}, bool) {
	tc.mutex.Lock()
	defer tc.mutex.Unlock()

	entry, ok := tc.cache[key]
	if !ok {
		return nil, false
	}
	if !entry.expiresAt.IsZero() && !tc.now().Before(entry.expiresAt) {
		delete(tc.cache, key)
		return nil, false
	}
	return entry.value, true
}

func (tc *TestCache) SetWithTTL(key string, value interface{}, _ int64, ttl time.Duration) bool {
	tc.mutex.Lock()
	defer tc.mutex.Unlock()

	entry := testEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = tc.now().Add(ttl)
	}
	tc.cache[key] = entry
	return true
}

func (tc *TestCache) Clear() {
	tc.mutex.Lock()
	defer tc.mutex.Unlock()
	tc.cache = make(map[string]testEntry)
}
