package cache

import "time"

// Cache holds short lived page data. Implementations are safe for
// concurrent use.
type Cache interface {
	Get(key string) (interface{}, bool)
	SetWithTTL(key string, value interface{}, cost int64, ttl time.Duration) bool
	Clear()
}
