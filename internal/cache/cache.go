package cache

import (
	"context"
	"time"
)

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type NoopCache struct{}

func NewNoop() *NoopCache {
	return &NoopCache{}
}

func (n *NoopCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

func (n *NoopCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

func (n *NoopCache) Delete(ctx context.Context, key string) error {
	return nil
}

// Fetch returns the value cached under key, or runs load and caches its result for ttl.
// Cache failures degrade to calling load; only load errors are returned. hit reports whether
// the value was served from the cache.
func Fetch(ctx context.Context, c Cache, key string, ttl time.Duration, load func() ([]byte, error)) (value []byte, hit bool, err error) {
	if c != nil {
		if cached, ok, err := c.Get(ctx, key); err == nil && ok {
			return cached, true, nil
		}
	}

	value, err = load()
	if err != nil {
		return nil, false, err
	}

	if c != nil && ttl > 0 {
		_ = c.Set(ctx, key, value, ttl)
	}
	return value, false, nil
}
