package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"golang.org/x/sync/singleflight"
)

// Cache stores values of type V under string keys with a time to live.
// A zero or negative TTL passed to Set means the entry never expires.
type Cache[V any] interface {
	// Get returns ErrNotFound for a missing or expired key.
	Get(ctx context.Context, key string) (V, error)
	Set(ctx context.Context, key string, value V, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Loader computes a value on a cache miss.
type Loader[V any] func(ctx context.Context) (V, error)

// Memoizer wraps a Cache so concurrent misses on the same key run the loader
// once and share its result.
type Memoizer[V any] struct {
	cache Cache[V]
	group singleflight.Group
	ttl   time.Duration
}

// NewMemoizer caches loaded values in c for ttl.
func NewMemoizer[V any](c Cache[V], ttl time.Duration) *Memoizer[V] {
	return &Memoizer[V]{cache: c, ttl: ttl}
}

// Get returns the cached value for key or calls load and caches its result.
// Loader errors are returned and never cached. A failing cache backend is
// treated as a miss.
func (m *Memoizer[V]) Get(ctx context.Context, key string, load Loader[V]) (V, error) {
	if v, err := m.cache.Get(ctx, key); err == nil {
		return v, nil
	}

	res, err, _ := m.group.Do(key, func() (any, error) {
		v, err := load(ctx)
		if err != nil {
			return nil, err
		}
		_ = m.cache.Set(ctx, key, v, m.ttl)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return res.(V), nil
}

// Invalidate drops the cached value for key.
func (m *Memoizer[V]) Invalidate(ctx context.Context, key string) error {
	return m.cache.Delete(ctx, key)
}

func marshal[V any](v V) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Join(ErrMarshal, err)
	}
	return data, nil
}

func unmarshal[V any](data []byte) (V, error) {
	var v V
	if err := json.Unmarshal(data, &v); err != nil {
		return v, errors.Join(ErrUnmarshal, err)
	}
	return v, nil
}
