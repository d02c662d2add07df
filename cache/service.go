package cache

import (
	"context"
	"fmt"
)

// FetchFn loads a value from the source of truth on a cache miss.
type FetchFn[T any] func(ctx context.Context) (T, error)

// Service exposes the read-through operations the lifecycle engine needs.
// Implementations decide storage, TTL and eviction; the default lives in
// internal/cacheinfra.
type Service interface {
	// GetOrFetch returns the cached value for key, calling fetch and caching
	// its result on a miss.
	GetOrFetch(ctx context.Context, key string, fetch func(ctx context.Context) (any, error)) (any, error)
	// Delete removes a single key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// GetOrFetch is the type-safe wrapper over Service.GetOrFetch.
func GetOrFetch[T any](ctx context.Context, s Service, key string, fetch FetchFn[T]) (T, error) {
	var zero T
	res, err := s.GetOrFetch(ctx, key, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		return zero, err
	}
	v, ok := res.(T)
	if !ok {
		return zero, fmt.Errorf("cache: key %q holds %T, want %T", key, res, zero)
	}
	return v, nil
}
