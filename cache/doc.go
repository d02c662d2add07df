// Package cache provides the caching contract and key generation used by the
// lifecycle engine.
//
// # Overview
//
// The package exports two pieces:
//
//   - Service: read-through cache operations (GetOrFetch, Delete)
//   - KeyBuilder: stable cache keys from namespace, operation and arguments
//
// The cache is never the system of record. Entries hold non-owning,
// TTL-bounded copies of rows owned by the storage backend; losing the cache
// changes latency, never behavior.
//
// # Basic Usage
//
//	keys := cache.NewKeyBuilder()
//	key := keys.Key("banners", "GetByID", id)
//
//	banner, err := cache.GetOrFetch(ctx, service, key, func(ctx context.Context) (*model.Banner, error) {
//		return loadFromStore(ctx, id)
//	})
//
// # Key Layout
//
// Keys are "namespace::operation::args...". Each resource gets its own
// namespace (defaulting to the snake_case type name, see Namespace), which
// makes per-resource prefix invalidation possible: evicting everything for a
// resource is a prefix sweep over "namespace::".
//
// # Determinism
//
// The key builder serializes arguments without regard to pointer identity:
// pointers are dereferenced, times use RFC 3339 with nanoseconds, slices are
// serialized element-wise, and anything without an obvious text form falls
// back to JSON. Two calls with equal arguments always produce the same key.
package cache
