// Package lifecycle implements the generic entity-lifecycle engine: one
// typed component providing create, read, update, partial update, delete and
// search for every resource, instead of a hand-written stack per resource.
//
// # Overview
//
// An Engine[T] orchestrates a storage.Store[T] and a cache.Service:
//
//   - Reads by id go cache-aside: check the cache, fall through to the
//     store, populate on the way back.
//   - Writes go to storage first, always; cache eviction happens after the
//     row is durable, so a crash between the two leaves a stale cache entry
//     (bounded by TTL), never a lost write.
//   - Pagination and search results are never cached; their staleness window
//     is not worth the invalidation traffic.
//   - The per-resource active-rows view is the one cached aggregate; every
//     successful write evicts it.
//
// # Concurrency
//
// The engine holds no locks. Write-write conflicts are resolved by the
// store's optimistic version check: concurrent updates to one row mean
// exactly one writer wins and the others get storage.ErrConflict. The engine
// never retries a conflict, because it cannot re-derive the loser's intent;
// callers reload and resubmit.
//
// # Cache failures
//
// The cache is best effort. A failing cache never fails an operation: reads
// fall back to the store, failed evictions are logged and skipped. EvictAll
// is the manual recovery hatch when an eviction was lost.
//
// # Usage
//
//	engine := lifecycle.New[model.Banner](store, cacheService, keys,
//		lifecycle.WithNamespace("banners"))
//
//	banner, err := engine.Create(ctx, &model.Banner{Name: "Spring Sale", ImageURL: "/a.png", IsActive: true})
//	banner, ok, err := engine.GetByID(ctx, banner.ID)
//	banner, err = engine.PartialUpdate(ctx, banner.ID, model.BannerPatch{IsActive: ptr(false)})
package lifecycle
