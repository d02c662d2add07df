package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/puzpuzpuz/xsync/v3"

	"corecms/cache"
	"corecms/model"
	"corecms/storage"
)

// Operation names used as cache key segments.
const (
	opGetByID = "GetByID"
	opActive  = "Active"
)

const defaultActiveLimit = 1000

// Engine provides the uniform lifecycle operations for one resource type.
// The second type parameter recovers the model.Entity methods from *T and is
// inferred; callers write lifecycle.New[model.Banner](...).
type Engine[T any, PT model.EntityPtr[T]] struct {
	store       storage.Store[T]
	cache       cache.Service
	keys        cache.KeyBuilder
	log         *slog.Logger
	namespace   string
	activePreds []storage.Predicate
	activeLimit int

	// Live cache keys for this namespace, kept for prefix eviction.
	registry *xsync.MapOf[string, struct{}]
}

// Option configures an Engine.
type Option func(*options)

type options struct {
	namespace   string
	logger      *slog.Logger
	activePreds []storage.Predicate
	activeLimit int
}

// WithNamespace overrides the cache namespace, which defaults to the
// snake_case resource type name.
func WithNamespace(ns string) Option {
	return func(o *options) { o.namespace = ns }
}

// WithLogger sets the logger for swallowed cache failures.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithActivePredicates overrides the filter behind Active, which defaults to
// is_active = true.
func WithActivePredicates(preds ...storage.Predicate) Option {
	return func(o *options) { o.activePreds = preds }
}

// WithActiveLimit caps how many rows Active loads.
func WithActiveLimit(n int) Option {
	return func(o *options) { o.activeLimit = n }
}

// New builds an engine over the given store and cache.
func New[T any, PT model.EntityPtr[T]](store storage.Store[T], svc cache.Service, keys cache.KeyBuilder, opts ...Option) *Engine[T, PT] {
	o := options{activeLimit: defaultActiveLimit}
	for _, opt := range opts {
		opt(&o)
	}
	if o.namespace == "" {
		o.namespace = cache.Namespace(reflect.TypeFor[T]().Name())
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.activePreds == nil {
		o.activePreds = []storage.Predicate{storage.Eq("is_active", true)}
	}

	return &Engine[T, PT]{
		store:       store,
		cache:       svc,
		keys:        keys,
		log:         o.logger,
		namespace:   o.namespace,
		activePreds: o.activePreds,
		activeLimit: o.activeLimit,
		registry:    xsync.NewMapOf[string, struct{}](),
	}
}

// Namespace returns the cache namespace this engine evicts under.
func (e *Engine[T, PT]) Namespace() string { return e.namespace }

// Create validates input and persists it as a new row. Any caller-supplied
// identity or version is discarded; storage assigns both.
func (e *Engine[T, PT]) Create(ctx context.Context, input *T) (*T, error) {
	rec := PT(input).Meta()
	rec.ID = ""
	rec.Version = 0

	if err := PT(input).Validate(); err != nil {
		return nil, &storage.ValidationError{Err: err}
	}

	created, err := e.store.Save(ctx, input)
	if err != nil {
		return nil, err
	}
	e.evictAggregates(ctx)
	return created, nil
}

// GetByID returns the entity for id, cache-aside. Absence is reported via
// the bool, not an error.
func (e *Engine[T, PT]) GetByID(ctx context.Context, id string) (*T, bool, error) {
	key := e.keys.Key(e.namespace, opGetByID, id)
	e.track(key)

	item, err := cache.GetOrFetch(ctx, e.cache, key, func(ctx context.Context) (*T, error) {
		row, ok, err := e.store.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		if !ok {
			return (*T)(nil), nil
		}
		return row, nil
	})
	if err != nil {
		if isStorageError(err) {
			return nil, false, err
		}
		e.log.WarnContext(ctx, "cache read failed, falling back to store",
			"namespace", e.namespace, "key", key, "error", err)
		return e.store.Get(ctx, id)
	}
	if item == nil {
		return nil, false, nil
	}
	return item, true, nil
}

// List pages through the collection. Pagination results are never cached.
func (e *Engine[T, PT]) List(ctx context.Context, req storage.PageRequest) ([]*T, int, error) {
	return e.store.Page(ctx, req)
}

// Update performs a full replace: every business field of input overwrites
// the stored value. The save carries the version from the caller's snapshot,
// so an input holding a version the store has since moved past fails with
// storage.ErrConflict; the caller reloads and retries. Identity and creation
// time always come from the stored row.
func (e *Engine[T, PT]) Update(ctx context.Context, id string, input *T) (*T, error) {
	current, ok, err := e.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: id %s", storage.ErrNotFound, id)
	}

	rec := PT(input).Meta()
	cur := PT(current).Meta()
	rec.ID = cur.ID
	rec.CreatedAt = cur.CreatedAt
	rec.UpdatedAt = cur.UpdatedAt
	if err := PT(input).Validate(); err != nil {
		return nil, &storage.ValidationError{Err: err}
	}

	saved, err := e.store.Save(ctx, input)
	if err != nil {
		return nil, err
	}
	e.evictEntity(ctx, id)
	return saved, nil
}

// PartialUpdate merges only the fields present in patch into the stored
// entity, leaving everything else untouched.
func (e *Engine[T, PT]) PartialUpdate(ctx context.Context, id string, patch model.Patch[T]) (*T, error) {
	current, ok, err := e.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: id %s", storage.ErrNotFound, id)
	}

	patch.Apply(current)
	if err := PT(current).Validate(); err != nil {
		return nil, &storage.ValidationError{Err: err}
	}

	saved, err := e.store.Save(ctx, current)
	if err != nil {
		return nil, err
	}
	e.evictEntity(ctx, id)
	return saved, nil
}

// Delete removes the row and evicts its cache entry. Deleting an absent id
// fails with storage.ErrNotFound.
func (e *Engine[T, PT]) Delete(ctx context.Context, id string) error {
	exists, err := e.store.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: id %s", storage.ErrNotFound, id)
	}
	if _, err := e.store.Delete(ctx, id); err != nil {
		return err
	}
	e.evictEntity(ctx, id)
	return nil
}

// Search filters the collection by the given predicates. Results are not
// cached.
func (e *Engine[T, PT]) Search(ctx context.Context, preds []storage.Predicate, req storage.PageRequest) ([]*T, int, error) {
	return e.store.Search(ctx, preds, req)
}

// Active returns the resource's active rows, cached under a fixed key and
// evicted on every successful write.
func (e *Engine[T, PT]) Active(ctx context.Context) ([]*T, error) {
	key := e.keys.Key(e.namespace, opActive)
	e.track(key)

	load := func(ctx context.Context) ([]*T, error) {
		rows, _, err := e.store.Search(ctx, e.activePreds, storage.PageRequest{Limit: e.activeLimit})
		return rows, err
	}

	items, err := cache.GetOrFetch(ctx, e.cache, key, load)
	if err != nil {
		if isStorageError(err) {
			return nil, err
		}
		e.log.WarnContext(ctx, "cache read failed, falling back to store",
			"namespace", e.namespace, "key", key, "error", err)
		return load(ctx)
	}
	return items, nil
}

// EvictAll drops every tracked cache entry for this resource. Manual
// fallback for when an eviction was lost.
func (e *Engine[T, PT]) EvictAll(ctx context.Context) {
	e.evictPrefix(ctx, e.namespace+cache.KeySeparator)
}

func (e *Engine[T, PT]) track(key string) {
	e.registry.Store(key, struct{}{})
}

// evictEntity removes the single-id entry plus the aggregate views.
func (e *Engine[T, PT]) evictEntity(ctx context.Context, id string) {
	e.evictKey(ctx, e.keys.Key(e.namespace, opGetByID, id))
	e.evictAggregates(ctx)
}

func (e *Engine[T, PT]) evictAggregates(ctx context.Context) {
	e.evictPrefix(ctx, e.keys.Key(e.namespace, opActive))
}

func (e *Engine[T, PT]) evictKey(ctx context.Context, key string) {
	if err := e.cache.Delete(ctx, key); err != nil {
		// Eviction is best effort; the entry goes stale until TTL.
		e.log.WarnContext(ctx, "cache eviction failed",
			"namespace", e.namespace, "key", key, "error", err)
	}
	e.registry.Delete(key)
}

func (e *Engine[T, PT]) evictPrefix(ctx context.Context, prefix string) {
	var keys []string
	e.registry.Range(func(key string, _ struct{}) bool {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
		return true
	})
	for _, key := range keys {
		e.evictKey(ctx, key)
	}
}

func isStorageError(err error) bool {
	return errors.Is(err, storage.ErrNotFound) ||
		errors.Is(err, storage.ErrConflict) ||
		errors.Is(err, storage.ErrInvalidQuery) ||
		errors.Is(err, storage.ErrUnavailable) ||
		errors.Is(err, storage.ErrValidation)
}
