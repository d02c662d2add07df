package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"corecms/model"
)

// Interface assertion so a drifted method set fails at compile time.
var _ Store[model.Banner] = (*BunStore[model.Banner, *model.Banner])(nil)

// BunStore implements Store[T] on top of a bun.DB. The second type parameter
// recovers the model.Entity methods from *T; callers only name T, the
// pointer parameter is inferred.
type BunStore[T any, PT model.EntityPtr[T]] struct {
	db          *bun.DB
	defaultSort string
	defaultDesc bool
	sortable    []string
}

// StoreOption configures a BunStore.
type StoreOption func(*storeOptions)

type storeOptions struct {
	sort string
	desc bool
}

// WithDefaultSort overrides the ascending-by-id default ordering for Page and
// Search when the request does not name a sort column.
func WithDefaultSort(column string, desc bool) StoreOption {
	return func(o *storeOptions) {
		o.sort = column
		o.desc = desc
	}
}

// NewBunStore builds a store for one resource. Usage:
//
//	store := storage.NewBunStore[model.Banner](db)
func NewBunStore[T any, PT model.EntityPtr[T]](db *bun.DB, opts ...StoreOption) *BunStore[T, PT] {
	o := storeOptions{sort: "id"}
	for _, opt := range opts {
		opt(&o)
	}

	var probe T
	sortable := append(PT(&probe).SearchColumns(), "id", "version", "created_at", "updated_at")

	return &BunStore[T, PT]{
		db:          db,
		defaultSort: o.sort,
		defaultDesc: o.desc,
		sortable:    sortable,
	}
}

func (s *BunStore[T, PT]) Get(ctx context.Context, id string) (*T, bool, error) {
	entity := new(T)
	err := s.db.NewSelect().Model(entity).Where("id = ?", id).Limit(1).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w: get: %w", ErrUnavailable, err)
	}
	return entity, true, nil
}

func (s *BunStore[T, PT]) Exists(ctx context.Context, id string) (bool, error) {
	exists, err := s.db.NewSelect().Model((*T)(nil)).Where("id = ?", id).Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("%w: exists: %w", ErrUnavailable, err)
	}
	return exists, nil
}

func (s *BunStore[T, PT]) Page(ctx context.Context, req PageRequest) ([]*T, int, error) {
	return s.Search(ctx, nil, req)
}

func (s *BunStore[T, PT]) Search(ctx context.Context, preds []Predicate, req PageRequest) ([]*T, int, error) {
	if err := s.normalize(&req); err != nil {
		return nil, 0, err
	}

	var items []*T
	q := s.db.NewSelect().Model(&items)

	for _, p := range preds {
		if !slices.Contains(s.sortable, p.Column) {
			return nil, 0, fmt.Errorf("%w: column %q is not searchable", ErrInvalidQuery, p.Column)
		}
		switch p.Op {
		case OpContains:
			pattern := "%" + strings.ToLower(fmt.Sprint(p.Value)) + "%"
			q = q.Where("LOWER(?) LIKE ?", bun.Ident(p.Column), pattern)
		case OpEq:
			q = q.Where("? = ?", bun.Ident(p.Column), p.Value)
		case OpGte:
			q = q.Where("? >= ?", bun.Ident(p.Column), p.Value)
		case OpLte:
			q = q.Where("? <= ?", bun.Ident(p.Column), p.Value)
		default:
			return nil, 0, fmt.Errorf("%w: unknown operator %q", ErrInvalidQuery, p.Op)
		}
	}

	dir := "ASC"
	if req.Desc {
		dir = "DESC"
	}
	q = q.OrderExpr("? ?", bun.Ident(req.Sort), bun.Safe(dir)).
		Limit(req.Limit).
		Offset(req.Offset)

	total, err := q.ScanAndCount(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: search: %w", ErrUnavailable, err)
	}
	return items, total, nil
}

// Save inserts when the entity has no id, assigning id, timestamps and
// version 0. Otherwise it updates under a version precondition inside a
// transaction: zero affected rows means either the row vanished (ErrNotFound)
// or someone else won the write (ErrConflict).
func (s *BunStore[T, PT]) Save(ctx context.Context, entity *T) (*T, error) {
	rec := PT(entity).Meta()
	now := time.Now().UTC()

	if rec.ID == "" {
		rec.ID = uuid.New().String()
		rec.Version = 0
		rec.CreatedAt = now
		rec.UpdatedAt = now
		if _, err := s.db.NewInsert().Model(entity).Exec(ctx); err != nil {
			rec.ID = ""
			return nil, fmt.Errorf("%w: insert: %w", ErrUnavailable, err)
		}
		return entity, nil
	}

	prev := rec.Version
	prevUpdated := rec.UpdatedAt
	rec.Version = prev + 1
	rec.UpdatedAt = now

	err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewUpdate().
			Model(entity).
			ExcludeColumn("created_at").
			Where("id = ?", rec.ID).
			Where("version = ?", prev).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("%w: update: %w", ErrUnavailable, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: update: %w", ErrUnavailable, err)
		}
		if affected == 1 {
			return nil
		}

		exists, err := tx.NewSelect().Model((*T)(nil)).Where("id = ?", rec.ID).Exists(ctx)
		if err != nil {
			return fmt.Errorf("%w: update: %w", ErrUnavailable, err)
		}
		if exists {
			return fmt.Errorf("%w: id %s at version %d", ErrConflict, rec.ID, prev)
		}
		return fmt.Errorf("%w: id %s", ErrNotFound, rec.ID)
	})
	if err != nil {
		// Leave the caller's snapshot as it was loaded.
		rec.Version = prev
		rec.UpdatedAt = prevUpdated
		return nil, err
	}
	return entity, nil
}

func (s *BunStore[T, PT]) Delete(ctx context.Context, id string) (bool, error) {
	res, err := s.db.NewDelete().Model((*T)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("%w: delete: %w", ErrUnavailable, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: delete: %w", ErrUnavailable, err)
	}
	return affected > 0, nil
}

func (s *BunStore[T, PT]) normalize(req *PageRequest) error {
	if req.Limit <= 0 {
		return fmt.Errorf("%w: limit must be > 0, got %d", ErrInvalidQuery, req.Limit)
	}
	if req.Offset < 0 {
		return fmt.Errorf("%w: offset must be >= 0, got %d", ErrInvalidQuery, req.Offset)
	}
	if req.Sort == "" {
		req.Sort = s.defaultSort
		req.Desc = s.defaultDesc
	}
	if !slices.Contains(s.sortable, req.Sort) {
		return fmt.Errorf("%w: column %q is not sortable", ErrInvalidQuery, req.Sort)
	}
	return nil
}
