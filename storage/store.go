// Package storage is the data-access port: a generic store contract each
// resource binds to, its bun-backed implementation, and the error taxonomy
// shared with the lifecycle engine. The store is the sole owner of the
// server-assigned fields on model.Record: ids are assigned at first save,
// versions are compare-and-swapped on every update, timestamps are written
// here and nowhere else.
package storage

import "context"

// PageRequest describes an offset/limit window over a resource collection.
// Sort names a column; empty means the store's default (ascending id unless
// the store was built with another default).
type PageRequest struct {
	Offset int
	Limit  int
	Sort   string
	Desc   bool
}

// Op is a predicate operator.
type Op string

const (
	// OpContains matches a case-insensitive substring on a text column.
	OpContains Op = "contains"
	// OpEq matches a column for equality.
	OpEq Op = "eq"
	// OpGte matches column >= value.
	OpGte Op = "gte"
	// OpLte matches column <= value.
	OpLte Op = "lte"
)

// Predicate is one filter term of a search. Predicates are ANDed together;
// columns must appear in the resource's SearchColumns whitelist.
type Predicate struct {
	Column string
	Op     Op
	Value  any
}

// Contains builds a case-insensitive substring predicate.
func Contains(column, fragment string) Predicate {
	return Predicate{Column: column, Op: OpContains, Value: fragment}
}

// Eq builds an equality predicate.
func Eq(column string, value any) Predicate {
	return Predicate{Column: column, Op: OpEq, Value: value}
}

// Gte builds a >= predicate.
func Gte(column string, value any) Predicate {
	return Predicate{Column: column, Op: OpGte, Value: value}
}

// Lte builds a <= predicate.
func Lte(column string, value any) Predicate {
	return Predicate{Column: column, Op: OpLte, Value: value}
}

// Store is the generic data-access contract for one resource type.
//
// Get reports absence via the bool, not an error. Save performs an insert
// when the entity carries no id, otherwise a version-checked update that
// fails with ErrConflict on a stale version. Delete is idempotent and
// reports whether a row was removed.
type Store[T any] interface {
	Get(ctx context.Context, id string) (*T, bool, error)
	Page(ctx context.Context, req PageRequest) ([]*T, int, error)
	Save(ctx context.Context, entity *T) (*T, error)
	Delete(ctx context.Context, id string) (bool, error)
	Exists(ctx context.Context, id string) (bool, error)
	Search(ctx context.Context, preds []Predicate, req PageRequest) ([]*T, int, error)
}
