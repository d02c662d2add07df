// Package model defines the persisted resource types and the small amount of
// per-resource declaration the rest of the system runs on: required-field
// validation, the column whitelist for predicate queries, and patch types for
// partial updates.
//
// Every resource embeds Record, which carries the server-assigned fields
// (identity, optimistic-concurrency version, timestamps). Business fields that
// are nullable in the schema are pointer fields so a partial update can tell
// "absent" apart from "zero".
package model

import "time"

// Record holds the server-assigned portion of every resource. The storage
// layer owns these fields: ID is assigned at first save and never changes,
// Version increments on every successful update, CreatedAt is written once.
type Record struct {
	ID        string    `bun:"id,pk" json:"id"`
	Version   int64     `bun:"version,notnull" json:"version"`
	CreatedAt time.Time `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull" json:"updated_at"`
}

// Meta exposes the embedded record so generic code can read and assign the
// server-owned fields without reflection.
func (r *Record) Meta() *Record { return r }

// Entity is the behaviour every resource pointer provides.
type Entity interface {
	Meta() *Record
	Validate() error
	SearchColumns() []string
}

// EntityPtr constrains a pointer-to-resource type. Generic components take the
// value type T and recover the Entity methods through *T.
type EntityPtr[T any] interface {
	*T
	Entity
}

// Patch applies the fields present in a partial update to an entity, leaving
// everything else untouched.
type Patch[T any] interface {
	Apply(*T)
}
