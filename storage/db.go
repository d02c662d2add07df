package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	// Drivers for the two supported backends.
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"corecms/model"
)

// Config selects the relational backend.
type Config struct {
	// Driver is "sqlite3" or "postgres".
	Driver string
	// DSN is the driver-specific connection string. For an in-memory sqlite
	// database shared across connections use "file::memory:?cache=shared".
	DSN string
	// MaxOpenConns limits the pool; zero keeps the driver default.
	MaxOpenConns int
}

// Open connects to the configured backend and wraps it in a bun.DB with the
// matching dialect.
func Open(cfg Config) (*bun.DB, error) {
	sqldb, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrUnavailable, cfg.Driver, err)
	}
	if cfg.MaxOpenConns > 0 {
		sqldb.SetMaxOpenConns(cfg.MaxOpenConns)
	}

	switch cfg.Driver {
	case "sqlite3":
		return bun.NewDB(sqldb, sqlitedialect.New()), nil
	case "postgres":
		return bun.NewDB(sqldb, pgdialect.New()), nil
	default:
		sqldb.Close()
		return nil, fmt.Errorf("%w: unsupported driver %q", ErrInvalidQuery, cfg.Driver)
	}
}

// allModels lists every persisted resource, for schema management.
func allModels() []any {
	return []any{
		(*model.Advertise)(nil),
		(*model.Banner)(nil),
		(*model.Contact)(nil),
		(*model.Home)(nil),
		(*model.Login)(nil),
		(*model.Navbar)(nil),
		(*model.Register)(nil),
		(*model.Service)(nil),
		(*model.Services)(nil),
		(*model.Testimonial)(nil),
	}
}

// CreateSchema creates any missing resource tables.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	for _, m := range allModels() {
		if _, err := db.NewCreateTable().Model(m).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("%w: create table for %T: %w", ErrUnavailable, m, err)
		}
	}
	return nil
}

// ResetSchema drops and recreates every resource table. Test/demo use only.
func ResetSchema(ctx context.Context, db *bun.DB) error {
	for _, m := range allModels() {
		if _, err := db.NewDropTable().Model(m).IfExists().Exec(ctx); err != nil {
			return fmt.Errorf("%w: drop table for %T: %w", ErrUnavailable, m, err)
		}
	}
	return CreateSchema(ctx, db)
}
