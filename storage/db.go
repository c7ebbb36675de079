package storage

import (
	"context"
	"database/sql"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/mattn/go-sqlite3"
)

// OpenSQLite opens a sqlite-backed bun database. DSN examples:
// "file:pages.db" for a file, "file::memory:?cache=shared" for tests.
func OpenSQLite(dsn string) (*bun.DB, error) {
	sqlDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db := bun.NewDB(sqlDB, sqlitedialect.New())
	db.SetMaxOpenConns(1)
	return db, nil
}

// NewPostgresDB wraps an existing *sql.DB with the postgres dialect. The
// caller owns driver selection and pooling.
func NewPostgresDB(sqlDB *sql.DB) *bun.DB {
	return bun.NewDB(sqlDB, pgdialect.New())
}

// CreatePagesTable creates the pages table if missing. Intended for sqlite
// setups and tests; production schemas run real migrations.
func CreatePagesTable(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().
		Model((*Page)(nil)).
		IfNotExists().
		Exec(ctx)
	return err
}
