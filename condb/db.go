// Package condb opens the relational store and applies the embedded schema
// migrations. SQLite (file-backed) is the default; PostgreSQL is used when a
// postgres:// URL is configured.
package condb

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"karyawan/config"
	"karyawan/migrations"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

type DB struct {
	*sql.DB
	Dialect goose.Dialect
}

// Open connects to the store selected by cfg and verifies it with a ping.
func Open(ctx context.Context, cfg *config.Config) (*DB, error) {
	if cfg.UsePostgres() {
		return OpenPostgres(ctx, cfg.DatabaseURL)
	}
	return OpenSQLite(ctx, cfg.SQLitePath)
}

// OpenSQLite opens (creating if absent) the SQLite database at path.
// ":memory:" is accepted for tests.
func OpenSQLite(ctx context.Context, path string) (*DB, error) {
	dsn := path
	if path != ":memory:" {
		dsn = "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// one writer; also keeps a :memory: database on a single connection
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return &DB{DB: db, Dialect: goose.DialectSQLite3}, nil
}

// OpenPostgres opens a pgx-backed database/sql pool.
func OpenPostgres(ctx context.Context, url string) (*DB, error) {
	connConfig, err := pgx.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}

	db := stdlib.OpenDB(*connConfig)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &DB{DB: db, Dialect: goose.DialectPostgres}, nil
}

// Migrate applies pending migrations for the store's dialect. Running it
// again on an up-to-date schema is a no-op. It returns the number of
// migrations applied.
func (db *DB) Migrate(ctx context.Context) (int, error) {
	dir := "sqlite"
	if db.Dialect == goose.DialectPostgres {
		dir = "postgres"
	}

	fsys, err := fs.Sub(migrations.Migrations, dir)
	if err != nil {
		return 0, err
	}

	provider, err := goose.NewProvider(db.Dialect, db.DB, fsys)
	if err != nil {
		return 0, fmt.Errorf("goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("migrate: %w", err)
	}
	return len(results), nil
}
