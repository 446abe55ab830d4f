package condb

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"karyawan/config"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMemory(t *testing.T) *DB {
	t.Helper()
	db, err := OpenSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func tableExists(t *testing.T, db *DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = $1`, name).Scan(&n)
	require.NoError(t, err)
	return n == 1
}

func TestOpen_DefaultsToSQLiteFile(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SQLitePath = filepath.Join(t.TempDir(), "karyawan.db")

	db, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, goose.DialectSQLite3, db.Dialect)
	assert.FileExists(t, cfg.SQLitePath)
}

func TestOpen_BadPostgresURL(t *testing.T) {
	cfg := &config.Config{DatabaseURL: "postgres://%zz"}

	_, err := Open(context.Background(), cfg)
	require.Error(t, err)
}

func TestMigrate_CreatesTablesAndIsIdempotent(t *testing.T) {
	db := openMemory(t)
	ctx := context.Background()

	n, err := db.Migrate(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.True(t, tableExists(t, db, "users"))
	assert.True(t, tableExists(t, db, "employees"))

	n, err = db.Migrate(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n, "second run must be a no-op")
}

func TestMigrate_UsernameIsUnique(t *testing.T) {
	db := openMemory(t)
	_, err := db.Migrate(context.Background())
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO users (username, password_hash) VALUES ('admin', 'x')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO users (username, password_hash) VALUES ('admin', 'y')`)
	require.Error(t, err)
}

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	db := openMemory(t)
	_, err := db.Migrate(context.Background())
	require.NoError(t, err)

	err = WithTx(context.Background(), db.DB, func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO employees (name) VALUES ('ok')`)
		return err
	})
	require.NoError(t, err)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM employees`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	db := openMemory(t)
	_, err := db.Migrate(context.Background())
	require.NoError(t, err)

	boom := errors.New("boom")
	err = WithTx(context.Background(), db.DB, func(ctx context.Context, tx DBTX) error {
		_, e := tx.ExecContext(ctx, `INSERT INTO employees (name) VALUES ('fail')`)
		require.NoError(t, e)
		return boom
	})
	require.ErrorIs(t, err, boom)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM employees`).Scan(&n))
	assert.Equal(t, 0, n)
}

func TestWithTx_RollsBackAndRethrowsPanic(t *testing.T) {
	db := openMemory(t)
	_, err := db.Migrate(context.Background())
	require.NoError(t, err)

	assert.Panics(t, func() {
		_ = WithTx(context.Background(), db.DB, func(ctx context.Context, tx DBTX) error {
			_, _ = tx.ExecContext(ctx, `INSERT INTO employees (name) VALUES ('panic')`)
			panic("kaboom")
		})
	})

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM employees`).Scan(&n))
	assert.Equal(t, 0, n)
}
