package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectSQLiteCreatesDirectoryAndMigrates(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "nested", "db.sqlite")

	database, err := Connect(ctx, DriverSQLite, dbPath)
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, Migrate(ctx, database, DriverSQLite))
	// Migrations are idempotent.
	require.NoError(t, Migrate(ctx, database, DriverSQLite))

	for _, table := range []string{"users", "categories", "items"} {
		var name string
		err := database.QueryRowContext(ctx,
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table,
		).Scan(&name)
		assert.NoError(t, err, "table %s should exist", table)
	}

	var fk int
	require.NoError(t, database.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&fk))
	assert.Equal(t, 1, fk)
}

func TestConnectRejectsBadInput(t *testing.T) {
	ctx := context.Background()

	_, err := Connect(ctx, DriverSQLite, "")
	assert.Error(t, err)

	_, err = Connect(ctx, "mysql", "root@/catalog")
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestMigrateRejectsUnknownDriver(t *testing.T) {
	ctx := context.Background()
	database, err := Connect(ctx, DriverSQLite, filepath.Join(t.TempDir(), "db.sqlite"))
	require.NoError(t, err)
	defer database.Close()

	assert.Error(t, Migrate(ctx, database, "oracle"))
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "db.sqlite?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", sqliteDSN("db.sqlite"))
	assert.Equal(t, "file:db.sqlite?cache=shared&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", sqliteDSN("file:db.sqlite?cache=shared"))
}
