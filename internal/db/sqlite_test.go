package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *SQLiteDB {
	t.Helper()
	database, err := NewSQLiteDB(context.Background(), filepath.Join(t.TempDir(), "nested", "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func countEvents(t *testing.T, database *SQLiteDB) int {
	t.Helper()
	var n int
	require.NoError(t, database.DB.Get(&n, "SELECT COUNT(1) FROM events"))
	return n
}

func TestMigrationsSeedLookupTables(t *testing.T) {
	database := openTestDB(t)

	var roles, statuses, slotStatuses int
	require.NoError(t, database.DB.Get(&roles, "SELECT COUNT(1) FROM roles"))
	require.NoError(t, database.DB.Get(&statuses, "SELECT COUNT(1) FROM project_statuses"))
	require.NoError(t, database.DB.Get(&slotStatuses, "SELECT COUNT(1) FROM slot_statuses"))
	assert.Equal(t, 6, roles)
	assert.Equal(t, 5, statuses)
	assert.Equal(t, 3, slotStatuses)

	// Re-running is a no-op
	require.NoError(t, database.Migrate(context.Background()))
}

func TestForeignKeysEnforced(t *testing.T) {
	database := openTestDB(t)

	_, err := database.DB.Exec("INSERT INTO projects (event_id, status_id, idea) VALUES (999, 1, 'x')")
	assert.Error(t, err)
}

func TestWithTransactionCommits(t *testing.T) {
	database := openTestDB(t)

	err := database.WithTransaction(context.Background(), func(tx *sqlx.Tx) error {
		_, err := tx.Exec("INSERT INTO events (name, start_time, end_time) VALUES ('Spring', 1, 2)")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, countEvents(t, database))
}

func TestWithTransactionRollsBackOnError(t *testing.T) {
	database := openTestDB(t)
	boom := errors.New("boom")

	err := database.WithTransaction(context.Background(), func(tx *sqlx.Tx) error {
		if _, err := tx.Exec("INSERT INTO events (name, start_time, end_time) VALUES ('Spring', 1, 2)"); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, countEvents(t, database))
}

func TestWithTransactionRollsBackOnPanic(t *testing.T) {
	database := openTestDB(t)

	assert.Panics(t, func() {
		_ = database.WithTransaction(context.Background(), func(tx *sqlx.Tx) error {
			_, _ = tx.Exec("INSERT INTO events (name, start_time, end_time) VALUES ('Spring', 1, 2)")
			panic("boom")
		})
	})
	assert.Equal(t, 0, countEvents(t, database))
}

func TestPing(t *testing.T) {
	database := openTestDB(t)
	assert.NoError(t, database.Ping(context.Background()))
}
