package services

import (
	"database/sql"
	"testing"

	"github.com/mateusmlo/daily-diet-be/internal/database"
	"github.com/stretchr/testify/require"
)

// newTestDB opens an in-memory sqlite database with the full schema applied.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.New("file::memory:")
	require.NoError(t, err)
	// A single connection keeps the in-memory database alive for the whole
	// test.
	db.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() { db.Close() })
	return db
}
