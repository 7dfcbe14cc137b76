// Package dbtest provides a migrated SQLite database for tests.
package dbtest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/fkhayef/quicksplit/internal/database"
)

// Open returns a fresh database in t.TempDir() that is closed on cleanup.
func Open(t *testing.T) *sqlx.DB {
	t.Helper()

	url := "sqlite://" + filepath.Join(t.TempDir(), "test.db")
	db, err := database.Open(context.Background(), url)
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })
	return db
}
