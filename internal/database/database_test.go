package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseURL(t *testing.T) {
	tests := []struct {
		url        string
		wantDriver string
		wantDSN    string
		wantErr    bool
	}{
		{"postgres://u:p@localhost:5432/db", DriverPostgres, "postgres://u:p@localhost:5432/db", false},
		{"postgresql://localhost/db", DriverPostgres, "postgresql://localhost/db", false},
		{"sqlite://data/app.db", DriverSQLite, "data/app.db", false},
		{"sqlite://", "", "", true},
		{"mysql://localhost/db", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			driver, dsn, err := parseURL(tt.url)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDriver, driver)
			assert.Equal(t, tt.wantDSN, dsn)
		})
	}
}

func TestOpenSQLiteRunsMigrationsIdempotently(t *testing.T) {
	ctx := context.Background()
	url := "sqlite://" + filepath.Join(t.TempDir(), "nested", "app.db")

	db, err := Open(ctx, url)
	require.NoError(t, err)
	defer db.Close()

	// second run must not fail on existing tables
	require.NoError(t, Migrate(ctx, db))

	var count int
	err = db.GetContext(ctx, &count, `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('groups', 'group_members', 'expenses', 'participants')`)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}
