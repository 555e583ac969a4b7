// Package dbtest provides throwaway migrated databases for tests.
package dbtest

import (
	"testing"

	"citylegends/backend/internal/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// New returns a fresh in-memory SQLite database with the schema migrated. Each
// call gets its own database, so tests never see each other's rows.
func New(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := database.Open("file::memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
