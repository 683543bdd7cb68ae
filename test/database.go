package test

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/tally-finance/backend/internal/models"
	"github.com/tally-finance/backend/internal/store"
	"gorm.io/gorm"
)

// TmpFile returns the path to a unique file to be used in tests
func TmpFile(t *testing.T) string {
	dir := t.TempDir()
	return filepath.Join(dir, uuid.New().String())
}

// DB opens a migrated SQLite database in a temporary file. It is closed
// when the test finishes.
func DB(t *testing.T) *gorm.DB {
	db, err := models.Connect(sqlite.Open(models.SQLiteDSN(TmpFile(t))))
	require.NoError(t, err, "Database connection failed")

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db
}

// Store returns a store on a fresh database.
func Store(t *testing.T) *store.Store {
	return store.New(DB(t), store.NewHub())
}

// CloseDB closes the database connection of the store. This enables testing
// the handling of database errors.
func CloseDB(t *testing.T, s *store.Store) {
	require.NoError(t, s.Close(), "Failed to close the database")
}
