// Package testdb opens throwaway SQLite databases with the production schema for tests.
package testdb

import (
	"path/filepath"
	"testing"

	"github.com/ahmetcoskunkizilkaya/stresscast/internal/database"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open returns a migrated database backed by a file in t.TempDir(). Foreign keys are enforced.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := database.MigrateLogs(db); err != nil {
		t.Fatalf("migrate logs: %v", err)
	}

	t.Cleanup(func() {
		_ = database.Close(db)
	})
	return db
}
