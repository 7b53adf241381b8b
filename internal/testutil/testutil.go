package testutil

import (
	"testing"

	"poetry/internal/db"
	"poetry/internal/poem"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenTestDB returns a fresh in-memory sqlite database with the full schema
// and foreign keys enforced.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), db.Config())
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	// Every new connection would open a separate in-memory database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrateAndIndexes(gdb))
	return gdb
}

// CreatePoem inserts a poem with the given verses and returns its id.
func CreatePoem(t *testing.T, gdb *gorm.DB, title string, verses ...string) uint64 {
	t.Helper()

	p := poem.Poem{Title: title, Author: "Test Author"}
	for i, v := range verses {
		p.Verses = append(p.Verses, poem.Verse{VerseOrder: i + 1, VerseText: v})
	}
	require.NoError(t, gdb.Create(&p).Error)
	return p.ID
}
