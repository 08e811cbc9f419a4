package services

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	model "workbase.com/workbase/internal/models"
)

// setupTestDB opens a private in-memory database. One connection keeps every
// query on the same memory store.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Discard,
		TranslateError: true,
	})
	require.NoError(t, err, "failed to connect database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...), "failed to migrate database")
	return db
}

// setupPooledTestDB opens a file database behind a pool of conns
// connections, so concurrent callers really run side by side. Writers take
// the lock at BEGIN and wait for each other instead of failing.
func setupPooledTestDB(t *testing.T, conns int) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "workbase.db") + "?_busy_timeout=5000&_txlock=immediate"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Discard,
		TranslateError: true,
	})
	require.NoError(t, err, "failed to connect database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(conns)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...), "failed to migrate database")
	return db
}

// fixedClock returns a clock pinned at start that tests can advance.
type fixedClock struct {
	at time.Time
}

func newFixedClock() *fixedClock {
	return &fixedClock{at: time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)}
}

func (c *fixedClock) now() time.Time {
	return c.at
}

func (c *fixedClock) advance(d time.Duration) {
	c.at = c.at.Add(d)
}

func newOwner() string {
	return "user-" + uuid.NewString()[:8]
}
