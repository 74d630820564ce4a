// Package testutil provides fixtures shared by package tests.
package testutil

import (
	"context"
	"log/slog"
	"testing"

	"gorm.io/gorm"

	"github.com/jsamuelsen11/projectledger/internal/adapters/storage"
	"github.com/jsamuelsen11/projectledger/internal/platform/config"
	"github.com/jsamuelsen11/projectledger/internal/platform/database"
)

// NewDB opens a private in-memory SQLite database and migrates it. A single
// connection keeps the database alive for the life of the test; it also
// means concurrent transactions queue at the pool.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(&config.DatabaseConfig{
		Driver:       "sqlite",
		DSN:          "file::memory:?_foreign_keys=on",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("opening sqlite: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	if err := storage.New(db).AutoMigrate(context.Background()); err != nil {
		t.Fatalf("migrating sqlite: %v", err)
	}
	return db
}

// NewStore returns a Store over a fresh NewDB database.
func NewStore(t *testing.T) *storage.Store {
	t.Helper()
	return storage.New(NewDB(t))
}

// RowCounts reports the rows of a table: all of them, and those not
// soft-deleted.
type RowCounts struct {
	All  int64
	Live int64
}

// CountRows counts every row of table and the live subset.
func CountRows(t *testing.T, db *gorm.DB, table string) RowCounts {
	t.Helper()

	var c RowCounts
	if err := db.Table(table).Count(&c.All).Error; err != nil {
		t.Fatalf("counting %s: %v", table, err)
	}
	if err := db.Table(table).Where("is_deleted = ?", false).Count(&c.Live).Error; err != nil {
		t.Fatalf("counting live %s: %v", table, err)
	}
	return c
}
