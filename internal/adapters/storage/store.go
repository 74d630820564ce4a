// Package storage implements the repository ports on top of GORM. Every
// read filters soft-deleted rows and every delete is a soft delete.
//
// Construction:
//
//	store := storage.New(db)
//	repos := store.Repositories()
//	err := store.WithinTx(ctx, func(tx ports.Repositories) error { ... })
package storage

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/jsamuelsen11/projectledger/internal/ports"
)

// Compile-time interface check.
var _ ports.Transactor = (*Store)(nil)

// Store owns the GORM handle and hands out repositories bound to it or to a
// transaction.
type Store struct {
	db  *gorm.DB
	now func() time.Time
}

// New creates a Store over db.
func New(db *gorm.DB) *Store {
	return &Store{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// Repositories returns repositories bound to the connection pool.
func (s *Store) Repositories() ports.Repositories {
	return s.bind(s.db)
}

// WithinTx runs fn in one transaction. Any error returned by fn, or a panic,
// rolls back every write made through the repositories passed to fn.
func (s *Store) WithinTx(ctx context.Context, fn func(tx ports.Repositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(s.bind(tx))
	})
}

// AutoMigrate creates or updates all tables.
func (s *Store) AutoMigrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(allModels()...); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}
	return nil
}

func (s *Store) bind(db *gorm.DB) ports.Repositories {
	return ports.Repositories{
		Projects:    &projectRepo{db: db, now: s.now},
		Assignments: &assignmentRepo{db: db, now: s.now},
		Allocations: &allocationRepo{db: db, now: s.now},
		Milestones:  &milestoneRepo{db: db, now: s.now},
		Categories:  &categoryRepo{db: db, now: s.now},
		Expenses:    &expenseRepo{db: db, now: s.now},
	}
}

// live restricts a query to rows of table that are not soft-deleted.
func live(table string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(table+".is_deleted = ?", false)
	}
}
