package database

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"soullink-tracker/migrations"
)

// Manager owns the gorm handle over the SQLite store file. Restore and
// import replace that file on disk, so the handle must be closable and
// reopenable; everything that touches the store goes through DB().
type Manager struct {
	path string

	mu sync.RWMutex
	db *gorm.DB
}

func Open(path string) (*Manager, error) {
	m := &Manager{path: path}
	if err := m.open(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manager) open() error {
	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	db, err := gorm.Open(sqlite.Open(m.path), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("open sqlite store %s: %w", m.path, err)
	}
	m.db = db
	return nil
}

func (m *Manager) DB() *gorm.DB {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.db
}

func (m *Manager) Path() string {
	return m.path
}

// Reopen drops every pooled connection and opens the store file
// afresh. Required after the file was swapped underneath us, otherwise
// reads keep seeing pages of the old database.
func (m *Manager) Reopen() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.db != nil {
		if sqlDB, err := m.db.DB(); err == nil {
			sqlDB.Close()
		}
	}
	return m.open()
}

func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.db == nil {
		return nil
	}
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	m.db = nil
	return sqlDB.Close()
}

// Migrate runs the tracker schema migrations.
func Migrate(db *gorm.DB) error {
	migrator := migrations.NewMigrator(db)
	for _, migration := range migrations.GetTrackerMigrations() {
		migrator.AddMigration(migration)
	}
	return migrator.Migrate()
}

// DropAll removes every tracker table including the migration
// bookkeeping, so a following Migrate rebuilds the schema from
// scratch. Used by the full reset.
func DropAll(db *gorm.DB) error {
	return db.Exec(`
		DROP TABLE IF EXISTS pokemon_catches;
		DROP TABLE IF EXISTS level_caps;
		DROP TABLE IF EXISTS global_orders;
		DROP TABLE IF EXISTS routes;
		DROP TABLE IF EXISTS players;
		DROP TABLE IF EXISTS migrations;
	`).Error
}
