package migrations

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
)

// Migration is the bookkeeping row recording which migrations already
// ran, grouped into batches so a rollback undoes one batch at a time.
type Migration struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"unique;not null"`
	Batch     int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

type MigrationFunc func(*gorm.DB) error

type MigrationDefinition struct {
	Name string
	Up   MigrationFunc
	Down MigrationFunc
}

type Migrator struct {
	db         *gorm.DB
	migrations []MigrationDefinition
}

func NewMigrator(db *gorm.DB) *Migrator {
	db.AutoMigrate(&Migration{})
	return &Migrator{db: db}
}

func (m *Migrator) AddMigration(migration MigrationDefinition) {
	m.migrations = append(m.migrations, migration)
}

// Migrate runs every registered migration that has not run yet, each
// in its own transaction together with its bookkeeping row.
func (m *Migrator) Migrate() error {
	batch := m.nextBatch()

	for _, migration := range m.migrations {
		if m.hasRun(migration.Name) {
			continue
		}

		log.Printf("migrating: %s", migration.Name)

		tx := m.db.Begin()
		if err := migration.Up(tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %s failed: %w", migration.Name, err)
		}
		if err := tx.Create(&Migration{Name: migration.Name, Batch: batch}).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %s: %w", migration.Name, err)
		}
		if err := tx.Commit().Error; err != nil {
			return fmt.Errorf("failed to commit migration %s: %w", migration.Name, err)
		}
	}

	return nil
}

// Rollback undoes the most recent batch.
func (m *Migrator) Rollback() error {
	batch := m.latestBatch()
	if batch == 0 {
		return nil
	}

	var applied []Migration
	m.db.Where("batch = ?", batch).Order("id DESC").Find(&applied)

	for _, record := range applied {
		migration := m.find(record.Name)
		if migration == nil {
			return fmt.Errorf("migration definition not found: %s", record.Name)
		}
		if migration.Down == nil {
			return fmt.Errorf("rollback not defined for migration: %s", record.Name)
		}

		log.Printf("rolling back: %s", record.Name)

		tx := m.db.Begin()
		if err := migration.Down(tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("rollback failed for %s: %w", record.Name, err)
		}
		if err := tx.Delete(&record).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to remove migration record %s: %w", record.Name, err)
		}
		if err := tx.Commit().Error; err != nil {
			return err
		}
	}

	return nil
}

func (m *Migrator) hasRun(name string) bool {
	var count int64
	m.db.Model(&Migration{}).Where("name = ?", name).Count(&count)
	return count > 0
}

func (m *Migrator) nextBatch() int {
	return m.latestBatch() + 1
}

func (m *Migrator) latestBatch() int {
	var migration Migration
	m.db.Order("batch DESC").Limit(1).Find(&migration)
	return migration.Batch
}

func (m *Migrator) find(name string) *MigrationDefinition {
	for i := range m.migrations {
		if m.migrations[i].Name == name {
			return &m.migrations[i]
		}
	}
	return nil
}
