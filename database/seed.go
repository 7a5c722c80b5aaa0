package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"soullink-tracker/models"
)

// The tracked milestones are fixed: badges 1-8, the four Top 4
// members, then the champion.
const (
	FirstMilestone = 1
	LastMilestone  = 13
)

// Seed inserts the fixed milestone rows and the level caps from the
// reference data. Idempotent: rows that already exist are left alone.
func Seed(db *gorm.DB, levelCaps []models.LevelCapEntry) error {
	for number := FirstMilestone; number <= LastMilestone; number++ {
		var count int64
		if err := db.Model(&models.GlobalOrder{}).Where("order_number = ?", number).Count(&count).Error; err != nil {
			return fmt.Errorf("check milestone %d: %w", number, err)
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&models.GlobalOrder{OrderNumber: number}).Error; err != nil {
			return fmt.Errorf("seed milestone %d: %w", number, err)
		}
	}

	for _, entry := range levelCaps {
		var count int64
		if err := db.Model(&models.LevelCap{}).Where("order_number = ?", entry.OrderNumber).Count(&count).Error; err != nil {
			return fmt.Errorf("check level cap %d: %w", entry.OrderNumber, err)
		}
		if count > 0 {
			continue
		}
		row := models.LevelCap{
			Name:          entry.Name,
			OrderNumber:   entry.OrderNumber,
			MaxLevel:      entry.MaxLevel,
			AdjustedLevel: entry.AdjustedLevel,
		}
		if err := db.Create(&row).Error; err != nil {
			return fmt.Errorf("seed level cap %d: %w", entry.OrderNumber, err)
		}
	}

	log.Println("database seeded: milestones and level caps present")
	return nil
}
