package services

import (
	"soullink-tracker/database"
	"soullink-tracker/models"
	"soullink-tracker/reference"

	"gorm.io/gorm"
)

type SnapshotService struct {
	db    *database.Manager
	cache *reference.Cache
}

func NewSnapshotService(db *database.Manager, cache *reference.Cache) *SnapshotService {
	return &SnapshotService{db: db, cache: cache}
}

// Snapshot assembles the full state in a single read transaction so a
// client never sees a player without its catch slots.
func (s *SnapshotService) Snapshot() (*models.Snapshot, error) {
	snap := &models.Snapshot{}

	err := s.db.DB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Order("id ASC").Find(&snap.Players).Error; err != nil {
			return err
		}
		if err := tx.Order("id ASC").Find(&snap.Routes).Error; err != nil {
			return err
		}
		if err := tx.Find(&snap.Catches).Error; err != nil {
			return err
		}
		if err := tx.Order("order_number ASC").Find(&snap.GlobalOrders).Error; err != nil {
			return err
		}
		return tx.Order("order_number ASC").Find(&snap.LevelCaps).Error
	})
	if err != nil {
		return nil, err
	}

	snap.AllPokemonNames = s.cache.PokemonNames()
	snap.AllRouteNames = s.cache.RouteNames()
	return snap, nil
}
