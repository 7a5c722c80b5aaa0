package services

import (
	"fmt"
	"log"

	"soullink-tracker/database"
	"soullink-tracker/reference"
)

type ResetService struct {
	db    *database.Manager
	cache *reference.Cache
}

func NewResetService(db *database.Manager, cache *reference.Cache) *ResetService {
	return &ResetService{db: db, cache: cache}
}

// FullReset drops the whole schema, recreates it and reseeds the
// milestone and level-cap rows. Destructive and irreversible without a
// prior backup.
func (s *ResetService) FullReset() error {
	log.Println("starting full database reset")

	db := s.db.DB()
	if err := database.DropAll(db); err != nil {
		return fmt.Errorf("drop schema: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("recreate schema: %w", err)
	}
	if err := database.Seed(db, s.cache.LevelCaps()); err != nil {
		return fmt.Errorf("reseed: %w", err)
	}

	log.Println("full database reset completed")
	return nil
}
