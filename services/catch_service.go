package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"soullink-tracker/database"
	"soullink-tracker/models"
)

type CatchService struct {
	db *database.Manager
}

func NewCatchService(db *database.Manager) *CatchService {
	return &CatchService{db: db}
}

// UpdateCatch upserts the (player, route) slot. A nil pokemonName
// means "uncaught". Applying the same update twice is a no-op on the
// row count; concurrent updates on the same slot are last-write-wins.
func (s *CatchService) UpdateCatch(playerID, routeID uint, pokemonName *string) error {
	if playerID == 0 || routeID == 0 {
		return fmt.Errorf("player id and route id are required: %w", ErrBadRequest)
	}

	tx := s.db.DB().Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var slot models.PokemonCatch
	err := tx.Where("player_id = ? AND route_id = ?", playerID, routeID).First(&slot).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		slot = models.PokemonCatch{PlayerID: playerID, RouteID: routeID, PokemonName: pokemonName}
		if err := tx.Create(&slot).Error; err != nil {
			tx.Rollback()
			return err
		}
	case err != nil:
		tx.Rollback()
		return err
	default:
		if err := tx.Model(&slot).Update("pokemon_name", pokemonName).Error; err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit().Error
}

// ResetAll nulls every catch and clears every route status in one
// transaction. Players and routes themselves survive.
func (s *CatchService) ResetAll() error {
	tx := s.db.DB().Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Model(&models.PokemonCatch{}).Where("1 = 1").
		Update("pokemon_name", nil).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Model(&models.Route{}).Where("1 = 1").
		Update("status", "").Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
