package services

import (
	"fmt"

	"soullink-tracker/database"
	"soullink-tracker/models"
)

type PlayerService struct {
	db *database.Manager
}

func NewPlayerService(db *database.Manager) *PlayerService {
	return &PlayerService{db: db}
}

// AddPlayer creates a player and, in the same transaction, one empty
// catch slot per existing route, keeping the player x route
// cross-product complete.
func (s *PlayerService) AddPlayer(name string) (*models.Player, error) {
	if name == "" {
		return nil, fmt.Errorf("player name is required: %w", ErrBadRequest)
	}

	tx := s.db.DB().Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var count int64
	if err := tx.Model(&models.Player{}).Where("name = ?", name).Count(&count).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if count > 0 {
		tx.Rollback()
		return nil, fmt.Errorf("player %q already exists: %w", name, ErrConflict)
	}

	player := models.Player{Name: name}
	if err := tx.Create(&player).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	var routes []models.Route
	if err := tx.Find(&routes).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	for _, route := range routes {
		slot := models.PokemonCatch{PlayerID: player.ID, RouteID: route.ID}
		if err := tx.Create(&slot).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return &player, nil
}
