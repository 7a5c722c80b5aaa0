package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"soullink-tracker/database"
	"soullink-tracker/models"
)

type RouteService struct {
	db *database.Manager
}

func NewRouteService(db *database.Manager) *RouteService {
	return &RouteService{db: db}
}

// AddRoute mirrors AddPlayer: the route plus one empty catch slot per
// existing player, all in one transaction.
func (s *RouteService) AddRoute(name string) (*models.Route, error) {
	if name == "" {
		return nil, fmt.Errorf("route name is required: %w", ErrBadRequest)
	}

	tx := s.db.DB().Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var count int64
	if err := tx.Model(&models.Route{}).Where("name = ?", name).Count(&count).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if count > 0 {
		tx.Rollback()
		return nil, fmt.Errorf("route %q already exists: %w", name, ErrConflict)
	}

	route := models.Route{Name: name, Status: ""}
	if err := tx.Create(&route).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	var players []models.Player
	if err := tx.Find(&players).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	for _, player := range players {
		slot := models.PokemonCatch{PlayerID: player.ID, RouteID: route.ID}
		if err := tx.Create(&slot).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return &route, nil
}

// UpdateStatus overwrites the free-text annotation on a route. An
// empty string is valid and means "clear".
func (s *RouteService) UpdateStatus(routeID uint, status string) error {
	db := s.db.DB()

	var route models.Route
	if err := db.First(&route, routeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("route %d: %w", routeID, ErrNotFound)
		}
		return err
	}

	return db.Model(&route).Update("status", status).Error
}

// SoftClear keeps the route but wipes its annotation and nulls every
// catch recorded on it.
func (s *RouteService) SoftClear(routeID uint) error {
	tx := s.db.DB().Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var route models.Route
	if err := tx.First(&route, routeID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("route %d: %w", routeID, ErrNotFound)
		}
		return err
	}

	if err := tx.Model(&route).Update("status", "").Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Model(&models.PokemonCatch{}).Where("route_id = ?", routeID).
		Update("pokemon_name", nil).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}

// Delete removes the route entirely, cascading over its catch slots.
func (s *RouteService) Delete(routeID uint) error {
	tx := s.db.DB().Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var route models.Route
	if err := tx.First(&route, routeID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("route %d: %w", routeID, ErrNotFound)
		}
		return err
	}

	if err := tx.Where("route_id = ?", routeID).Delete(&models.PokemonCatch{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(&route).Error; err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
