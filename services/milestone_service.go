package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"soullink-tracker/database"
	"soullink-tracker/models"
)

type MilestoneService struct {
	db *database.Manager
}

func NewMilestoneService(db *database.Manager) *MilestoneService {
	return &MilestoneService{db: db}
}

// Toggle flips the shared obtained flag for one milestone and returns
// the new value.
func (s *MilestoneService) Toggle(orderNumber int) (bool, error) {
	db := s.db.DB()

	var order models.GlobalOrder
	if err := db.Where("order_number = ?", orderNumber).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, fmt.Errorf("milestone %d: %w", orderNumber, ErrNotFound)
		}
		return false, err
	}

	order.IsObtained = !order.IsObtained
	if err := db.Model(&order).Update("is_obtained", order.IsObtained).Error; err != nil {
		return false, err
	}

	return order.IsObtained, nil
}
