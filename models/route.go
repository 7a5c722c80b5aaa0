package models

type Route struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name   string `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Status string `gorm:"size:1024;default:''" json:"status"`

	// Relationships
	Catches []PokemonCatch `gorm:"foreignKey:RouteID" json:"catches,omitempty"`
}

func (Route) TableName() string {
	return "routes"
}

type CreateRouteRequest struct {
	Name string `json:"name" binding:"required"`
}

// StatusText is a pointer so an explicit empty string ("clear the
// status") can be told apart from a missing field.
type UpdateRouteStatusRequest struct {
	StatusText *string `json:"status_text"`
}
