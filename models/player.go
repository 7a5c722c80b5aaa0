package models

type Player struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"size:255;uniqueIndex;not null" json:"name"`

	// Relationships
	Catches []PokemonCatch `gorm:"foreignKey:PlayerID" json:"catches,omitempty"`
}

func (Player) TableName() string {
	return "players"
}

type CreatePlayerRequest struct {
	Name string `json:"name" binding:"required"`
}
