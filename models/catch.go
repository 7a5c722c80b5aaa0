package models

// PokemonCatch is the per-player-per-route slot. PokemonName is nil
// while nothing has been caught on that route yet.
type PokemonCatch struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	PlayerID    uint    `gorm:"not null;uniqueIndex:idx_catch_player_route" json:"player_id"`
	RouteID     uint    `gorm:"not null;uniqueIndex:idx_catch_player_route" json:"route_id"`
	PokemonName *string `gorm:"size:255" json:"pokemon_name"`
}

func (PokemonCatch) TableName() string {
	return "pokemon_catches"
}

type UpdateCatchRequest struct {
	PlayerID    uint    `json:"player_id" binding:"required"`
	RouteID     uint    `json:"route_id" binding:"required"`
	PokemonName *string `json:"pokemon_name"`
}
