package models

// Snapshot is the full consistent read a newly-connecting or
// resynchronizing client loads before it starts applying broadcast
// events.
type Snapshot struct {
	Players         []Player       `json:"players"`
	Routes          []Route        `json:"routes"`
	Catches         []PokemonCatch `json:"catches"`
	GlobalOrders    []GlobalOrder  `json:"global_orders"`
	LevelCaps       []LevelCap     `json:"level_caps"`
	AllPokemonNames []string       `json:"all_pokemon_names"`
	AllRouteNames   []string       `json:"all_route_names"`
}
