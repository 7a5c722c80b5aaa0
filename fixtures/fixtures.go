package fixtures

import (
	"fmt"
	"log"
	"math/rand"

	"gorm.io/gorm"

	"soullink-tracker/database"
	"soullink-tracker/models"
	"soullink-tracker/services"
)

var samplePlayers = []string{"Alex", "Jamie", "Robin"}

var sampleRoutes = []string{
	"Route 101", "Route 102", "Route 103", "Petalburg Woods",
	"Route 104", "Granite Cave", "Route 110", "Fiery Path",
}

var samplePokemon = []string{
	"Poochyena", "Zigzagoon", "Wurmple", "Taillow", "Shroomish",
	"Whismur", "Aron", "Makuhita", "Electrike", "Numel",
}

type Fixtures struct {
	db *database.Manager
}

func NewFixtures(db *database.Manager) *Fixtures {
	return &Fixtures{db: db}
}

// GenerateTestData creates sample players and routes through the
// services (so every player x route catch slot exists) and fills
// roughly half the slots with random catches.
func (f *Fixtures) GenerateTestData() error {
	log.Println("Starting fixtures generation...")

	players := services.NewPlayerService(f.db)
	routes := services.NewRouteService(f.db)
	catches := services.NewCatchService(f.db)

	createdPlayers := make([]*models.Player, 0, len(samplePlayers))
	for _, name := range samplePlayers {
		player, err := players.AddPlayer(name)
		if err != nil {
			return fmt.Errorf("failed to create player %s: %w", name, err)
		}
		createdPlayers = append(createdPlayers, player)
	}

	createdRoutes := make([]*models.Route, 0, len(sampleRoutes))
	for _, name := range sampleRoutes {
		route, err := routes.AddRoute(name)
		if err != nil {
			return fmt.Errorf("failed to create route %s: %w", name, err)
		}
		createdRoutes = append(createdRoutes, route)
	}

	for _, player := range createdPlayers {
		for _, route := range createdRoutes {
			if rand.Intn(2) == 0 {
				continue
			}
			name := samplePokemon[rand.Intn(len(samplePokemon))]
			if err := catches.UpdateCatch(player.ID, route.ID, &name); err != nil {
				return fmt.Errorf("failed to record catch: %w", err)
			}
		}
	}

	log.Printf("Fixtures generated: %d players, %d routes", len(createdPlayers), len(createdRoutes))
	return nil
}

// ClearAllData removes players, routes and catches and lowers every
// milestone flag. Level caps stay, they are reference data.
func (f *Fixtures) ClearAllData() error {
	db := f.db.DB()

	tables := []interface{}{&models.PokemonCatch{}, &models.Player{}, &models.Route{}}
	for _, table := range tables {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
			return fmt.Errorf("failed to clear table: %w", err)
		}
	}

	return db.Model(&models.GlobalOrder{}).Where("1 = 1").
		Update("is_obtained", false).Error
}
