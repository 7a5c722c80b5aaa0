package migrations

import "gorm.io/gorm"

// GetTrackerMigrations returns the schema for the tracker: players,
// routes, the per-player-per-route catch slots, the shared milestone
// flags and the level-cap reference rows.
func GetTrackerMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2025_06_01_000000_create_tracker_tables",
			Up: func(db *gorm.DB) error {
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS players (
						id INTEGER PRIMARY KEY AUTOINCREMENT,
						name VARCHAR(255) NOT NULL UNIQUE
					);
				`).Error; err != nil {
					return err
				}

				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS routes (
						id INTEGER PRIMARY KEY AUTOINCREMENT,
						name VARCHAR(255) NOT NULL UNIQUE,
						status VARCHAR(1024) DEFAULT ''
					);
				`).Error; err != nil {
					return err
				}

				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS pokemon_catches (
						id INTEGER PRIMARY KEY AUTOINCREMENT,
						player_id INTEGER NOT NULL,
						route_id INTEGER NOT NULL,
						pokemon_name VARCHAR(255) NULL
					);
					CREATE UNIQUE INDEX IF NOT EXISTS idx_catch_player_route
						ON pokemon_catches(player_id, route_id);
					CREATE INDEX IF NOT EXISTS idx_pokemon_catches_route_id
						ON pokemon_catches(route_id);
				`).Error; err != nil {
					return err
				}

				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS global_orders (
						id INTEGER PRIMARY KEY AUTOINCREMENT,
						order_number INTEGER NOT NULL UNIQUE,
						is_obtained BOOLEAN DEFAULT FALSE
					);
				`).Error; err != nil {
					return err
				}

				return db.Exec(`
					CREATE TABLE IF NOT EXISTS level_caps (
						id INTEGER PRIMARY KEY AUTOINCREMENT,
						name VARCHAR(255) NOT NULL,
						order_number INTEGER NOT NULL UNIQUE,
						max_level INTEGER NOT NULL,
						adjusted_level INTEGER NOT NULL
					);
				`).Error
			},
			Down: func(db *gorm.DB) error {
				return db.Exec(`
					DROP TABLE IF EXISTS pokemon_catches;
					DROP TABLE IF EXISTS level_caps;
					DROP TABLE IF EXISTS global_orders;
					DROP TABLE IF EXISTS routes;
					DROP TABLE IF EXISTS players;
				`).Error
			},
		},
	}
}
