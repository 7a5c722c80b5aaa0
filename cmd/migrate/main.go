package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"soullink-tracker/config"
	"soullink-tracker/database"
	"soullink-tracker/migrations"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := database.Open(cfg.DatabasePath())
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer db.Close()

	migrator := migrations.NewMigrator(db.DB())
	for _, migration := range migrations.GetTrackerMigrations() {
		migrator.AddMigration(migration)
	}

	if len(os.Args) < 2 {
		printUsage()
		return
	}

	switch os.Args[1] {
	case "up":
		if err := migrator.Migrate(); err != nil {
			log.Fatal("Migration failed:", err)
		}
		fmt.Println("Migrations applied")
	case "down":
		if err := migrator.Rollback(); err != nil {
			log.Fatal("Rollback failed:", err)
		}
		fmt.Println("Last batch rolled back")
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  go run ./cmd/migrate up    - Apply pending migrations")
	fmt.Println("  go run ./cmd/migrate down  - Roll back the last batch")
}
