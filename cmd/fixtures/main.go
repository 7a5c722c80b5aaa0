package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"soullink-tracker/config"
	"soullink-tracker/database"
	"soullink-tracker/fixtures"
	"soullink-tracker/reference"
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

	cache := reference.NewCache(cfg.ReferencePath)
	cache.Reload()

	if err := database.Migrate(db.DB()); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}
	if err := database.Seed(db.DB(), cache.LevelCaps()); err != nil {
		log.Fatal("Failed to seed database:", err)
	}

	fixtureManager := fixtures.NewFixtures(db)

	if len(os.Args) < 2 {
		printUsage()
		return
	}

	switch os.Args[1] {
	case "generate":
		if err := fixtureManager.GenerateTestData(); err != nil {
			log.Fatal("Failed to generate fixtures:", err)
		}
		fmt.Println("Fixtures generated successfully")
	case "clear":
		if err := fixtureManager.ClearAllData(); err != nil {
			log.Fatal("Failed to clear fixtures:", err)
		}
		fmt.Println("All fixture data cleared")
	case "regenerate":
		if err := fixtureManager.ClearAllData(); err != nil {
			log.Fatal("Failed to clear fixtures:", err)
		}
		if err := fixtureManager.GenerateTestData(); err != nil {
			log.Fatal("Failed to generate fixtures:", err)
		}
		fmt.Println("Fixtures regenerated successfully")
	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  go run ./cmd/fixtures generate    - Create sample players, routes and catches")
	fmt.Println("  go run ./cmd/fixtures clear       - Remove players, routes and catches")
	fmt.Println("  go run ./cmd/fixtures regenerate  - Clear and regenerate sample data")
}
