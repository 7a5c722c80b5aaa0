package config

import (
	"os"
	"path/filepath"
	"strings"
)

type Config struct {
	Port           string
	DataDir        string
	DatabaseFile   string
	ImportPassword string
	AllowedOrigins []string
}

// Load reads the configuration from the environment. godotenv is
// expected to have populated the environment already (see main).
func Load() *Config {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		DataDir:        getEnv("DATA_DIR", "./data"),
		DatabaseFile:   getEnv("DATABASE_FILE", "soul_link_challenge.db"),
		ImportPassword: getEnv("IMPORT_PASSWORD", ""),
		AllowedOrigins: []string{"*"},
	}
	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = strings.Split(origins, ",")
	}
	return cfg
}

// DatabasePath is the absolute location of the SQLite store file
// inside the data directory.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, c.DatabaseFile)
}

func (c *Config) ReferencePath(name string) string {
	return filepath.Join(c.DataDir, name)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
