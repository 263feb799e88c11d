package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the server configuration.
type Config struct {
	// DBPath is the SQLite database file.
	DBPath string
	// Addr is the HTTP listen address.
	Addr string
	// JWTSecret overrides the persisted signing secret when set.
	JWTSecret string
}

// Load reads configuration from a .env file (if present) and the
// environment. Missing variables fall back to defaults.
func Load() *Config {
	// .env is optional.
	_ = godotenv.Load()

	return &Config{
		DBPath:    envOr("STARK_DB", "stark.sqlite3"),
		Addr:      envOr("STARK_ADDR", ":8080"),
		JWTSecret: os.Getenv("STARK_JWT_SECRET"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
