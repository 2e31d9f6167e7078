// Load envs from .env, override with real environment, fill in defaults.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	DatabaseDSN string
	Port        string
	// SearchInsensitive controls whether list search matches case-insensitively.
	// Defaults to the store's own collation behavior (case-sensitive).
	SearchInsensitive bool
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseDSN: getenv("DATABASE_DSN",
			"host=localhost user=postgres password=postgres dbname=jobtracker port=5432 sslmode=disable"),
		Port: getenv("PORT", "8080"),
	}

	if v := os.Getenv("SEARCH_CASE_INSENSITIVE"); v != "" {
		insensitive, err := strconv.ParseBool(v)
		if err != nil {
			logrus.Fatalf("Invalid SEARCH_CASE_INSENSITIVE: %v", err)
		}
		cfg.SearchInsensitive = insensitive
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
