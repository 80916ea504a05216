package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath  string
	DBDebug bool
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	debug := false
	if v := os.Getenv("TODO_DB_DEBUG"); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			debug = parsed
		}
	}

	return &Config{
		DBPath:  getEnv("TODO_DB_PATH", "to_do_list.db"),
		DBDebug: debug,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
