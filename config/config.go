package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config captures runtime configuration from the environment, with an
// optional .env file for local development.
type Config struct {
	APIBaseURL  string
	DefaultCity string
	TimeoutSecs int
}

// Load reads configuration, applying defaults and validation.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		APIBaseURL:  getEnv("CINEBOOK_API_URL", "http://localhost:8080/api"),
		DefaultCity: getEnv("CINEBOOK_CITY", "Mumbai"),
		TimeoutSecs: getEnvInt("CINEBOOK_TIMEOUT_SECS", 12),
	}

	if cfg.APIBaseURL == "" {
		return Config{}, fmt.Errorf("CINEBOOK_API_URL is required")
	}
	if cfg.TimeoutSecs <= 0 {
		return Config{}, fmt.Errorf("CINEBOOK_TIMEOUT_SECS must be positive")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}
