package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Riot API
	APIKey   string
	Platform string // e.g. eun1, used by league and summoner endpoints
	Region   string // e.g. europe, used by match-v5 endpoints

	// Collection
	Tier             string
	MinPlayers       int
	MatchesPerPlayer int

	// Extraction
	WorkerCount int
	MaxAttempts int
	RetryDelay  time.Duration

	// Artifacts
	DataDir string

	// Optional publishing target
	DatabaseURL string
}

// Load reads configuration from the environment, after loading the first
// .env file found on the usual paths. The API key is the only hard
// requirement.
func Load() (*Config, error) {
	envPaths := []string{".env", "../.env", "../../.env"}
	for _, path := range envPaths {
		if err := godotenv.Load(path); err == nil {
			break
		}
	}

	cfg := &Config{
		Platform: getEnv("RIOT_PLATFORM", "eun1"),
		Region:   getEnv("RIOT_REGION", "europe"),

		Tier:             getEnv("LADDER_TIER", "CHALLENGER"),
		MinPlayers:       getEnvInt("MIN_PLAYERS", 200),
		MatchesPerPlayer: getEnvInt("MATCHES_PER_PLAYER", 100),

		WorkerCount: getEnvInt("WORKER_COUNT", 4),
		MaxAttempts: getEnvInt("MAX_ATTEMPTS", 3),
		RetryDelay:  getEnvDuration("RETRY_DELAY", 5*time.Second),

		DataDir:     getEnv("DATA_DIR", "data"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}

	var err error
	if cfg.APIKey, err = getEnvRequired("RIOT_API_KEY"); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvRequired(key string) (string, error) {
	if value := os.Getenv(key); value != "" {
		return value, nil
	}
	return "", fmt.Errorf("missing required environment variable: %s", key)
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
