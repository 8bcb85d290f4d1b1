package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/KirkDiggler/creature-battle/internal/errors"
)

// Config holds all configuration for the battle simulator
type Config struct {
	Battle BattleConfig
	Redis  RedisConfig
}

// BattleConfig controls the simulated duel
type BattleConfig struct {
	ID         string
	Seed       int64
	MaxTurns   int
	TraitsFile string // Optional: empty uses the embedded trait set
}

// RedisConfig holds Redis-specific configuration. URL takes precedence over
// Addr; with neither set the simulator keeps its log in memory.
type RedisConfig struct {
	URL      string
	Addr     string
	Password string
	DB       int
}

// Enabled reports whether a Redis battle log was configured
func (c RedisConfig) Enabled() bool {
	return c.URL != "" || c.Addr != ""
}

// Load reads an optional .env file and then the environment
func Load() (*Config, error) {
	return LoadFiles(".env")
}

// LoadFiles loads the given env files, skipping any that do not exist, and
// builds the config from the environment. Variables already set win.
func LoadFiles(files ...string) (*Config, error) {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if os.IsNotExist(err) {
				log.Printf("[CONFIG] No %s file found", file)
				continue
			}
			return nil, errors.Wrapf(err, "failed to load %s", file)
		}
		log.Printf("[CONFIG] Loaded %s", file)
	}

	cfg := &Config{
		Battle: BattleConfig{
			ID:         getEnvOrDefault("BATTLE_ID", "duel"),
			Seed:       getEnvAsInt64OrDefault("BATTLE_SEED", 42),
			MaxTurns:   getEnvAsIntOrDefault("BATTLE_MAX_TURNS", 30),
			TraitsFile: os.Getenv("TRAITS_FILE"),
		},
		Redis: RedisConfig{
			URL:      os.Getenv("REDIS_URL"),
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
		},
	}

	if cfg.Battle.MaxTurns < 1 {
		return nil, errors.InvalidArgumentf("BATTLE_MAX_TURNS must be positive, got %d", cfg.Battle.MaxTurns)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
