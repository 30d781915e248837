package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/mollybeach/honeyvaiult/internal/models"
)

// Config holds application configuration loaded from environment variables
type Config struct {
	Port            string
	PGURL           string // optional; audit persistence is disabled when empty
	FactoryOwner    models.Address
	LogLevel        string
	LogFormat       string
	SeedDemo        bool
	SeedFile        string
	SummaryCacheTTL time.Duration
}

// Load reads configuration from environment variables. A .env file in the
// working directory is loaded first; variables already set in the shell win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	ownerStr := os.Getenv("FACTORY_OWNER")
	if ownerStr == "" {
		return nil, fmt.Errorf("FACTORY_OWNER environment variable is required")
	}
	owner, err := models.ParseAddress(ownerStr)
	if err != nil {
		return nil, fmt.Errorf("FACTORY_OWNER: %w", err)
	}
	if owner.IsZero() {
		return nil, fmt.Errorf("FACTORY_OWNER must not be the null address")
	}

	seedDemo := true
	if v := os.Getenv("SEED_DEMO"); v != "" {
		if seedDemo, err = strconv.ParseBool(v); err != nil {
			return nil, fmt.Errorf("SEED_DEMO must be a boolean: %w", err)
		}
	}

	ttl := 30 * time.Second
	if v := os.Getenv("SUMMARY_CACHE_TTL"); v != "" {
		if ttl, err = time.ParseDuration(v); err != nil {
			return nil, fmt.Errorf("SUMMARY_CACHE_TTL must be a duration: %w", err)
		}
	}

	return &Config{
		Port:            getenv("PORT", "8080"),
		PGURL:           os.Getenv("PG_URL"),
		FactoryOwner:    owner,
		LogLevel:        getenv("LOG_LEVEL", "info"),
		LogFormat:       getenv("LOG_FORMAT", "text"),
		SeedDemo:        seedDemo,
		SeedFile:        os.Getenv("SEED_FILE"),
		SummaryCacheTTL: ttl,
	}, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
