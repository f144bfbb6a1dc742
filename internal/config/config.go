package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration values.
type Config struct {
	AppPort           string
	DatabaseURL       string
	UpstreamOrdersURL string
	SeedDemoData      bool
}

// Load reads environment variables and returns a populated Config. An empty
// DATABASE_URL runs the dashboard against the in-memory repository.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:           getEnv("APP_PORT", "8080"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		UpstreamOrdersURL: getEnv("UPSTREAM_ORDERS_URL", "http://localhost:3000/api/order/"),
		SeedDemoData:      getEnv("SEED_DEMO_DATA", "true") == "true",
	}

	if cfg.AppPort == "" {
		log.Fatal("APP_PORT must be set")
	}

	if cfg.UpstreamOrdersURL == "" {
		log.Fatal("UPSTREAM_ORDERS_URL must be set")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
