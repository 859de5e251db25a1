package config

import (
	"os"
	"strconv"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	Scenario string
	Players  string
	Workers  int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Scenario: envOrDefault("VALUEMAP_SCENARIO", ""),
		Players:  envOrDefault("VALUEMAP_PLAYERS", ""),
		Workers:  envIntOrDefault("VALUEMAP_WORKERS", 4),
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
