package config

import "os"

type Config struct {
	Port        string
	PuzzlesFile string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		PuzzlesFile: getEnv("PUZZLES_FILE", "./data/puzzles.json"),
	}, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
