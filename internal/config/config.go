package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config keeps runtime settings for taskdeck.
type Config struct {
	DatabasePath    string
	ArchiveDir      string
	LogLevel        string
	ArchiveInterval time.Duration // how often `watch` re-runs auto-archival
}

// Load reads configuration from the environment with sane defaults.
// Everything is optional; a missing .env file is not an error.
func Load() (Config, error) {
	_ = godotenv.Load(".env")

	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DatabasePath:    getEnv("TASKDECK_DB", filepath.Join(home, ".taskdeck", "taskdeck.db")),
		ArchiveDir:      getEnv("TASKDECK_ARCHIVE_DIR", filepath.Join(home, ".taskdeck", "archives")),
		LogLevel:        getEnv("TASKDECK_LOG_LEVEL", "warn"),
		ArchiveInterval: parseInterval(getEnv("TASKDECK_ARCHIVE_INTERVAL", "")),
	}

	if cfg.ArchiveInterval == 0 {
		cfg.ArchiveInterval = 6 * time.Hour
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func parseInterval(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0
	}
	return d
}
