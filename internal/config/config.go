// Package config loads server configuration from the environment.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds server settings. Values come from environment variables,
// optionally loaded from a .env file first.
type Config struct {
	Addr       string // listen address, e.g. ":8080"
	DBPath     string // sqlite database file
	UploadsDir string // directory for uploaded images, served at /uploads/
	DevMode    bool   // human-readable logs instead of JSON
}

// Load reads configuration from the environment. If a .env file exists in the
// working directory it is loaded first; a missing file is not an error.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, err
	}

	cfg := Config{
		Addr:       envOr("REALSTAT_ADDR", ":8080"),
		DBPath:     os.Getenv("REALSTAT_DB"),
		UploadsDir: envOr("REALSTAT_UPLOADS", filepath.Join("public", "uploads")),
		DevMode:    os.Getenv("REALSTAT_DEV") == "1",
	}

	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, err
		}
		cfg.DBPath = filepath.Join(home, ".realstat", "realstat.db")
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
