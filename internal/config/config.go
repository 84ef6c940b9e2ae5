package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	HomeDir     string
	DBPath      string
	CatalogPath string

	LogMode  string
	LogLevel string
}

// ConfigInit reads an optional .env file and then the environment.
// A missing .env is normal for a CLI and is not reported.
func ConfigInit() (Config, error) {
	_ = godotenv.Load()

	home := getEnv("CODETRACK_HOME", "")
	if home == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("cannot determine home directory: %w", err)
		}
		home = filepath.Join(userHome, ".codetrack")
	}

	return Config{
		HomeDir:     home,
		DBPath:      getEnv("CODETRACK_DB", filepath.Join(home, "codetrack.db")),
		CatalogPath: getEnv("CODETRACK_CATALOG", ""),
		LogMode:     getEnv("CODETRACK_LOG_MODE", "dev"),
		LogLevel:    getEnv("CODETRACK_LOG_LEVEL", "warn"),
	}, nil
}

// EnsureDirs creates the directory that holds the database.
func (c Config) EnsureDirs() error {
	if err := os.MkdirAll(filepath.Dir(c.DBPath), 0755); err != nil {
		return fmt.Errorf("cannot create data directory: %w", err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
