// Package config provides shared configuration helpers.
package config

import (
	"os"
	"path/filepath"
)

// GetEnv returns the value of the environment variable named by key, or
// fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// ScoreDBPath returns the high-score database path: SCORE_DB_PATH when
// set, otherwise scores.db in the user config directory, falling back to
// the working directory.
func ScoreDBPath() string {
	if path, ok := os.LookupEnv("SCORE_DB_PATH"); ok {
		return path
	}
	if dir, err := os.UserConfigDir(); err == nil {
		appDir := filepath.Join(dir, "vectoroids")
		if err := os.MkdirAll(appDir, 0o755); err == nil {
			return filepath.Join(appDir, "scores.db")
		}
	}
	return "vectoroids-scores.db"
}
