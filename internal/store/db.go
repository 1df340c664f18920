// Package store persists pricing snapshots and saved cost estimates in a
// local SQLite database, by default under ~/.devplane.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultDatabaseFilename is the SQLite file kept in the devplane home dir.
const DefaultDatabaseFilename = "devplane.db"

// OpenFromURL opens a GORM DB based on a simple db-url string.
// Supported:
//   - sqlite:<dsn>   e.g., sqlite:./devplane.db or sqlite::memory:
//   - sqlite3:<dsn>  alias of sqlite
func OpenFromURL(dbURL string) (*gorm.DB, error) {
	switch {
	case strings.HasPrefix(dbURL, "sqlite:"):
		dsn := strings.TrimPrefix(dbURL, "sqlite:")
		if dsn == "" {
			dsn = "./" + DefaultDatabaseFilename
		}
		return open(dsn)
	case strings.HasPrefix(dbURL, "sqlite3:"):
		dsn := strings.TrimPrefix(dbURL, "sqlite3:")
		if dsn == "" {
			dsn = "./" + DefaultDatabaseFilename
		}
		return open(dsn)
	default:
		return nil, fmt.Errorf("unsupported db scheme: %s", dbURL)
	}
}

func open(dsn string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}

// DefaultDatabaseURL returns the db-url for the per-user database,
// creating the ~/.devplane directory if needed.
func DefaultDatabaseURL() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	dir := filepath.Join(home, ".devplane")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return "sqlite:" + filepath.Join(dir, DefaultDatabaseFilename), nil
}

// AutoMigrate applies schema migrations for all store models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&SnapshotRecord{}, &EstimateRecord{})
}
