// Package postgres implements the storage.Backend interface on PostgreSQL,
// reusing the shared GORM backend. Connection parameters come from the db
// section of the config; when Postgres is unreachable the backend falls back
// to a local SQLite file so a batch is never lost.
package postgres

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/scenekit/scenegen/internal/config"
	"github.com/scenekit/scenegen/internal/database"
	"github.com/scenekit/scenegen/internal/logging"
	"github.com/scenekit/scenegen/internal/storage/gormstore"
)

// Backend wraps the GORM backend for Postgres-specific behavior.
type Backend struct {
	*gormstore.Backend

	// SavedLocally reports whether the SQLite fallback took over.
	SavedLocally bool
}

// New connects to Postgres, falling back to the configured SQLite file, and
// bootstraps the schema.
func New(fallback config.SQLiteConfig, logManager *logging.SlogManager) (*Backend, error) {
	mgr := database.NewManager(zerolog.Nop())
	mgr.SqliteFilePath = fallback.Path

	if err := mgr.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := mgr.Setup(); err != nil {
		return nil, fmt.Errorf("failed to set up database: %w", err)
	}

	return &Backend{
		Backend: gormstore.New(gormstore.Dependencies{
			DB:         mgr.DB,
			LogManager: logManager,
		}),
		SavedLocally: mgr.ShouldSaveLocal,
	}, nil
}
