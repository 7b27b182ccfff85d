// Package sqlitestorage implements the storage.Backend interface on an
// embedded SQLite database. It wraps the shared GORM backend via composition;
// the only SQLite-specific concern is opening the file-backed database.
package sqlitestorage

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/scenekit/scenegen/internal/config"
	"github.com/scenekit/scenegen/internal/database"
	"github.com/scenekit/scenegen/internal/logging"
	"github.com/scenekit/scenegen/internal/storage/gormstore"
)

// Backend wraps the GORM backend for SQLite-specific behavior.
type Backend struct {
	*gormstore.Backend
}

// New opens the SQLite database and bootstraps the schema.
func New(cfg config.SQLiteConfig, logManager *logging.SlogManager) (*Backend, error) {
	mgr := database.NewManager(zerolog.Nop())
	db, err := mgr.GetSqliteDB(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite DB: %w", err)
	}
	mgr.DB = db
	if err := mgr.Setup(); err != nil {
		return nil, fmt.Errorf("failed to set up database: %w", err)
	}

	return &Backend{
		Backend: gormstore.New(gormstore.Dependencies{
			DB:         db,
			LogManager: logManager,
		}),
	}, nil
}
