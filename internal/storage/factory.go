// internal/storage/factory.go
package storage

import (
	"fmt"

	"github.com/scenekit/scenegen/internal/config"
	"github.com/scenekit/scenegen/internal/logging"
	"github.com/scenekit/scenegen/internal/storage/memory"
	"github.com/scenekit/scenegen/internal/storage/postgres"
	sqlitestorage "github.com/scenekit/scenegen/internal/storage/sqlite"
)

// NewBackend creates a storage backend based on configuration.
func NewBackend(cfg config.StorageConfig, logManager *logging.SlogManager) (Backend, error) {
	switch cfg.Type {
	case "postgres":
		return postgres.New(cfg.SQLite, logManager)
	case "sqlite":
		return sqlitestorage.New(cfg.SQLite, logManager)
	case "memory":
		return memory.New(cfg.Memory), nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}
