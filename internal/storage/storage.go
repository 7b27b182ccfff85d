// internal/storage/storage.go
package storage

import "github.com/scenekit/scenegen/internal/scene"

// Backend is the interface all storage implementations must satisfy.
type Backend interface {
	// Lifecycle
	Init() error
	Close() error

	// SaveHypercube persists one generated scene family.
	SaveHypercube(hc *scene.Hypercube, design string) error
}

// Exportable is an optional interface for backends that write files suitable
// for downstream evaluation pipelines.
type Exportable interface {
	LastExportPath() string
}
