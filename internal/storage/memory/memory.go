// internal/storage/memory/memory.go
package memory

import (
	"sync"

	"github.com/scenekit/scenegen/internal/config"
	"github.com/scenekit/scenegen/internal/scene"
)

// Backend stores generated hypercubes in memory and exports each one to a
// JSON file as it is saved.
type Backend struct {
	cfg config.MemoryConfig

	hypercubes     []*scene.Hypercube
	lastExportPath string
	mu             sync.RWMutex
}

// New creates a new memory backend.
func New(cfg config.MemoryConfig) *Backend {
	return &Backend{cfg: cfg}
}

// Init initializes the backend.
func (b *Backend) Init() error {
	return nil
}

// Close cleans up resources.
func (b *Backend) Close() error {
	return nil
}

// SaveHypercube records the hypercube and writes its export file.
func (b *Backend) SaveHypercube(hc *scene.Hypercube, design string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.hypercubes = append(b.hypercubes, hc)
	return b.exportJSON(hc, design)
}

// Hypercubes returns everything saved so far.
func (b *Backend) Hypercubes() []*scene.Hypercube {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]*scene.Hypercube(nil), b.hypercubes...)
}

// LastExportPath returns the path of the most recently written export file.
func (b *Backend) LastExportPath() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lastExportPath
}
