// Package gormstore implements the shared GORM persistence logic used by the
// SQLite and Postgres storage backends: hypercube rows are queued and written
// by a background goroutine so generation never blocks on the database.
package gormstore

import (
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/scenekit/scenegen/internal/logging"
	"github.com/scenekit/scenegen/internal/model"
	"github.com/scenekit/scenegen/internal/model/convert"
	"github.com/scenekit/scenegen/internal/queue"
	"github.com/scenekit/scenegen/internal/scene"
)

// writeInterval is how often the background writer flushes queued rows.
const writeInterval = 500 * time.Millisecond

// maxWriteBatch bounds how many hypercube rows go into one INSERT.
const maxWriteBatch = 256

// Dependencies holds all dependencies for the GORM storage backend.
type Dependencies struct {
	DB         *gorm.DB
	LogManager *logging.SlogManager
}

// Backend persists hypercubes through GORM.
type Backend struct {
	db  *gorm.DB
	log *logging.SlogManager

	pending  *queue.Queue[model.Hypercube]
	stopChan chan struct{}
	wg       sync.WaitGroup

	writeErrMu sync.Mutex
	writeErr   error
}

// New creates a new GORM storage backend.
func New(deps Dependencies) *Backend {
	return &Backend{
		db:       deps.DB,
		log:      deps.LogManager,
		pending:  queue.New[model.Hypercube](),
		stopChan: make(chan struct{}),
	}
}

// Init migrates the schema and starts the background writer.
func (b *Backend) Init() error {
	if err := b.db.AutoMigrate(model.DatabaseModels...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	b.wg.Add(1)
	go b.writeLoop()
	return nil
}

// Close flushes pending rows and stops the writer.
func (b *Backend) Close() error {
	close(b.stopChan)
	b.wg.Wait()
	b.flush()

	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	if closeErr := sqlDB.Close(); closeErr != nil {
		return closeErr
	}
	return b.takeWriteErr()
}

// SaveHypercube converts the hypercube to its row form and queues it.
func (b *Backend) SaveHypercube(hc *scene.Hypercube, design string) error {
	row, err := convert.HypercubeToGorm(hc, design)
	if err != nil {
		return err
	}
	b.pending.Push(row)
	return nil
}

// CountHypercubes returns the number of persisted hypercubes.
func (b *Backend) CountHypercubes() (int64, error) {
	var n int64
	err := b.db.Model(&model.Hypercube{}).Count(&n).Error
	return n, err
}

// LoadHypercube reads one hypercube with its scenes by UUID.
func (b *Backend) LoadHypercube(uuid string) (*scene.Hypercube, error) {
	var row model.Hypercube
	err := b.db.Preload("Scenes").Where("uuid = ?", uuid).First(&row).Error
	if err != nil {
		return nil, err
	}
	return convert.GormToHypercube(row)
}

func (b *Backend) writeLoop() {
	defer b.wg.Done()

	ticker := time.NewTicker(writeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-b.stopChan:
			return
		case <-ticker.C:
			b.flush()
		}
	}
}

func (b *Backend) flush() {
	for {
		rows := b.pending.PopBatch(maxWriteBatch)
		if len(rows) == 0 {
			return
		}

		if err := b.db.Create(&rows).Error; err != nil {
			b.writeErrMu.Lock()
			b.writeErr = fmt.Errorf("failed to write %d hypercubes: %w", len(rows), err)
			b.writeErrMu.Unlock()
			b.log.Logger().Error("Failed to write hypercubes", "count", len(rows), "error", err)
			return
		}
		b.log.Logger().Debug("Wrote hypercubes", "count", len(rows))
	}
}

func (b *Backend) takeWriteErr() error {
	b.writeErrMu.Lock()
	defer b.writeErrMu.Unlock()
	err := b.writeErr
	b.writeErr = nil
	return err
}
