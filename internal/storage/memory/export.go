// internal/storage/memory/export.go
package memory

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/scenekit/scenegen/internal/scene"
)

// Export is the root JSON structure of one hypercube file.
type Export struct {
	FormatVersion int            `json:"formatVersion"`
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Design        string         `json:"design"`
	Seed          int64          `json:"seed"`
	Scenes        []*scene.Scene `json:"scenes"`
}

// exportJSON writes the hypercube to a JSON file, gzipped when configured.
func (b *Backend) exportJSON(hc *scene.Hypercube, design string) error {
	export := Export{
		FormatVersion: 1,
		ID:            hc.ID,
		Name:          hc.Name,
		Design:        design,
		Seed:          hc.Seed,
		Scenes:        hc.Scenes,
	}

	var filename string
	if b.cfg.CompressOutput {
		filename = fmt.Sprintf("%s_%s.json.gz", design, hc.ID)
	} else {
		filename = fmt.Sprintf("%s_%s.json", design, hc.ID)
	}
	outputPath := filepath.Join(b.cfg.OutputDir, filename)

	if err := os.MkdirAll(b.cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if b.cfg.CompressOutput {
		if err := writeGzipJSON(outputPath, export); err != nil {
			return err
		}
	} else {
		if err := writeJSON(outputPath, export); err != nil {
			return err
		}
	}

	b.lastExportPath = outputPath
	return nil
}

func writeJSON(path string, export Export) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	if err := enc.Encode(export); err != nil {
		return fmt.Errorf("failed to encode export: %w", err)
	}
	return nil
}

func writeGzipJSON(path string, export Export) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	enc := json.NewEncoder(gz)
	if err := enc.Encode(export); err != nil {
		gz.Close()
		return fmt.Errorf("failed to encode export: %w", err)
	}
	return gz.Close()
}
