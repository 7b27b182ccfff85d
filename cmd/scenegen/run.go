package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/scenekit/scenegen/internal/api"
	"github.com/scenekit/scenegen/internal/config"
	"github.com/scenekit/scenegen/internal/hypercube"
	"github.com/scenekit/scenegen/internal/influx"
	"github.com/scenekit/scenegen/internal/scene"
	"github.com/scenekit/scenegen/internal/storage"
)

// Runner drives one batch of hypercube generations.
type Runner struct {
	Config   config.GeneratorConfig
	Seed     int64
	Log      *slog.Logger
	Backend  storage.Backend
	Metrics  *influx.Manager
	Uploader *api.Client
}

// Run generates Config.Count hypercubes and persists each one. It returns
// the number generated. A definition or exhausted-retries failure either
// skips the hypercube or aborts the batch, depending on abortOnFailure.
func (r *Runner) Run() (int, error) {
	designFn, ok := hypercube.Designs[r.Config.Design]
	if !ok {
		return 0, fmt.Errorf("unknown design %q", r.Config.Design)
	}
	design := designFn()

	room := scene.NewRoom(r.Config.RoomDimX, r.Config.RoomDimZ)

	generated := 0
	for i := 0; i < r.Config.Count; i++ {
		// Each hypercube gets its own derived seed so a failed run can be
		// reproduced in isolation.
		hcSeed := r.Seed + int64(i)
		rng := rand.New(rand.NewSource(hcSeed))
		gen := hypercube.New(room, rng, hcSeed, r.Log)

		start := time.Now()
		hc, stats, err := gen.Generate(design)
		r.report(hcSeed, stats, time.Since(start), err == nil)

		if err != nil {
			var domainErr *hypercube.Error
			kind := "unknown"
			if errors.As(err, &domainErr) {
				kind = domainErr.Kind.String()
			}
			r.Log.Error("Hypercube generation failed",
				"index", i, "seed", hcSeed, "kind", kind, "error", err)
			if r.Config.AbortOnFailure {
				return generated, err
			}
			continue
		}

		if err := r.Backend.SaveHypercube(hc, r.Config.Design); err != nil {
			return generated, fmt.Errorf("saving hypercube %s: %w", hc.ID, err)
		}
		generated++
		r.upload(hc, hcSeed)

		r.Log.Info("Hypercube generated",
			"index", i, "id", hc.ID, "scenes", len(hc.Scenes),
			"attempts", stats.Attempts, "duration", time.Since(start).String())
	}

	return generated, nil
}

// upload pushes the export file of the saved hypercube to the evaluation
// service, when one is configured and the backend produces files.
func (r *Runner) upload(hc *scene.Hypercube, seed int64) {
	if r.Uploader == nil {
		return
	}
	exportable, ok := r.Backend.(storage.Exportable)
	if !ok {
		return
	}
	path := exportable.LastExportPath()
	if path == "" {
		return
	}
	err := r.Uploader.Upload(path, api.UploadMetadata{
		HypercubeID: hc.ID,
		Design:      r.Config.Design,
		Seed:        seed,
		SceneCount:  len(hc.Scenes),
	})
	if err != nil {
		r.Log.Warn("Failed to upload hypercube export", "id", hc.ID, "error", err)
	}
}

func (r *Runner) report(seed int64, stats *hypercube.Stats, duration time.Duration, succeeded bool) {
	if r.Metrics == nil {
		return
	}
	var s hypercube.Stats
	if stats != nil {
		s = *stats
	}
	ctx := context.Background()
	if err := r.Metrics.ReportGeneration(ctx, r.Config.Design, seed, s, duration, succeeded); err != nil {
		r.Log.Warn("Failed to report generation metrics", "error", err)
	}
	if err := r.Metrics.ReportPlacement(ctx, r.Config.Design, seed, s); err != nil {
		r.Log.Warn("Failed to report placement metrics", "error", err)
	}
}
