package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/scenekit/scenegen/internal/api"
	"github.com/scenekit/scenegen/internal/config"
	"github.com/scenekit/scenegen/internal/influx"
	"github.com/scenekit/scenegen/internal/logging"
	"github.com/scenekit/scenegen/internal/storage"
)

var (
	CurrentVersion = "0.1.0"
	BuildDate      = "unknown"
)

func main() {
	configDir := flag.String("config", ".", "directory containing scenegen.cfg.json")
	flag.Parse()

	if err := config.Load(*configDir); err != nil {
		fmt.Fprintf(os.Stderr, "scenegen: %v\n", err)
		os.Exit(1)
	}

	sessionStart := time.Now()
	gen := config.GetGeneratorConfig()
	seed := gen.Seed
	if seed == 0 {
		seed = sessionStart.UnixNano()
	}

	logsDir := viper.GetString("logsDir")
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "scenegen: creating logs dir: %v\n", err)
		os.Exit(1)
	}
	logFile, err := os.Create(logging.LogFilePath(logsDir, "scenegen", sessionStart))
	if err != nil {
		fmt.Fprintf(os.Stderr, "scenegen: creating log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	logManager := logging.NewSlogManager()
	logManager.Setup(logFile, viper.GetString("logLevel"), func() []slog.Attr {
		return []slog.Attr{slog.Int64("seed", seed)}
	})
	logger := logManager.Logger()
	logger.Info("Starting up", "version", CurrentVersion, "buildDate", BuildDate)

	backend, err := storage.NewBackend(config.GetStorageConfig(), logManager)
	if err != nil {
		logger.Error("Failed to create storage backend", "error", err)
		os.Exit(1)
	}
	if err := backend.Init(); err != nil {
		logger.Error("Failed to initialize storage backend", "error", err)
		os.Exit(1)
	}
	defer backend.Close()

	var metrics *influx.Manager
	if viper.GetBool("influx.enabled") {
		backupPath := filepath.Join(logsDir, "influx_backup.log.gz")
		metrics = influx.NewManager(zerolog.New(logFile).With().Timestamp().Logger(), backupPath)
		if err := metrics.Connect(); err != nil {
			logger.Warn("InfluxDB reporting disabled", "error", err)
			metrics = nil
		} else {
			defer metrics.Close()
		}
	}

	var uploader *api.Client
	if viper.GetBool("api.enabled") {
		uploader = api.New(viper.GetString("api.serverUrl"), viper.GetString("api.apiKey"))
		if err := uploader.Healthcheck(); err != nil {
			logger.Warn("Evaluation service unreachable, uploads disabled", "error", err)
			uploader = nil
		}
	}

	runner := &Runner{
		Config:   gen,
		Seed:     seed,
		Log:      logger,
		Backend:  backend,
		Metrics:  metrics,
		Uploader: uploader,
	}

	generated, err := runner.Run()
	if err != nil {
		logger.Error("Batch aborted", "generated", generated, "error", err)
		os.Exit(1)
	}
	logger.Info("Batch complete", "generated", generated, "duration", time.Since(sessionStart).String())
}
