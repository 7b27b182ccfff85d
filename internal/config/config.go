// internal/config/config.go
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// MemoryConfig holds in-memory/JSON storage backend settings.
type MemoryConfig struct {
	OutputDir      string `json:"outputDir" mapstructure:"outputDir"`
	CompressOutput bool   `json:"compressOutput" mapstructure:"compressOutput"`
}

// SQLiteConfig holds the embedded-database backend settings.
type SQLiteConfig struct {
	Path string `json:"path" mapstructure:"path"`
}

// StorageConfig selects and configures the persistence backend.
type StorageConfig struct {
	Type   string       `json:"type" mapstructure:"type"`
	Memory MemoryConfig `json:"memory" mapstructure:"memory"`
	SQLite SQLiteConfig `json:"sqlite" mapstructure:"sqlite"`
}

// GeneratorConfig holds the batch-run settings.
type GeneratorConfig struct {
	Count          int     `json:"count" mapstructure:"count"`
	Design         string  `json:"design" mapstructure:"design"`
	Seed           int64   `json:"seed" mapstructure:"seed"`
	AbortOnFailure bool    `json:"abortOnFailure" mapstructure:"abortOnFailure"`
	RoomDimX       float64 `json:"roomDimX" mapstructure:"roomDimX"`
	RoomDimZ       float64 `json:"roomDimZ" mapstructure:"roomDimZ"`
}

// Load reads configuration from a JSON file and sets default values.
// configDir is the directory containing the config file.
func Load(configDir string) error {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "./scenegenlogs")

	viper.SetDefault("generator.count", 1)
	viper.SetDefault("generator.design", "container")
	viper.SetDefault("generator.seed", 0)
	viper.SetDefault("generator.abortOnFailure", false)
	viper.SetDefault("generator.roomDimX", 10.0)
	viper.SetDefault("generator.roomDimZ", 10.0)

	viper.SetDefault("api.enabled", false)
	viper.SetDefault("api.serverUrl", "http://localhost:5000")
	viper.SetDefault("api.apiKey", "")

	viper.SetDefault("storage.type", "memory")
	viper.SetDefault("storage.memory.outputDir", "./hypercubes")
	viper.SetDefault("storage.memory.compressOutput", true)
	viper.SetDefault("storage.sqlite.path", "./scenegen.db")

	viper.SetDefault("db.host", "localhost")
	viper.SetDefault("db.port", "5432")
	viper.SetDefault("db.username", "postgres")
	viper.SetDefault("db.password", "postgres")
	viper.SetDefault("db.database", "scenegen")

	viper.SetDefault("influx.enabled", false)
	viper.SetDefault("influx.host", "localhost")
	viper.SetDefault("influx.port", "8086")
	viper.SetDefault("influx.protocol", "http")
	viper.SetDefault("influx.token", "")
	viper.SetDefault("influx.org", "scenegen-metrics")
	viper.SetDefault("influx.flushInterval", "5s")

	viper.SetConfigName("scenegen.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("error reading config file: %v", err)
	}

	return nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetStorageConfig returns the resolved storage section.
func GetStorageConfig() StorageConfig {
	var cfg StorageConfig
	cfg.Type = viper.GetString("storage.type")
	cfg.Memory.OutputDir = viper.GetString("storage.memory.outputDir")
	cfg.Memory.CompressOutput = viper.GetBool("storage.memory.compressOutput")
	cfg.SQLite.Path = viper.GetString("storage.sqlite.path")
	return cfg
}

// GetGeneratorConfig returns the resolved generator section.
func GetGeneratorConfig() GeneratorConfig {
	var cfg GeneratorConfig
	cfg.Count = viper.GetInt("generator.count")
	cfg.Design = viper.GetString("generator.design")
	cfg.Seed = viper.GetInt64("generator.seed")
	cfg.AbortOnFailure = viper.GetBool("generator.abortOnFailure")
	cfg.RoomDimX = viper.GetFloat64("generator.roomDimX")
	cfg.RoomDimZ = viper.GetFloat64("generator.roomDimZ")
	return cfg
}

// GetInfluxFlushInterval parses the influx flush interval, falling back to
// five seconds on a malformed value.
func GetInfluxFlushInterval() time.Duration {
	d, err := time.ParseDuration(viper.GetString("influx.flushInterval"))
	if err != nil {
		return 5 * time.Second
	}
	return d
}
