package main

import (
	"fmt"
	"os"

	"stellium-hq/horarium/pkg/config"
	"stellium-hq/horarium/pkg/evidence"
	"stellium-hq/horarium/pkg/evidence/storage"
	"stellium-hq/horarium/pkg/telemetry/logging"

	"log/slog"
)

// loadConfig loads the configuration file named by the global --config flag.
// A missing file is not an error; the defaults are used instead so that the
// CLI works out of the box.
func loadConfig() (*config.Config, error) {
	if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfigWithEnvOverrides(cfgFile)
}

// buildLogger constructs the process logger from the telemetry section,
// honoring the global --verbose flag.
func buildLogger(cfg *config.Config) (*slog.Logger, error) {
	level := cfg.Telemetry.Logging.Level
	if verbose {
		level = "debug"
	}
	return logging.New(logging.Config{
		Level:     level,
		Format:    cfg.Telemetry.Logging.Format,
		AddSource: cfg.Telemetry.Logging.AddSource,
	})
}

// openStorage constructs the evidence storage backend selected by the
// configuration. The caller owns the returned storage and must close it.
func openStorage(cfg *config.Config) (evidence.Storage, error) {
	switch cfg.Evidence.Backend {
	case "sqlite":
		sqliteConfig := &storage.SQLiteConfig{
			Path:         cfg.Evidence.SQLite.Path,
			MaxOpenConns: cfg.Evidence.SQLite.MaxOpenConns,
			MaxIdleConns: cfg.Evidence.SQLite.MaxIdleConns,
			WALMode:      cfg.Evidence.SQLite.WALMode == nil || *cfg.Evidence.SQLite.WALMode,
			BusyTimeout:  cfg.Evidence.SQLite.BusyTimeout,
		}
		return storage.NewSQLiteStorage(sqliteConfig)
	case "memory":
		return storage.NewMemoryStorage(), nil
	default:
		return nil, fmt.Errorf("unsupported evidence backend: %s (supported: sqlite, memory)", cfg.Evidence.Backend)
	}
}
