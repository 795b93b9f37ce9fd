package config

import "time"

// Config is the root configuration structure for Horarium.
// It contains all configuration sections for chart sources, the evaluation
// engine, verdict evidence storage, and telemetry settings.
type Config struct {
	// Charts contains configuration for the chart source including the
	// file or directory path and watch mode.
	Charts ChartsConfig `yaml:"charts"`

	// Engine contains configuration for the evaluation engine including
	// combustion handling and trace capture.
	Engine EngineConfig `yaml:"engine"`

	// Evidence contains configuration for verdict record storage including
	// backend selection, async recording, and retention settings.
	Evidence EvidenceConfig `yaml:"evidence"`

	// Telemetry contains configuration for observability including logging
	// and metrics.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ChartsConfig contains configuration for the chart source.
type ChartsConfig struct {
	// Path is the chart file or directory to load charts from.
	// Default: "./charts"
	Path string `yaml:"path"`
}

// EngineConfig contains configuration for the evaluation engine.
type EngineConfig struct {
	// FatalCombustion controls whether a combustion blocker forces a NO
	// verdict. When false, combustion is recorded in the trace but does not
	// block. A nil value means the default.
	// Default: true
	FatalCombustion *bool `yaml:"fatal_combustion"`

	// Trace controls whether the engine captures a step-by-step trace of
	// each evaluation alongside the proof trail.
	// Default: false
	Trace bool `yaml:"trace"`
}

// EvidenceConfig contains configuration for verdict evidence storage.
type EvidenceConfig struct {
	// Enabled controls whether verdict records are persisted at all.
	// Default: true
	Enabled *bool `yaml:"enabled"`

	// Backend selects the storage backend.
	// Valid values: "memory", "sqlite".
	// Default: "sqlite"
	Backend string `yaml:"backend"`

	// SQLite contains SQLite-specific backend configuration.
	SQLite SQLiteConfig `yaml:"sqlite"`

	// Recorder contains configuration for the async verdict recorder.
	Recorder RecorderConfig `yaml:"recorder"`

	// Retention contains configuration for automatic record pruning.
	Retention RetentionConfig `yaml:"retention"`
}

// SQLiteConfig contains configuration for the SQLite evidence backend.
type SQLiteConfig struct {
	// Path is the filesystem path to the SQLite database file.
	// Default: "data/verdicts.db"
	Path string `yaml:"path"`

	// MaxOpenConns limits the number of open database connections.
	// Default: 10
	MaxOpenConns int `yaml:"max_open_conns"`

	// MaxIdleConns limits the number of idle database connections.
	// Default: 5
	MaxIdleConns int `yaml:"max_idle_conns"`

	// WALMode controls whether write-ahead logging is enabled.
	// Default: true
	WALMode *bool `yaml:"wal_mode"`

	// BusyTimeout is how long SQLite waits on a locked database before
	// returning SQLITE_BUSY.
	// Default: 5s
	BusyTimeout time.Duration `yaml:"busy_timeout"`
}

// RecorderConfig contains configuration for the async verdict recorder.
type RecorderConfig struct {
	// AsyncBuffer is the size of the in-memory record queue. Records are
	// dropped with a warning once the queue is full.
	// Default: 1000
	AsyncBuffer int `yaml:"async_buffer"`

	// WriteTimeout is the maximum duration for a single storage write.
	// Default: 5s
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// RetentionConfig contains configuration for automatic record pruning.
type RetentionConfig struct {
	// Days is how long verdict records are kept before pruning.
	// A negative value disables age-based pruning.
	// Default: 90
	Days int `yaml:"days"`

	// Schedule is the cron expression controlling when pruning runs.
	// Default: "0 3 * * *" (daily at 3am)
	Schedule string `yaml:"schedule"`

	// MaxRecords caps the total number of stored records; the oldest are
	// pruned first. A value of 0 means no cap.
	// Default: 0
	MaxRecords int64 `yaml:"max_records"`
}

// TelemetryConfig contains configuration for observability.
type TelemetryConfig struct {
	// Logging contains structured logging configuration.
	Logging LoggingConfig `yaml:"logging"`

	// Metrics contains Prometheus metrics configuration.
	Metrics MetricsConfig `yaml:"metrics"`
}

// LoggingConfig contains structured logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level.
	// Valid values: "debug", "info", "warn", "error".
	// Default: "info"
	Level string `yaml:"level"`

	// Format selects the log output format.
	// Valid values: "json", "text".
	// Default: "json"
	Format string `yaml:"format"`

	// AddSource controls whether log records include source file positions.
	// Default: false
	AddSource bool `yaml:"add_source"`
}

// MetricsConfig contains Prometheus metrics configuration.
type MetricsConfig struct {
	// Enabled controls whether metrics are collected and exposed.
	// Default: true
	Enabled *bool `yaml:"enabled"`

	// Namespace is the prefix applied to all metric names.
	// Default: "horarium"
	Namespace string `yaml:"namespace"`

	// Path is the HTTP path the exposition endpoint is mounted at.
	// Default: "/metrics"
	Path string `yaml:"path"`

	// ListenAddress is the address the metrics server listens on.
	// Format: "host:port".
	// Default: "127.0.0.1:9090"
	ListenAddress string `yaml:"listen_address"`
}

// FatalCombustionOrDefault returns the configured FatalCombustion value,
// or the default when unset.
func (c *EngineConfig) FatalCombustionOrDefault() bool {
	if c.FatalCombustion == nil {
		return DefaultEngineFatalCombustion
	}
	return *c.FatalCombustion
}

// EnabledOrDefault returns the configured Enabled value, or the default
// when unset.
func (c *EvidenceConfig) EnabledOrDefault() bool {
	if c.Enabled == nil {
		return DefaultEvidenceEnabled
	}
	return *c.Enabled
}

// EnabledOrDefault returns the configured Enabled value, or the default
// when unset.
func (c *MetricsConfig) EnabledOrDefault() bool {
	if c.Enabled == nil {
		return DefaultMetricsEnabled
	}
	return *c.Enabled
}
