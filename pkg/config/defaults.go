package config

import "time"

// Default values for configuration fields.
const (
	// Charts defaults
	DefaultChartsPath = "./charts"

	// Engine defaults
	DefaultEngineFatalCombustion = true
	DefaultEngineTrace           = false

	// Evidence defaults
	DefaultEvidenceEnabled             = true
	DefaultEvidenceBackend             = "sqlite"
	DefaultEvidenceSQLitePath          = "data/verdicts.db"
	DefaultEvidenceSQLiteMaxOpenConns  = 10
	DefaultEvidenceSQLiteMaxIdleConns  = 5
	DefaultEvidenceSQLiteWALMode       = true
	DefaultEvidenceSQLiteBusyTimeout   = 5 * time.Second
	DefaultEvidenceRecorderAsyncBuffer = 1000
	DefaultEvidenceRecorderWriteT      = 5 * time.Second
	DefaultEvidenceRetentionDays       = 90
	DefaultEvidenceRetentionSchedule   = "0 3 * * *"
	DefaultEvidenceRetentionMaxRecords = int64(0)

	// Telemetry defaults
	DefaultLoggingLevel         = "info"
	DefaultLoggingFormat        = "json"
	DefaultMetricsEnabled       = true
	DefaultMetricsNamespace     = "horarium"
	DefaultMetricsPath          = "/metrics"
	DefaultMetricsListenAddress = "127.0.0.1:9090"
)

// ApplyDefaults fills in default values for any configuration fields that
// were not explicitly set. Zero values for strings and numbers are treated
// as unset; optional booleans distinguish unset via nil pointers.
func ApplyDefaults(cfg *Config) {
	// Charts defaults
	if cfg.Charts.Path == "" {
		cfg.Charts.Path = DefaultChartsPath
	}

	// Engine defaults
	if cfg.Engine.FatalCombustion == nil {
		v := DefaultEngineFatalCombustion
		cfg.Engine.FatalCombustion = &v
	}

	// Evidence defaults
	if cfg.Evidence.Enabled == nil {
		v := DefaultEvidenceEnabled
		cfg.Evidence.Enabled = &v
	}
	if cfg.Evidence.Backend == "" {
		cfg.Evidence.Backend = DefaultEvidenceBackend
	}
	if cfg.Evidence.SQLite.Path == "" {
		cfg.Evidence.SQLite.Path = DefaultEvidenceSQLitePath
	}
	if cfg.Evidence.SQLite.MaxOpenConns == 0 {
		cfg.Evidence.SQLite.MaxOpenConns = DefaultEvidenceSQLiteMaxOpenConns
	}
	if cfg.Evidence.SQLite.MaxIdleConns == 0 {
		cfg.Evidence.SQLite.MaxIdleConns = DefaultEvidenceSQLiteMaxIdleConns
	}
	if cfg.Evidence.SQLite.WALMode == nil {
		v := DefaultEvidenceSQLiteWALMode
		cfg.Evidence.SQLite.WALMode = &v
	}
	if cfg.Evidence.SQLite.BusyTimeout == 0 {
		cfg.Evidence.SQLite.BusyTimeout = DefaultEvidenceSQLiteBusyTimeout
	}
	if cfg.Evidence.Recorder.AsyncBuffer == 0 {
		cfg.Evidence.Recorder.AsyncBuffer = DefaultEvidenceRecorderAsyncBuffer
	}
	if cfg.Evidence.Recorder.WriteTimeout == 0 {
		cfg.Evidence.Recorder.WriteTimeout = DefaultEvidenceRecorderWriteT
	}
	if cfg.Evidence.Retention.Days == 0 {
		cfg.Evidence.Retention.Days = DefaultEvidenceRetentionDays
	}
	if cfg.Evidence.Retention.Schedule == "" {
		cfg.Evidence.Retention.Schedule = DefaultEvidenceRetentionSchedule
	}

	// Telemetry defaults
	if cfg.Telemetry.Logging.Level == "" {
		cfg.Telemetry.Logging.Level = DefaultLoggingLevel
	}
	if cfg.Telemetry.Logging.Format == "" {
		cfg.Telemetry.Logging.Format = DefaultLoggingFormat
	}
	if cfg.Telemetry.Metrics.Enabled == nil {
		v := DefaultMetricsEnabled
		cfg.Telemetry.Metrics.Enabled = &v
	}
	if cfg.Telemetry.Metrics.Namespace == "" {
		cfg.Telemetry.Metrics.Namespace = DefaultMetricsNamespace
	}
	if cfg.Telemetry.Metrics.Path == "" {
		cfg.Telemetry.Metrics.Path = DefaultMetricsPath
	}
	if cfg.Telemetry.Metrics.ListenAddress == "" {
		cfg.Telemetry.Metrics.ListenAddress = DefaultMetricsListenAddress
	}
}

// DefaultConfig returns a fully defaulted configuration.
func DefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}
