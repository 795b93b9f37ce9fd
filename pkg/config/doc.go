// Package config provides configuration management for Horarium.
//
// This package handles loading, validating, and managing configuration from
// YAML files with environment variable overrides. It provides a type-safe
// configuration system with validation and sensible defaults.
//
// # Configuration Loading
//
// Configuration can be loaded in two ways:
//
//  1. From a YAML file only:
//     cfg, err := config.LoadConfig("config.yaml")
//
//  2. From a YAML file with environment variable overrides:
//     cfg, err := config.LoadConfigWithEnvOverrides("config.yaml")
//
// # Environment Variable Overrides
//
// Environment variables follow the naming convention HORARIUM_SECTION_FIELD.
// For example:
//
//   - HORARIUM_CHARTS_PATH overrides charts.path
//   - HORARIUM_ENGINE_FATAL_COMBUSTION overrides engine.fatal_combustion
//   - HORARIUM_TELEMETRY_LOGGING_LEVEL overrides telemetry.logging.level
//
// Environment variables always take precedence over file-based configuration.
//
// # Configuration Precedence
//
// Configuration values are applied in the following order (later overrides earlier):
//
//  1. Default values (defined in defaults.go)
//  2. Values from YAML file
//  3. Environment variable overrides
//  4. Validation (fails fast if invalid)
//
// # Optional Booleans
//
// Boolean fields whose default is true (engine.fatal_combustion,
// evidence.enabled, telemetry.metrics.enabled) are pointers so that an
// explicit false in the file can be distinguished from an absent field.
// Use the *OrDefault accessors to read them.
package config
