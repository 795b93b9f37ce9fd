// Package logging provides structured logger construction on top of
// log/slog: level and format parsing, optional source annotation, and a
// component convention used across the repository.
package logging
