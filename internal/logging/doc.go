// Package logging assembles structured slog loggers used across cutclean
// commands.
//
// It owns the configurable console/JSON handlers and centralizes level and
// output plumbing. The package also provides a no-op logger for tests and
// wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup to ensure new
// components emit data with the same shape as the rest of the system.
package logging
