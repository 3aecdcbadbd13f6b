// Package config loads, normalizes, and validates cutclean configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob the
// CLI needs: filter thresholds, path-rewrite roots, logging, and the run
// ledger location.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical pad modes, and clear validation errors.
package config
