package testsupport

import (
	"path/filepath"
	"testing"

	"cutclean/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with a unique temp ledger path per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Ledger.Path = filepath.Join(base, "runs.db")
	cfg.Logging.Level = "error"

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithMinDuration overrides the minimum cut duration on the test config.
func WithMinDuration(seconds float64) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Filter.MinDuration = seconds
	}
}

// WithPathRoots sets the old/new roots used for TSV path rewriting.
func WithPathRoots(oldRoot, newRoot string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Paths.OldRoot = oldRoot
		cfg.Paths.NewRoot = newRoot
	}
}
