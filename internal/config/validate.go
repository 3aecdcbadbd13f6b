package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateFilter(); err != nil {
		return err
	}
	if err := c.validatePaths(); err != nil {
		return err
	}
	return c.validateLedger()
}

func (c *Config) validateFilter() error {
	if c.Filter.MinDuration < 0 {
		return errors.New("filter.min_duration must be >= 0")
	}
	if c.Filter.TargetSamplingRate <= 0 {
		return errors.New("filter.target_sampling_rate must be positive")
	}
	if c.Filter.NFFT <= 0 {
		return errors.New("filter.n_fft must be positive")
	}
	switch c.Filter.PadMode {
	case "reflect", "replicate", "constant":
	default:
		return fmt.Errorf("filter.pad_mode must be reflect, replicate, or constant (got %q)", c.Filter.PadMode)
	}
	for _, ch := range c.Filter.TargetChannel {
		if ch < 0 {
			return fmt.Errorf("filter.target_channel entries must be >= 0 (got %d)", ch)
		}
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.PathColumn < 0 {
		return errors.New("paths.path_column must be >= 0")
	}
	if c.Paths.ForcedExtension != "" && !strings.HasPrefix(c.Paths.ForcedExtension, ".") {
		return fmt.Errorf("paths.forced_extension must start with a dot (got %q)", c.Paths.ForcedExtension)
	}
	return nil
}

func (c *Config) validateLedger() error {
	if c.Ledger.Enabled && strings.TrimSpace(c.Ledger.Path) == "" {
		return errors.New("ledger.path must be set when ledger.enabled is true")
	}
	return nil
}
