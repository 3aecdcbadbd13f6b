package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeFilter()
	c.normalizePaths()
	c.normalizeLogging()
	return c.normalizeLedger()
}

func (c *Config) normalizeFilter() {
	c.Filter.PadMode = strings.ToLower(strings.TrimSpace(c.Filter.PadMode))
	if c.Filter.PadMode == "" {
		c.Filter.PadMode = defaultPadMode
	}
	if c.Filter.TargetSamplingRate <= 0 {
		c.Filter.TargetSamplingRate = defaultTargetSamplingRate
	}
	if c.Filter.NFFT <= 0 {
		c.Filter.NFFT = defaultNFFT
	}
	if len(c.Filter.TargetChannel) == 0 {
		c.Filter.TargetChannel = []int{0}
	}
}

func (c *Config) normalizePaths() {
	c.Paths.OldRoot = strings.TrimSpace(c.Paths.OldRoot)
	c.Paths.NewRoot = strings.TrimSpace(c.Paths.NewRoot)
	c.Paths.ForcedExtension = strings.TrimSpace(c.Paths.ForcedExtension)
	if c.Paths.ForcedExtension != "" && !strings.HasPrefix(c.Paths.ForcedExtension, ".") {
		c.Paths.ForcedExtension = "." + c.Paths.ForcedExtension
	}
	if c.Paths.PathColumn == 0 {
		c.Paths.PathColumn = defaultPathColumn
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.LogDir = strings.TrimSpace(c.Logging.LogDir)
}

func (c *Config) normalizeLedger() error {
	var err error
	if strings.TrimSpace(c.Ledger.Path) == "" {
		c.Ledger.Path = defaultLedgerPath
	}
	if c.Ledger.Path, err = expandPath(c.Ledger.Path); err != nil {
		return fmt.Errorf("ledger.path: %w", err)
	}
	if c.Logging.LogDir != "" {
		if c.Logging.LogDir, err = expandPath(c.Logging.LogDir); err != nil {
			return fmt.Errorf("logging.log_dir: %w", err)
		}
	}
	return nil
}
