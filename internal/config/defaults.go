package config

const (
	defaultMinDuration        = 3.0
	defaultTargetSamplingRate = 24000
	defaultNFFT               = 1024
	defaultPadMode            = "reflect"
	defaultForcedExtension    = ".wav"
	defaultPathColumn         = 2
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
	defaultLedgerPath         = "~/.local/share/cutclean/runs.db"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Filter: Filter{
			MinDuration:        defaultMinDuration,
			TargetSamplingRate: defaultTargetSamplingRate,
			TargetChannel:      []int{0},
			NFFT:               defaultNFFT,
			PadMode:            defaultPadMode,
		},
		Paths: Paths{
			ForcedExtension: defaultForcedExtension,
			PathColumn:      defaultPathColumn,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Ledger: Ledger{
			Enabled: true,
			Path:    defaultLedgerPath,
		},
	}
}
