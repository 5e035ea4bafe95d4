package app

import "errors"

// File suffixes recognized by the conversion pipeline.
const (
	ModuleSuffix = ".hcl"
	OutputSuffix = ".ncl"
)

// Config holds everything an App instance needs to run one conversion.
type Config struct {
	ModulePath   string // module data file, or a directory of them
	EnsemblePath string // YAML ensemble spec (walk mode)
	OutputPath   string // optional override for the derived output path

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it ready for use.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ModulePath == "" && cfg.EnsemblePath == "" {
		return nil, errors.New("either ModulePath or EnsemblePath is required")
	}
	if cfg.ModulePath != "" && cfg.EnsemblePath != "" {
		return nil, errors.New("ModulePath and EnsemblePath are mutually exclusive")
	}
	return &cfg, nil
}
