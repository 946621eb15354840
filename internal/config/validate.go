package config

import (
	"github.com/mrz1836/roadmap/internal/constants"
	"github.com/mrz1836/roadmap/internal/errors"
)

// maxGrabCount bounds batch size so a grab never claims a whole epic.
const maxGrabCount = 10

// Validate checks the configuration for invalid or inconsistent values.
// It returns an error describing the first validation failure found.
//
// Validation rules:
//   - scoring multipliers must name valid complexities and be positive
//   - batch grab count must be between 0 and 10
//   - output format must be "text" or "json"
//   - log level must be a known level name
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	if err := validateScoringConfig(&cfg.Scoring); err != nil {
		return err
	}

	if err := validateBatchConfig(&cfg.Batch); err != nil {
		return err
	}

	if err := validateOutputConfig(&cfg.Output); err != nil {
		return err
	}

	return validateLogConfig(&cfg.Log)
}

// validateScoringConfig checks the complexity multiplier table.
func validateScoringConfig(cfg *ScoringConfig) error {
	for name, mult := range cfg.Multipliers {
		if !constants.Complexity(name).IsValid() {
			return errors.Wrapf(errors.ErrConfigInvalidScoring,
				"scoring.multipliers key %q is not a valid complexity", name)
		}
		if mult <= 0 {
			return errors.Wrapf(errors.ErrConfigInvalidScoring,
				"scoring.multipliers.%s must be positive, got %g", name, mult)
		}
	}
	return nil
}

// validateBatchConfig checks batch selection values.
func validateBatchConfig(cfg *BatchConfig) error {
	if cfg.GrabCount < 0 || cfg.GrabCount > maxGrabCount {
		return errors.Wrapf(errors.ErrConfigInvalidBatch,
			"batch.grab_count must be between 0 and %d, got %d", maxGrabCount, cfg.GrabCount)
	}
	return nil
}

// validateOutputConfig checks output rendering values.
func validateOutputConfig(cfg *OutputConfig) error {
	switch cfg.Format {
	case OutputFormatText, OutputFormatJSON:
		return nil
	default:
		return errors.Wrapf(errors.ErrInvalidOutputFormat,
			"output.format must be %q or %q, got %q", OutputFormatText, OutputFormatJSON, cfg.Format)
	}
}

// validateLogConfig checks log settings.
func validateLogConfig(cfg *LogConfig) error {
	switch cfg.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return errors.Wrapf(errors.ErrConfigInvalidLog,
			"log.level must be one of debug, info, warn, error, got %q", cfg.Level)
	}
}
