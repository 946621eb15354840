package config

import (
	"github.com/mrz1836/roadmap/internal/constants"
)

// DefaultConfig returns a new Config with sensible default values.
// These defaults are used as the base layer that can be overridden by
// config files, environment variables, and CLI flags.
func DefaultConfig() *Config {
	return &Config{
		Scoring: ScoringConfig{
			// Multipliers: the standard complexity weighting. Higher
			// complexity work contributes more to the critical path.
			Multipliers: defaultMultiplierMap(),
		},
		Batch: BatchConfig{
			// GrabCount: 2 extras keeps a batch small enough to finish
			// in one sitting while still reducing round trips.
			GrabCount: constants.DefaultGrabCount,
		},
		Output: OutputConfig{
			// Format: text is the human facing default.
			// Scripts can override to "json".
			Format: OutputFormatText,

			// Color: enabled, automatically suppressed on non-TTY output.
			Color: true,
		},
		Log: LogConfig{
			// Level: info keeps the log file useful without being noisy.
			Level: "info",

			// Console: disabled so command output stays clean.
			Console: false,
		},
	}
}

// defaultMultiplierMap returns the default complexity multiplier table
// keyed by plain strings, matching the shape of the config file.
func defaultMultiplierMap() map[string]float64 {
	typed := constants.DefaultComplexityMultipliers()
	out := make(map[string]float64, len(typed))
	for c, mult := range typed {
		out[c.String()] = mult
	}
	return out
}
