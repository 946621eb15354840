// Package config provides configuration management for roadmap with layered precedence.
//
// Configuration sources are loaded in the following order (highest precedence first):
//  1. CLI flags (passed via LoadWithOverrides)
//  2. Environment variables (ROADMAP_* prefix)
//  3. Project config (.roadmap/config.yaml)
//  4. Global config (~/.roadmap/config.yaml)
//  5. Built-in defaults
//
// Each higher level completely overrides the lower level for the same key.
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import internal/domain or other internal packages.
package config

import (
	"github.com/mrz1836/roadmap/internal/constants"
)

// Config is the root configuration structure for roadmap.
// It contains all configuration sections for the application.
type Config struct {
	// Scoring contains settings for work item scoring and prioritization.
	Scoring ScoringConfig `yaml:"scoring" mapstructure:"scoring"`

	// Batch contains settings for batch work selection.
	Batch BatchConfig `yaml:"batch" mapstructure:"batch"`

	// Output contains settings for CLI output rendering.
	Output OutputConfig `yaml:"output" mapstructure:"output"`

	// Log contains settings for the CLI log file.
	Log LogConfig `yaml:"log" mapstructure:"log"`
}

// ScoringConfig contains settings for work item scoring.
// Scores drive critical path calculation and availability ordering.
type ScoringConfig struct {
	// Multipliers maps complexity names to score multipliers.
	// A work item's score is its estimate in hours times the multiplier
	// for its complexity. Unknown complexity values use a multiplier of 1.
	// Defaults: {"low": 1.0, "medium": 1.25, "high": 1.5, "critical": 2.0}
	Multipliers map[string]float64 `yaml:"multipliers" mapstructure:"multipliers"`
}

// ComplexityMultipliers converts the configured multiplier table into the
// typed form consumed by the resolver. Keys that are not valid complexity
// names are dropped.
func (s *ScoringConfig) ComplexityMultipliers() map[constants.Complexity]float64 {
	out := make(map[constants.Complexity]float64, len(s.Multipliers))
	for name, mult := range s.Multipliers {
		c := constants.Complexity(name)
		if c.IsValid() {
			out[c] = mult
		}
	}
	return out
}

// BatchConfig contains settings for batch work selection.
type BatchConfig struct {
	// GrabCount is the number of extra work items collected beyond the
	// primary when grabbing a batch. Sibling tasks in the same epic are
	// preferred, then mutually independent bugs.
	// Default: 2
	GrabCount int `yaml:"grab_count" mapstructure:"grab_count"`
}

// OutputConfig contains settings for CLI output rendering.
type OutputConfig struct {
	// Format selects the output format ("text" or "json").
	// Default: "text"
	Format string `yaml:"format" mapstructure:"format"`

	// Color enables ANSI color in text output when the terminal supports it.
	// Default: true
	Color bool `yaml:"color" mapstructure:"color"`
}

// Output format values accepted by OutputConfig.Format.
const (
	// OutputFormatText renders human readable text.
	OutputFormatText = "text"

	// OutputFormatJSON renders machine readable JSON.
	OutputFormatJSON = "json"
)

// LogConfig contains settings for the CLI log file.
type LogConfig struct {
	// Level is the minimum log level ("debug", "info", "warn", "error").
	// Default: "info"
	Level string `yaml:"level" mapstructure:"level"`

	// Console mirrors log output to stderr in addition to the log file.
	// Default: false
	Console bool `yaml:"console" mapstructure:"console"`
}
