package config

import (
	"context"
	stderrors "errors"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/mrz1836/roadmap/internal/constants"
	"github.com/mrz1836/roadmap/internal/errors"
)

// newViperInstance creates a new Viper instance with standard roadmap
// configuration. This includes the environment variable prefix (ROADMAP_),
// key replacer, and defaults.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("ROADMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// setDefaults registers the built-in defaults on the Viper instance.
// Every key must have a default so environment variables bind to it.
func setDefaults(v *viper.Viper) {
	def := DefaultConfig()

	// Scoring defaults
	v.SetDefault("scoring.multipliers", def.Scoring.Multipliers)

	// Batch defaults
	v.SetDefault("batch.grab_count", def.Batch.GrabCount)

	// Output defaults
	v.SetDefault("output.format", def.Output.Format)
	v.SetDefault("output.color", def.Output.Color)

	// Log defaults
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.console", def.Log.Console)
}

// isConfigNotFoundError returns true if the error is a viper config file
// not found error.
func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var configNotFoundErr viper.ConfigFileNotFoundError
	return stderrors.As(err, &configNotFoundErr)
}

// unmarshalAndValidate unmarshals viper config into Config struct and validates it.
func unmarshalAndValidate(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// Load reads configuration from all available sources with proper precedence.
// Configuration is loaded in the following order (highest precedence first):
//  1. Environment variables (ROADMAP_* prefix)
//  2. Project config (.roadmap/config.yaml)
//  3. Global config (~/.roadmap/config.yaml)
//  4. Built-in defaults
//
// For CLI flag overrides, use LoadWithOverrides instead.
//
// The function returns an error only for actual configuration problems,
// not for missing config files.
func Load(ctx context.Context) (*Config, error) {
	v := newViperInstance()

	// Global config provides user-wide defaults
	if err := loadGlobalConfig(v); err != nil {
		return nil, err
	}

	// Project config merges over global
	if err := loadProjectConfig(v); err != nil {
		return nil, err
	}

	cfg, err := unmarshalAndValidate(v)
	if err != nil {
		return nil, err
	}

	logger := zerolog.Ctx(ctx).With().Str("component", "config").Logger()
	logger.Debug().
		Int("batch.grab_count", cfg.Batch.GrabCount).
		Str("output.format", cfg.Output.Format).
		Msg("configuration loaded")

	return cfg, nil
}

// loadGlobalConfig attempts to load the global config file (~/.roadmap/config.yaml).
// Returns nil if the file doesn't exist or home directory cannot be determined.
func loadGlobalConfig(v *viper.Viper) error {
	globalConfigPath, ok := getGlobalConfigPathIfExists()
	if !ok {
		return nil
	}

	v.SetConfigFile(globalConfigPath)
	if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) {
		return errors.Wrap(err, "failed to read global config file")
	}
	return nil
}

// getGlobalConfigPathIfExists returns the global config path if it exists.
// Returns empty string and false if the home directory cannot be determined
// or the config file does not exist.
func getGlobalConfigPathIfExists() (string, bool) {
	globalConfigPath, err := GlobalConfigPath()
	if err != nil {
		return "", false
	}
	if _, err := os.Stat(globalConfigPath); err != nil {
		return "", false
	}
	return globalConfigPath, true
}

// loadProjectConfig attempts to load the project config file (.roadmap/config.yaml).
// Returns nil if the file doesn't exist.
func loadProjectConfig(v *viper.Viper) error {
	projectConfigPath := ProjectConfigPath()
	if !fileExists(projectConfigPath) {
		return nil
	}

	v.SetConfigFile(projectConfigPath)
	if err := v.MergeInConfig(); err != nil && !isConfigNotFoundError(err) {
		return errors.Wrap(err, "failed to read project config file")
	}
	return nil
}

// fileExists returns true if the file at path exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// LoadWithOverrides loads configuration and applies CLI flag overrides.
// The overrides parameter contains values from CLI flags which have the
// highest precedence in the configuration hierarchy.
//
// Only non-zero values in overrides are applied. Zero values are ignored
// to allow partial overrides.
func LoadWithOverrides(ctx context.Context, overrides *Config) (*Config, error) {
	cfg, err := Load(ctx)
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		applyOverrides(cfg, overrides)
	}

	// Re-validate after applying overrides
	if err := Validate(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration after overrides")
	}

	return cfg, nil
}

// applyOverrides copies non-zero fields from overrides onto cfg.
// Multiplier entries merge onto the base table per key.
func applyOverrides(cfg, overrides *Config) {
	for name, mult := range overrides.Scoring.Multipliers {
		if cfg.Scoring.Multipliers == nil {
			cfg.Scoring.Multipliers = make(map[string]float64, len(overrides.Scoring.Multipliers))
		}
		cfg.Scoring.Multipliers[name] = mult
	}

	if overrides.Batch.GrabCount > 0 {
		cfg.Batch.GrabCount = overrides.Batch.GrabCount
	}

	if overrides.Output.Format != "" {
		cfg.Output.Format = overrides.Output.Format
	}

	if overrides.Log.Level != "" {
		cfg.Log.Level = overrides.Log.Level
	}
	if overrides.Log.Console {
		cfg.Log.Console = true
	}
}

// LoadFromPaths loads configuration from specific file paths for testing.
// This function allows precise control over which config files are loaded.
//
// projectConfigPath is the path to project-level config (higher priority).
// globalConfigPath is the path to global config (lower priority).
// Either path can be empty to skip that level.
func LoadFromPaths(_ context.Context, projectConfigPath, globalConfigPath string) (*Config, error) {
	v := newViperInstance()

	if globalConfigPath != "" {
		v.SetConfigFile(globalConfigPath)
		if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to read global config: %s", globalConfigPath)
		}
	}

	if projectConfigPath != "" {
		v.SetConfigFile(projectConfigPath)
		if err := v.MergeInConfig(); err != nil && !isConfigNotFoundError(err) && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to read project config: %s", projectConfigPath)
		}
	}

	return unmarshalAndValidate(v)
}

// WriteDefault writes a commented default config file to path if no file
// exists there yet. Used by project initialization.
func WriteDefault(path string) error {
	if fileExists(path) {
		return nil
	}

	content := "# roadmap configuration (" + constants.ProjectConfigName + ")\n" +
		"# All keys are optional. Values shown are the defaults.\n" +
		"\n" +
		"scoring:\n" +
		"  multipliers:\n" +
		"    low: 1.0\n" +
		"    medium: 1.25\n" +
		"    high: 1.5\n" +
		"    critical: 2.0\n" +
		"\n" +
		"batch:\n" +
		"  grab_count: 2\n" +
		"\n" +
		"output:\n" +
		"  format: text\n" +
		"  color: true\n" +
		"\n" +
		"log:\n" +
		"  level: info\n"

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write default config: %s", path)
	}
	return nil
}
