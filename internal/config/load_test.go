package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ReturnsDefaultsWhenNoConfigFile(t *testing.T) {
	// Change to a temp directory with no config files
	tempDir := t.TempDir()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	defer func() {
		_ = os.Chdir(oldWd)
	}()
	t.Setenv("HOME", tempDir)

	cfg, err := Load(context.Background())
	require.NoError(t, err, "Load should not fail when no config file exists")
	require.NotNil(t, cfg)

	assert.Equal(t, DefaultConfig().Batch.GrabCount, cfg.Batch.GrabCount)
	assert.Equal(t, OutputFormatText, cfg.Output.Format)
	assert.InDelta(t, 1.25, cfg.Scoring.Multipliers["medium"], 0.0001)
}

func TestLoadFromPaths_ProjectConfigOverridesGlobal(t *testing.T) {
	ctx := context.Background()

	globalDir := t.TempDir()
	projectDir := t.TempDir()

	globalConfig := filepath.Join(globalDir, "config.yaml")
	err := os.WriteFile(globalConfig, []byte(`
batch:
  grab_count: 5
output:
  format: json
`), 0o600)
	require.NoError(t, err)

	projectConfig := filepath.Join(projectDir, "config.yaml")
	err = os.WriteFile(projectConfig, []byte(`
output:
  format: text
`), 0o600)
	require.NoError(t, err)

	cfg, err := LoadFromPaths(ctx, projectConfig, globalConfig)
	require.NoError(t, err)

	// Project wins for keys it sets, global survives elsewhere
	assert.Equal(t, OutputFormatText, cfg.Output.Format)
	assert.Equal(t, 5, cfg.Batch.GrabCount)
}

func TestLoadFromPaths_PartialMultiplierTable(t *testing.T) {
	ctx := context.Background()

	projectConfig := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(projectConfig, []byte(`
scoring:
  multipliers:
    critical: 3.0
`), 0o600)
	require.NoError(t, err)

	cfg, err := LoadFromPaths(ctx, projectConfig, "")
	require.NoError(t, err)

	assert.InDelta(t, 3.0, cfg.Scoring.Multipliers["critical"], 0.0001)
}

func TestLoadFromPaths_InvalidValuesRejected(t *testing.T) {
	ctx := context.Background()

	projectConfig := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(projectConfig, []byte(`
batch:
  grab_count: 100
`), 0o600)
	require.NoError(t, err)

	_, err = LoadFromPaths(ctx, projectConfig, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoadFromPaths_MissingFilesUseDefaults(t *testing.T) {
	ctx := context.Background()

	missing := filepath.Join(t.TempDir(), "nope.yaml")
	cfg, err := LoadFromPaths(ctx, missing, "")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Batch.GrabCount, cfg.Batch.GrabCount)
}

func TestLoad_EnvironmentVariableOverride(t *testing.T) {
	tempDir := t.TempDir()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	defer func() {
		_ = os.Chdir(oldWd)
	}()
	t.Setenv("HOME", tempDir)
	t.Setenv("ROADMAP_BATCH_GRAB_COUNT", "4")
	t.Setenv("ROADMAP_OUTPUT_FORMAT", "json")

	cfg, err := Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Batch.GrabCount)
	assert.Equal(t, OutputFormatJSON, cfg.Output.Format)
}

func TestLoadWithOverrides(t *testing.T) {
	tempDir := t.TempDir()
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	defer func() {
		_ = os.Chdir(oldWd)
	}()
	t.Setenv("HOME", tempDir)

	t.Run("non-zero fields applied", func(t *testing.T) {
		overrides := &Config{
			Batch:  BatchConfig{GrabCount: 7},
			Output: OutputConfig{Format: OutputFormatJSON},
		}

		cfg, err := LoadWithOverrides(context.Background(), overrides)
		require.NoError(t, err)

		assert.Equal(t, 7, cfg.Batch.GrabCount)
		assert.Equal(t, OutputFormatJSON, cfg.Output.Format)
		// Untouched sections keep defaults
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("zero fields ignored", func(t *testing.T) {
		cfg, err := LoadWithOverrides(context.Background(), &Config{})
		require.NoError(t, err)

		assert.Equal(t, DefaultConfig().Batch.GrabCount, cfg.Batch.GrabCount)
		assert.Equal(t, OutputFormatText, cfg.Output.Format)
	})

	t.Run("nil overrides", func(t *testing.T) {
		cfg, err := LoadWithOverrides(context.Background(), nil)
		require.NoError(t, err)
		require.NoError(t, Validate(cfg))
	})

	t.Run("invalid override rejected", func(t *testing.T) {
		overrides := &Config{Output: OutputConfig{Format: "csv"}}

		_, err := LoadWithOverrides(context.Background(), overrides)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "after overrides")
	})

	t.Run("multiplier entries merge", func(t *testing.T) {
		overrides := &Config{Scoring: ScoringConfig{
			Multipliers: map[string]float64{"critical": 4.0},
		}}

		cfg, err := LoadWithOverrides(context.Background(), overrides)
		require.NoError(t, err)

		assert.InDelta(t, 4.0, cfg.Scoring.Multipliers["critical"], 0.0001)
		assert.InDelta(t, 1.0, cfg.Scoring.Multipliers["low"], 0.0001)
	})
}

func TestWriteDefault(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	require.NoError(t, WriteDefault(path))

	cfg, err := LoadFromPaths(context.Background(), path, "")
	require.NoError(t, err)
	require.NoError(t, Validate(cfg))
	assert.Equal(t, 2, cfg.Batch.GrabCount)

	// Existing files are never overwritten
	require.NoError(t, os.WriteFile(path, []byte("batch:\n  grab_count: 9\n"), 0o600))
	require.NoError(t, WriteDefault(path))
	cfg, err = LoadFromPaths(context.Background(), path, "")
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Batch.GrabCount)
}
