package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/roadmap/internal/constants"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, constants.DefaultGrabCount, cfg.Batch.GrabCount)
	assert.Equal(t, OutputFormatText, cfg.Output.Format)
	assert.True(t, cfg.Output.Color)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Console)

	assert.InDelta(t, 1.0, cfg.Scoring.Multipliers["low"], 0.0001)
	assert.InDelta(t, 1.25, cfg.Scoring.Multipliers["medium"], 0.0001)
	assert.InDelta(t, 1.5, cfg.Scoring.Multipliers["high"], 0.0001)
	assert.InDelta(t, 2.0, cfg.Scoring.Multipliers["critical"], 0.0001)
}

func TestDefaultConfig_IsValid(t *testing.T) {
	t.Parallel()

	require.NoError(t, Validate(DefaultConfig()))
}

func TestScoringConfig_ComplexityMultipliers(t *testing.T) {
	t.Parallel()

	t.Run("converts valid keys", func(t *testing.T) {
		t.Parallel()

		s := ScoringConfig{Multipliers: map[string]float64{
			"low":      1.0,
			"critical": 3.0,
		}}

		typed := s.ComplexityMultipliers()
		require.Len(t, typed, 2)
		assert.InDelta(t, 1.0, typed[constants.ComplexityLow], 0.0001)
		assert.InDelta(t, 3.0, typed[constants.ComplexityCritical], 0.0001)
	})

	t.Run("drops unknown keys", func(t *testing.T) {
		t.Parallel()

		s := ScoringConfig{Multipliers: map[string]float64{
			"medium":  1.25,
			"extreme": 5.0,
		}}

		typed := s.ComplexityMultipliers()
		require.Len(t, typed, 1)
		assert.InDelta(t, 1.25, typed[constants.ComplexityMedium], 0.0001)
	})

	t.Run("empty table", func(t *testing.T) {
		t.Parallel()

		s := ScoringConfig{}
		assert.Empty(t, s.ComplexityMultipliers())
	})
}
