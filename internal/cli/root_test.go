package cli

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/roadmap/internal/errors"
)

func TestRootCmd_Help(t *testing.T) {
	t.Parallel()

	flags := &GlobalFlags{}
	cmd := newRootCmd(flags, BuildInfo{Version: "test"})
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "roadmap")
	assert.Contains(t, output, "--output")
	assert.Contains(t, output, "--verbose")
	assert.Contains(t, output, "--quiet")
	for _, sub := range []string{"init", "status", "next", "list", "claim", "grab", "done", "reject", "move", "check", "show"} {
		assert.Contains(t, output, sub)
	}
}

func TestRootCmd_Version(t *testing.T) {
	t.Parallel()

	flags := &GlobalFlags{}
	cmd := newRootCmd(flags, BuildInfo{Version: "1.2.3", Commit: "abc1234", Date: "2025-06-01"})
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--version"})

	require.NoError(t, cmd.Execute())

	output := buf.String()
	assert.Contains(t, output, "1.2.3")
	assert.Contains(t, output, "abc1234")
	assert.Contains(t, output, "2025-06-01")
}

func TestRootCmd_InvalidOutputFormat(t *testing.T) {
	t.Parallel()

	flags := &GlobalFlags{}
	cmd := newRootCmd(flags, BuildInfo{})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--output", "xml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestRootCmd_VerboseQuietMutuallyExclusive(t *testing.T) {
	t.Parallel()

	flags := &GlobalFlags{}
	cmd := newRootCmd(flags, BuildInfo{})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--verbose", "--quiet"})

	err := cmd.Execute()
	require.Error(t, err)
}

func TestFormatVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		info BuildInfo
		want string
	}{
		{
			name: "full info",
			info: BuildInfo{Version: "1.0.0", Commit: "abc", Date: "2025-01-01"},
			want: "1.0.0 (commit: abc, built: 2025-01-01)",
		},
		{
			name: "defaults",
			info: BuildInfo{},
			want: "dev (commit: none, built: unknown)",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, formatVersion(tc.info))
		})
	}
}

func TestGetLogger_EmitsThroughConfiguredWriter(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerWithWriter(false, false, &buf)

	// The returned logger is a value; level methods need an addressable
	// copy, so call sites assign before chaining.
	logger := GetLogger()
	logger.Info().Str("task", "P1.M1.E1.T001").Msg("task claimed")
	logger.Warn().Msg("failed to update context snapshot")

	out := buf.String()
	assert.Contains(t, out, `"task":"P1.M1.E1.T001"`)
	assert.Contains(t, out, "task claimed")
	assert.Contains(t, out, "failed to update context snapshot")
}

func TestSuggestion(t *testing.T) {
	t.Parallel()

	t.Run("wrapped sentinel carries its action", func(t *testing.T) {
		t.Parallel()

		err := errors.Wrapf(errors.ErrNotFound, "task %s", "P9.M9.E9.T999")
		assert.Contains(t, suggestion(err), "roadmap list")
	})

	t.Run("missing reason points at the flag", func(t *testing.T) {
		t.Parallel()

		assert.Contains(t, suggestion(errors.ErrMissingReason), "--reason")
	})

	t.Run("unknown errors have no action", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, suggestion(stderrors.New("boom")))
		assert.Empty(t, suggestion(nil))
	})
}
