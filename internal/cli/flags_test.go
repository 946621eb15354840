package cli

import (
	stderrors "errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/mrz1836/roadmap/internal/errors"
)

func TestGlobalFlags_Defaults(t *testing.T) {
	t.Parallel()

	flags := &GlobalFlags{}
	cmd := &cobra.Command{Use: "test"}
	AddGlobalFlags(cmd, flags)

	assert.Equal(t, OutputText, flags.Output)
	assert.False(t, flags.Verbose)
	assert.False(t, flags.Quiet)
}

func TestIsValidOutputFormat(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidOutputFormat("text"))
	assert.True(t, IsValidOutputFormat("json"))
	assert.False(t, IsValidOutputFormat("yaml"))
	assert.False(t, IsValidOutputFormat(""))
}

func TestExitCodeForError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "generic error", err: stderrors.New("boom"), want: ExitError},
		{name: "check failed", err: errors.ErrCheckFailed, want: ExitError},
		{name: "exit code 2 wrapper", err: errors.NewExitCode2Error(stderrors.New("bad")), want: ExitInvalidInput},
		{name: "invalid output format", err: errors.ErrInvalidOutputFormat, want: ExitInvalidInput},
		{name: "invalid identifier", err: errors.ErrInvalidFormat, want: ExitInvalidInput},
		{name: "unknown flag", err: stderrors.New("unknown flag: --bogus"), want: ExitInvalidInput},
		{name: "unknown command", err: stderrors.New(`unknown command "frob" for "roadmap"`), want: ExitInvalidInput},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, ExitCodeForError(tc.err))
		})
	}
}
