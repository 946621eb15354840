// Package cli provides the command-line interface for roadmap.
package cli

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrz1836/roadmap/internal/errors"
)

// BuildInfo contains version information set at build time via ldflags.
type BuildInfo struct {
	// Version is the semantic version (e.g., "1.0.0").
	Version string
	// Commit is the git commit hash.
	Commit string
	// Date is the build date.
	Date string
}

// globalLogger stores the initialized logger for use by subcommands.
// This is set during PersistentPreRunE and should be accessed via GetLogger.
// Access is protected by globalLoggerMu for thread safety.
var (
	globalLogger   zerolog.Logger //nolint:gochecknoglobals // CLI logger requires global access
	globalLoggerMu sync.RWMutex   //nolint:gochecknoglobals // Protects globalLogger
)

// GetLogger returns the initialized logger for use by subcommands.
//
// This function MUST only be called after the root command's
// PersistentPreRunE has executed. Calling it before initialization will
// return a zero-value logger that discards all log output.
//
// This function is safe for concurrent use.
func GetLogger() zerolog.Logger {
	globalLoggerMu.RLock()
	defer globalLoggerMu.RUnlock()
	return globalLogger
}

// newRootCmd creates and returns the root command for the roadmap CLI.
// This function-based approach avoids package-level globals, making the
// code more testable.
func newRootCmd(flags *GlobalFlags, info BuildInfo) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "roadmap",
		Short: "roadmap - dependency-aware backlog for agent-driven work",
		Long: `roadmap manages a hierarchical backlog (phases, milestones, epics, tasks)
plus flat bug and idea collections, stored as plain YAML and Markdown
files under .roadmap/.

It resolves dependencies to find available work, scores items to compute
the critical path, and keeps the file tree consistent across moves.`,
		Version: formatVersion(info),
		// Run displays help when the root command is invoked without
		// subcommands, ensuring PersistentPreRunE runs for flag validation.
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := BindGlobalFlags(v, cmd); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}

			if !IsValidOutputFormat(flags.Output) {
				return fmt.Errorf("%w: %q must be one of %v", errors.ErrInvalidOutputFormat, flags.Output, ValidOutputFormats())
			}

			globalLoggerMu.Lock()
			globalLogger = InitLogger(flags.Verbose, flags.Quiet)
			globalLoggerMu.Unlock()

			return nil
		},
		// SilenceUsage prevents printing usage on error
		// (we handle our own error messages)
		SilenceUsage: true,
	}

	AddGlobalFlags(cmd, flags)

	cmd.AddCommand(
		newInitCmd(flags),
		newStatusCmd(flags),
		newNextCmd(flags),
		newListCmd(flags),
		newClaimCmd(flags),
		newGrabCmd(flags),
		newDoneCmd(flags),
		newRejectCmd(flags),
		newMoveCmd(flags),
		newCheckCmd(flags),
		newShowCmd(flags),
	)

	return cmd
}

// formatVersion creates the version string from build info.
func formatVersion(info BuildInfo) string {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
}

// suggestion returns the recovery hint for err from the user-facing
// message table, or "" when the error has no known action.
func suggestion(err error) string {
	_, action := errors.Actionable(err)
	return action
}

// Execute runs the root command with the provided context and build info.
// Cobra prints the error itself; when the sentinel behind it carries a
// suggested action, that is printed after it so the user knows what to
// try next.
func Execute(ctx context.Context, info BuildInfo) error {
	flags := &GlobalFlags{}
	cmd := newRootCmd(flags, info)
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		if action := suggestion(err); action != "" {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), action)
		}
	}
	return err
}
