package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrz1836/roadmap/internal/checker"
	"github.com/mrz1836/roadmap/internal/errors"
)

// newCheckCmd creates the check command.
func newCheckCmd(flags *GlobalFlags) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check the backlog for consistency problems",
		Long: `Run all consistency checks: file presence, identifier formats,
uniqueness, dependency resolvability, dependency cycles, estimates,
stale runtime references and placeholder content.

Exits non-zero when errors are found, or, with --strict, when any
warning is found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := openProject(cmd, flags)
			if err != nil {
				return err
			}

			opts := checker.Options{Root: p.store.Root()}
			if snap, err := p.store.LoadContext(); err == nil {
				if snap.CurrentTask != "" {
					opts.ContextTaskIDs = append(opts.ContextTaskIDs, snap.CurrentTask)
				}
				if snap.PrimaryTask != "" && snap.PrimaryTask != snap.CurrentTask {
					opts.ContextTaskIDs = append(opts.ContextTaskIDs, snap.PrimaryTask)
				}
			}
			if sessions, err := p.store.LoadSessions(); err == nil {
				opts.SessionTaskIDs = sessions.TaskIDs()
			}

			result := checker.Check(p.tree, opts)

			if flags.Output == OutputJSON {
				if err := p.out.JSON(result); err != nil {
					return err
				}
			} else {
				w := cmd.OutOrStdout()
				for _, f := range result.Findings {
					line := fmt.Sprintf("[%s] %s: %s", f.Code, f.Location, f.Message)
					if f.Level == checker.LevelError {
						p.out.Error(fmt.Errorf("%s", line))
					} else {
						p.out.Warning(line)
					}
				}
				if result.OK && result.WarningCount() == 0 {
					p.out.Success("no problems found")
				} else {
					_, _ = fmt.Fprintf(w, "\n%d error(s), %d warning(s)\n",
						result.ErrorCount(), result.WarningCount())
				}
			}

			if !result.OK {
				return errors.Wrapf(errors.ErrCheckFailed, "%d error(s)", result.ErrorCount())
			}
			if strict && result.WarningCount() > 0 {
				return errors.Wrapf(errors.ErrCheckFailed, "%d warning(s) with --strict", result.WarningCount())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "treat warnings as failures")

	return cmd
}
