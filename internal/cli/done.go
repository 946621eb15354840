package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrz1836/roadmap/internal/clock"
	"github.com/mrz1836/roadmap/internal/domain"
)

// newDoneCmd creates the done command.
func newDoneCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Complete a claimed work item",
		Long: `Mark an in-progress work item as done, recording the completion
time and working duration. Only claimed, in-progress items can be
completed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(cmd, flags)
			if err != nil {
				return err
			}

			t, err := p.findWorkItem(args[0])
			if err != nil {
				return err
			}

			if err := domain.Complete(t, clock.RealClock{}); err != nil {
				return err
			}
			if err := p.saveWorkItem(t); err != nil {
				return err
			}

			logger := GetLogger()

			// Drop the context pointer when it referenced the finished item.
			if snap, err := p.store.LoadContext(); err == nil && snap.CurrentTask == t.ID {
				if err := p.store.ClearContext(); err != nil {
					logger.Warn().Err(err).Msg("failed to clear context snapshot")
				}
			}

			logger.Info().
				Str("task", t.ID).
				Int("duration_minutes", t.DurationMinutes).
				Msg("task completed")
			p.out.Success(fmt.Sprintf("completed %s (%dm)", t.ID, t.DurationMinutes))
			return nil
		},
	}
}
