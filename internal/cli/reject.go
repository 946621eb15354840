package cli

import (
	stderrors "errors"

	"github.com/spf13/cobra"

	"github.com/mrz1836/roadmap/internal/domain"
	"github.com/mrz1836/roadmap/internal/errors"
	"github.com/mrz1836/roadmap/internal/tui"
)

// newRejectCmd creates the reject command.
func newRejectCmd(flags *GlobalFlags) *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "reject <id>",
		Short: "Reject a work item with a reason",
		Long: `Reject a pending or in-progress work item. A reason is required;
when --reason is omitted and a terminal is attached, an interactive
prompt collects it.`,
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

			if reason == "" {
				entered, err := tui.Input("Why is "+t.ID+" being rejected?", "")
				if err != nil {
					if stderrors.Is(err, tui.ErrMenuCanceled) {
						return errors.ErrMissingReason
					}
					return err
				}
				reason = entered
			}

			if err := domain.Reject(t, reason); err != nil {
				return err
			}
			if err := p.saveWorkItem(t); err != nil {
				return err
			}

			logger := GetLogger()
			logger.Info().Str("task", t.ID).Str("reason", reason).Msg("task rejected")
			p.out.Success("rejected " + t.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&reason, "reason", "", "why the item is being rejected")

	return cmd
}
