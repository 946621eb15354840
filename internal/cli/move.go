package cli

import (
	stderrors "errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mrz1836/roadmap/internal/errors"
	"github.com/mrz1836/roadmap/internal/mover"
	"github.com/mrz1836/roadmap/internal/tui"
)

// newMoveCmd creates the move command.
func newMoveCmd(flags *GlobalFlags) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "move <source-id> <dest-id>",
		Short: "Move a task, epic or milestone into another container",
		Long: `Move an entity one hierarchy level up: a task into another epic,
an epic into another milestone, a milestone into another phase. The
entity is renumbered in its destination and every reference to it
(and its descendants) is rewritten across the whole tree.

There is no rollback; a crash mid-move can leave the tree needing
'roadmap check'.

Examples:
  roadmap move P1.M1.E1.T003 P1.M1.E2
  roadmap move P1.M1.E1 P1.M2 --yes`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(cmd, flags)
			if err != nil {
				return err
			}

			sourceID, destID := args[0], args[1]

			if !yes {
				ok, err := tui.Confirm(
					fmt.Sprintf("Move %s into %s and rewrite all references?", sourceID, destID),
					false,
				)
				if err != nil {
					if stderrors.Is(err, tui.ErrMenuCanceled) {
						return errors.Wrap(errors.ErrOperationCanceled, "move not confirmed; pass --yes to skip the prompt")
					}
					return err
				}
				if !ok {
					return errors.ErrOperationCanceled
				}
			}

			result, err := mover.New(p.store, p.tree).Move(cmd.Context(), sourceID, destID)
			if err != nil {
				return err
			}

			logger := GetLogger()
			logger.Info().
				Str("source", result.SourceID).
				Str("new_id", result.NewID).
				Int("remapped", len(result.RemappedIDs)).
				Msg("entity moved")

			if flags.Output == OutputJSON {
				return p.out.JSON(result)
			}

			p.out.Success("moved " + result.SourceID + " -> " + result.NewID)

			olds := make([]string, 0, len(result.RemappedIDs))
			for old := range result.RemappedIDs {
				olds = append(olds, old)
			}
			sort.Strings(olds)
			for _, old := range olds {
				p.out.Info("  " + old + " -> " + result.RemappedIDs[old])
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")

	return cmd
}
