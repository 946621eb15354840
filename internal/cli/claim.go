package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrz1836/roadmap/internal/clock"
	"github.com/mrz1836/roadmap/internal/domain"
	"github.com/mrz1836/roadmap/internal/errors"
	"github.com/mrz1836/roadmap/internal/store"
)

// newClaimCmd creates the claim command.
func newClaimCmd(flags *GlobalFlags) *cobra.Command {
	var (
		agent string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "claim <id>",
		Short: "Claim a work item for an agent",
		Long: `Claim a pending work item. The item must be available: its
dependencies satisfied and its containers unblocked. Use --force to
claim an item whose dependencies are still open.

Examples:
  roadmap claim P1.M1.E1.T002 --agent alice
  roadmap claim B001 --agent ci-bot --force`,
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

			if !force && !p.res.IsAvailable(t) {
				return errors.Wrapf(errors.ErrUnresolvedDependency,
					"%s is not available; use --force to claim anyway", t.ID)
			}

			clk := clock.RealClock{}
			if err := domain.Claim(t, agent, clk); err != nil {
				return err
			}
			if err := p.saveWorkItem(t); err != nil {
				return err
			}

			logger := GetLogger()

			// The context snapshot is a cache; failures to write it never
			// fail the claim.
			snap := &store.ContextSnapshot{CurrentTask: t.ID, PrimaryTask: t.ID}
			if err := p.store.SaveContext(snap, clk); err != nil {
				logger.Warn().Err(err).Msg("failed to update context snapshot")
			}

			logger.Info().Str("task", t.ID).Str("agent", agent).Msg("task claimed")
			p.out.Success("claimed " + t.ID + " for " + agent)
			return nil
		},
	}

	cmd.Flags().StringVar(&agent, "agent", "", "agent claiming the item")
	cmd.Flags().BoolVar(&force, "force", false, "claim even when dependencies are unmet")
	_ = cmd.MarkFlagRequired("agent")

	return cmd
}
