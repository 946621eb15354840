package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrz1836/roadmap/internal/clock"
	"github.com/mrz1836/roadmap/internal/domain"
	"github.com/mrz1836/roadmap/internal/store"
)

// grabReport is the JSON shape of the grab command output.
type grabReport struct {
	Primary string   `json:"primary"`
	Extras  []string `json:"extras"`
	Session string   `json:"session,omitempty"`
}

// newGrabCmd creates the grab command.
func newGrabCmd(flags *GlobalFlags) *cobra.Command {
	var (
		agent string
		count int
		bugs  bool
	)

	cmd := &cobra.Command{
		Use:   "grab",
		Short: "Claim the next available item plus a batch of related work",
		Long: `Claim the highest ranked available work item, then claim extra
items that can be worked in the same session without conflicts:
consecutive available siblings in the same epic, or, for bugs,
mutually independent bugs.

Examples:
  roadmap grab --agent alice            # primary + configured extras
  roadmap grab --agent alice --count 4  # up to 4 extras
  roadmap grab --agent ci-bot --bugs    # batch independent bugs`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := openProject(cmd, flags)
			if err != nil {
				return err
			}

			if count < 0 {
				count = 0
			}
			if !cmd.Flags().Changed("count") {
				count = p.cfg.Batch.GrabCount
			}

			available := p.res.FindAllAvailable()
			if len(available) == 0 {
				p.out.Info("no available tasks")
				return nil
			}

			primary, err := p.findWorkItem(available[0])
			if err != nil {
				return err
			}

			var extras []*domain.Task
			if bugs || primary.IsBug() {
				for _, id := range p.res.FindAdditionalBugs(primary, count) {
					if b, ok := p.tree.FindTask(id); ok {
						extras = append(extras, b)
					}
				}
			} else {
				extras = p.res.FindSiblingTasks(primary, count)
			}

			clk := clock.RealClock{}
			batch := append([]*domain.Task{primary}, extras...)
			ids := make([]string, 0, len(batch))
			for _, t := range batch {
				if err := domain.Claim(t, agent, clk); err != nil {
					return err
				}
				if err := p.saveWorkItem(t); err != nil {
					return err
				}
				ids = append(ids, t.ID)
			}

			logger := GetLogger()

			// Runtime snapshots are caches; failures never fail the grab.
			session, err := p.store.StartSession(agent, ids, clk)
			if err != nil {
				logger.Warn().Err(err).Msg("failed to record session")
			}
			snap := &store.ContextSnapshot{CurrentTask: primary.ID, PrimaryTask: primary.ID}
			if err := p.store.SaveContext(snap, clk); err != nil {
				logger.Warn().Err(err).Msg("failed to update context snapshot")
			}

			logger.Info().
				Str("agent", agent).
				Strs("tasks", ids).
				Msg("batch claimed")

			if flags.Output == OutputJSON {
				report := grabReport{Primary: primary.ID, Extras: ids[1:]}
				if session != nil {
					report.Session = session.ID
				}
				return p.out.JSON(report)
			}

			p.out.Success("claimed " + primary.ID + " for " + agent)
			for _, id := range ids[1:] {
				p.out.Info("  also claimed " + id)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&agent, "agent", "", "agent claiming the batch")
	cmd.Flags().IntVar(&count, "count", 0, "extra items to claim beyond the primary")
	cmd.Flags().BoolVar(&bugs, "bugs", false, "batch mutually independent bugs")
	_ = cmd.MarkFlagRequired("agent")

	return cmd
}
