package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// nextReport is the JSON shape of the next command output.
type nextReport struct {
	ID            string   `json:"id,omitempty"`
	Title         string   `json:"title,omitempty"`
	Priority      string   `json:"priority,omitempty"`
	EstimateHours float64  `json:"estimate_hours,omitempty"`
	Score         float64  `json:"score,omitempty"`
	Available     []string `json:"available"`
}

// newNextCmd creates the next command.
func newNextCmd(flags *GlobalFlags) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Print the next available work item",
		Long: `Resolve dependencies and print the highest ranked available work
item. Bugs rank before tasks, tasks before ideas; ties break by
priority, then by score.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := openProject(cmd, flags)
			if err != nil {
				return err
			}

			available := p.res.FindAllAvailable()

			if flags.Output == OutputJSON {
				report := nextReport{Available: available}
				if len(available) > 0 {
					if t, ok := p.tree.FindTask(available[0]); ok {
						report.ID = t.ID
						report.Title = t.Title
						report.Priority = t.Priority.String()
						report.EstimateHours = t.EstimateHours
						report.Score = p.res.Score(t)
					}
				}
				return p.out.JSON(report)
			}

			if len(available) == 0 {
				p.out.Info("no available tasks")
				return nil
			}

			t, ok := p.tree.FindTask(available[0])
			if !ok {
				p.out.Info(available[0])
				return nil
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "%s  %s\n", tuiBoldID(t.ID), t.Title)
			_, _ = fmt.Fprintf(w, "  priority: %s  estimate: %.1fh  score: %.1f\n",
				t.Priority, t.EstimateHours, p.res.Score(t))

			if all && len(available) > 1 {
				_, _ = fmt.Fprintln(w, "\nalso available:")
				for _, id := range available[1:] {
					_, _ = fmt.Fprintf(w, "  %s\n", id)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "list every available item, not just the first")

	return cmd
}
