package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrz1836/roadmap/internal/domain"
	"github.com/mrz1836/roadmap/internal/treeid"
	"github.com/mrz1836/roadmap/internal/tui"
)

// listItem is the JSON shape of one list command row.
type listItem struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Status        string  `json:"status"`
	Priority      string  `json:"priority,omitempty"`
	EstimateHours float64 `json:"estimate_hours"`
	ClaimedBy     string  `json:"claimed_by,omitempty"`
}

// newListCmd creates the list command.
func newListCmd(flags *GlobalFlags) *cobra.Command {
	var statusFilter string

	cmd := &cobra.Command{
		Use:   "list [query]",
		Short: "List work items, optionally filtered by a wildcard query",
		Long: `List tasks, bugs and ideas. An optional query narrows the result
by identifier; segments may use * as a wildcard.

Examples:
  roadmap list                  # everything
  roadmap list P1.M2.*.*        # all tasks under P1.M2
  roadmap list 'P*.M1.E1.T001'  # first task of every phase's M1.E1
  roadmap list --status pending # only pending items`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(cmd, flags)
			if err != nil {
				return err
			}

			items := p.tree.AllWorkItems()

			if len(args) == 1 {
				query, err := treeid.ParseQuery(args[0])
				if err != nil {
					return err
				}
				filtered := make([]*domain.Task, 0, len(items))
				for _, t := range items {
					if query.MatchesString(t.ID) {
						filtered = append(filtered, t)
					}
				}
				items = filtered
			}

			if statusFilter != "" {
				filtered := make([]*domain.Task, 0, len(items))
				for _, t := range items {
					if t.Status.String() == statusFilter {
						filtered = append(filtered, t)
					}
				}
				items = filtered
			}

			if flags.Output == OutputJSON {
				rows := make([]listItem, 0, len(items))
				for _, t := range items {
					rows = append(rows, listItem{
						ID:            t.ID,
						Title:         t.Title,
						Status:        t.Status.String(),
						Priority:      t.Priority.String(),
						EstimateHours: t.EstimateHours,
						ClaimedBy:     t.ClaimedBy,
					})
				}
				return p.out.JSON(rows)
			}

			if len(items) == 0 {
				p.out.Info("no matching work items")
				return nil
			}

			table := tui.NewTable(cmd.OutOrStdout(), []tui.TableColumn{
				{Name: "ID", Width: 16, Align: tui.AlignLeft},
				{Name: "STATUS", Width: 14, Align: tui.AlignLeft},
				{Name: "PRI", Width: 8, Align: tui.AlignLeft},
				{Name: "EST", Width: 5, Align: tui.AlignRight},
				{Name: "TITLE", Width: 40, Align: tui.AlignLeft},
			})
			table.WriteHeader()
			for _, t := range items {
				plain := tui.StatusIcon(t.Status) + " " + t.Status.String()
				table.WriteStyledRow(
					[]string{t.ID, "", t.Priority.String(), formatEstimate(t.EstimateHours), t.Title},
					1,
					tui.RenderStatus(t.Status),
					plain,
				)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&statusFilter, "status", "", "filter by status (pending|in_progress|done|...)")

	return cmd
}
