package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrz1836/roadmap/internal/constants"
	"github.com/mrz1836/roadmap/internal/tui"
)

// statusReport is the JSON shape of the status command output.
type statusReport struct {
	Project       string         `json:"project"`
	Total         int            `json:"total"`
	Counts        map[string]int `json:"counts"`
	NextAvailable string         `json:"next_available,omitempty"`
	CriticalPath  []string       `json:"critical_path"`
}

// newStatusCmd creates the status command.
func newStatusCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show project progress and the next available task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := openProject(cmd, flags)
			if err != nil {
				return err
			}

			items := p.tree.AllWorkItems()
			counts := make(map[string]int)
			done := 0
			for _, t := range items {
				counts[t.Status.String()]++
				if t.IsDone() {
					done++
				}
			}

			criticalPath, nextAvailable := p.res.Calculate()

			if flags.Output == OutputJSON {
				return p.out.JSON(statusReport{
					Project:       p.tree.Project,
					Total:         len(items),
					Counts:        counts,
					NextAvailable: nextAvailable,
					CriticalPath:  criticalPath,
				})
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "%s\n\n", tui.StyleBold.Render(p.tree.Project))

			bar := tui.NewProgressBar(40)
			_, _ = fmt.Fprintf(w, "  %s\n\n", bar.RenderCounts(done, len(items)))

			table := tui.NewTable(w, []tui.TableColumn{
				{Name: "STATUS", Width: 12, Align: tui.AlignLeft},
				{Name: "COUNT", Width: 5, Align: tui.AlignRight},
			})
			table.WriteHeader()
			for _, status := range constants.ValidTaskStatuses() {
				if counts[status.String()] == 0 {
					continue
				}
				table.WriteStyledRow(
					[]string{"", fmt.Sprintf("%d", counts[status.String()])},
					0,
					tui.RenderStatus(status),
					tui.StatusIcon(status)+" "+status.String(),
				)
			}

			_, _ = fmt.Fprintln(w)
			if nextAvailable == "" {
				p.out.Info("no available tasks")
			} else {
				p.out.Info("next: " + nextAvailable)
			}
			return nil
		},
	}
}
