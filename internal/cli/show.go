package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrz1836/roadmap/internal/domain"
	"github.com/mrz1836/roadmap/internal/tui"
)

// showReport is the JSON shape of the show command output.
type showReport struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Status          string   `json:"status"`
	Priority        string   `json:"priority,omitempty"`
	Complexity      string   `json:"complexity,omitempty"`
	EstimateHours   float64  `json:"estimate_hours"`
	Score           float64  `json:"score"`
	DependsOn       []string `json:"depends_on,omitempty"`
	ClaimedBy       string   `json:"claimed_by,omitempty"`
	RejectionReason string   `json:"rejection_reason,omitempty"`
	Available       bool     `json:"available"`
	File            string   `json:"file,omitempty"`
	Body            string   `json:"body,omitempty"`
}

// newShowCmd creates the show command.
func newShowCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show full details of a work item",
		Long: `Show a work item's metadata and its Markdown body, rendered for
the terminal.`,
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

			if flags.Output == OutputJSON {
				return p.out.JSON(showReport{
					ID:              t.ID,
					Title:           t.Title,
					Status:          t.Status.String(),
					Priority:        t.Priority.String(),
					Complexity:      t.Complexity.String(),
					EstimateHours:   t.EstimateHours,
					Score:           p.res.Score(t),
					DependsOn:       t.DependsOn,
					ClaimedBy:       t.ClaimedBy,
					RejectionReason: t.RejectionReason,
					Available:       p.res.IsAvailable(t),
					File:            t.File,
					Body:            t.Body,
				})
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "%s  %s\n", tuiBoldID(t.ID), t.Title)
			_, _ = fmt.Fprintf(w, "  status: %s\n", tui.RenderStatus(t.Status))
			_, _ = fmt.Fprintf(w, "  priority: %s  complexity: %s  estimate: %s  score: %.1f\n",
				orDash(t.Priority.String()), orDash(t.Complexity.String()),
				formatEstimate(t.EstimateHours), p.res.Score(t))
			if len(t.DependsOn) > 0 {
				_, _ = fmt.Fprintf(w, "  depends on: %s\n", strings.Join(t.DependsOn, ", "))
			}
			if t.IsClaimed() {
				claimed := "  claimed by: " + t.ClaimedBy
				if t.ClaimedAt != nil {
					claimed += " (" + tui.RelativeTime(*t.ClaimedAt) + ")"
				}
				_, _ = fmt.Fprintln(w, claimed)
			}
			if t.RejectionReason != "" {
				_, _ = fmt.Fprintf(w, "  rejected: %s\n", t.RejectionReason)
			}
			printAvailability(w, p, t)

			if strings.TrimSpace(t.Body) != "" {
				_, _ = fmt.Fprintln(w)
				_, _ = fmt.Fprint(w, tui.RenderMarkdown(t.Body))
			}
			return nil
		},
	}
}

// printAvailability prints whether the item can be claimed right now.
func printAvailability(w io.Writer, p *project, t *domain.Task) {
	if p.res.IsAvailable(t) {
		_, _ = fmt.Fprintln(w, "  available: yes")
	} else {
		_, _ = fmt.Fprintln(w, "  available: no")
	}
}

// orDash substitutes a dash for empty display values.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
