package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/mrz1836/roadmap/internal/tui"
)

// tuiBoldID renders a work item identifier in the primary color.
func tuiBoldID(id string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(tui.ColorPrimary).Render(id)
}

// formatEstimate renders an estimate in hours, dropping the fraction when
// it is whole.
func formatEstimate(hours float64) string {
	if hours == float64(int(hours)) {
		return fmt.Sprintf("%dh", int(hours))
	}
	return fmt.Sprintf("%.1fh", hours)
}
