package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
)

// ProgressBar wraps the charmbracelet/bubbles progress bar for static
// rendering of backlog completion. Supports NO_COLOR compatibility.
type ProgressBar struct {
	bar   progress.Model
	width int
}

// NewProgressBar creates a new progress bar of the given width.
// Uses a ColorPrimary gradient when color is available, solid fill otherwise.
func NewProgressBar(width int) *ProgressBar {
	var bar progress.Model

	if HasColorSupport() {
		bar = progress.New(
			progress.WithWidth(width),
			progress.WithScaledGradient("#0087AF", "#00D7FF"),
		)
	} else {
		bar = progress.New(
			progress.WithWidth(width),
			progress.WithSolidFill("#808080"),
		)
	}

	return &ProgressBar{
		bar:   bar,
		width: width,
	}
}

// Render returns the progress bar as a string for the given percentage
// (0.0-1.0). Uses ViewAs for static rendering, no animation.
func (pb *ProgressBar) Render(percent float64) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 1 {
		percent = 1
	}
	return pb.bar.ViewAs(percent)
}

// RenderCounts renders a progress bar with a "done/total" suffix.
func (pb *ProgressBar) RenderCounts(done, total int) string {
	percent := 0.0
	if total > 0 {
		percent = float64(done) / float64(total)
	}
	return fmt.Sprintf("%s %d/%d", pb.Render(percent), done, total)
}

// Width returns the current width of the progress bar.
func (pb *ProgressBar) Width() int {
	return pb.width
}
