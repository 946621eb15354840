// Package tui provides terminal user interface components for roadmap.
//
// This package provides a centralized style system using Lip Gloss for
// consistent output styling. All colors use AdaptiveColor for light/dark
// terminal support.
//
// Status displays keep triple redundancy: icon + color + text, so output
// stays readable on monochrome terminals.
//
// Call CheckNoColor() at the start of commands to respect the NO_COLOR
// environment variable. Colors are also disabled when TERM=dumb.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/mrz1836/roadmap/internal/constants"
)

//nolint:gochecknoglobals // Intentional package-level constants for TUI styling API
var (
	// ColorPrimary is blue, used for active states and primary identifiers.
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#0087AF", Dark: "#00D7FF"}

	// ColorSuccess is green, used for done items.
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#008700", Dark: "#00FF87"}

	// ColorWarning is yellow, used for blocked items and check warnings.
	ColorWarning = lipgloss.AdaptiveColor{Light: "#AF8700", Dark: "#FFD700"}

	// ColorError is red, used for rejected items and check errors.
	ColorError = lipgloss.AdaptiveColor{Light: "#AF0000", Dark: "#FF5F5F"}

	// ColorMuted is gray, used for cancelled items and secondary text.
	ColorMuted = lipgloss.AdaptiveColor{Light: "#585858", Dark: "#6C6C6C"}

	// StyleBold applies bold formatting to text.
	StyleBold = lipgloss.NewStyle().Bold(true)

	// StyleDim applies dim/faint formatting to text.
	StyleDim = lipgloss.NewStyle().Faint(true)
)

// DefaultBoxWidth is the default content width for menus and boxes.
const DefaultBoxWidth = 80

// OutputStyles holds common output styles.
type OutputStyles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Dim     lipgloss.Style
}

// NewOutputStyles creates common output styles using AdaptiveColor for
// light/dark terminal support.
func NewOutputStyles() *OutputStyles {
	return &OutputStyles{
		Success: lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),
		Warning: lipgloss.NewStyle().
			Foreground(ColorWarning),
		Info: lipgloss.NewStyle().
			Foreground(ColorPrimary),
		Dim: lipgloss.NewStyle().
			Foreground(ColorMuted),
	}
}

// TableStyles holds lipgloss styles for table rendering.
type TableStyles struct {
	Header       lipgloss.Style
	Cell         lipgloss.Style
	Dim          lipgloss.Style
	StatusColors map[constants.TaskStatus]lipgloss.AdaptiveColor
}

// NewTableStyles creates styles for table rendering.
func NewTableStyles() *TableStyles {
	return &TableStyles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#DDDDDD"}),
		Cell: lipgloss.NewStyle(),
		Dim: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#888888"}),
		StatusColors: StatusColors(),
	}
}

// CheckNoColor respects the NO_COLOR environment variable.
// Call this at the start of commands that output styled text.
func CheckNoColor() {
	if !HasColorSupport() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// HasColorSupport returns true if the terminal supports colors.
// Returns false if NO_COLOR is set (any value including empty string) or
// TERM=dumb. This follows the NO_COLOR standard: https://no-color.org/
func HasColorSupport() bool {
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return false
	}

	if os.Getenv("TERM") == "dumb" {
		return false
	}

	return true
}

// StatusColors returns the semantic color definitions for work item statuses.
func StatusColors() map[constants.TaskStatus]lipgloss.AdaptiveColor {
	return map[constants.TaskStatus]lipgloss.AdaptiveColor{
		// Active states - Blue
		constants.TaskStatusPending:    {Light: "#0087AF", Dark: "#00D7FF"},
		constants.TaskStatusInProgress: {Light: "#0087AF", Dark: "#00D7FF"},

		// Success state - Green
		constants.TaskStatusDone: {Light: "#00875F", Dark: "#00FF87"},

		// Warning state - Yellow
		constants.TaskStatusBlocked: {Light: "#D7AF00", Dark: "#FFD700"},

		// Terminal states - Red/Gray
		constants.TaskStatusRejected:  {Light: "#AF0000", Dark: "#FF5F5F"},
		constants.TaskStatusCancelled: {Light: "#585858", Dark: "#6C6C6C"},
	}
}

// StatusIcon returns the icon/symbol for a given work item status.
// Used for visual status indicators in list and status displays.
func StatusIcon(status constants.TaskStatus) string {
	icons := map[constants.TaskStatus]string{
		constants.TaskStatusPending:    "○", // Empty circle - waiting
		constants.TaskStatusInProgress: "●", // Filled circle - claimed
		constants.TaskStatusDone:       "✓", // Checkmark - complete
		constants.TaskStatusBlocked:    "⚠", // Warning - needs attention
		constants.TaskStatusRejected:   "✗", // X mark - rejected
		constants.TaskStatusCancelled:  "✗", // X mark - withdrawn
	}
	if icon, ok := icons[status]; ok {
		return icon
	}
	return "?"
}

// PriorityColors returns the semantic color definitions for priorities.
func PriorityColors() map[constants.Priority]lipgloss.AdaptiveColor {
	return map[constants.Priority]lipgloss.AdaptiveColor{
		constants.PriorityCritical: {Light: "#AF0000", Dark: "#FF5F5F"},
		constants.PriorityHigh:     {Light: "#D7AF00", Dark: "#FFD700"},
		constants.PriorityMedium:   {Light: "#0087AF", Dark: "#00D7FF"},
		constants.PriorityLow:      {Light: "#585858", Dark: "#6C6C6C"},
	}
}

// RenderStatus renders a status with its icon and color.
func RenderStatus(status constants.TaskStatus) string {
	text := StatusIcon(status) + " " + status.String()
	if color, ok := StatusColors()[status]; ok {
		return lipgloss.NewStyle().Foreground(color).Render(text)
	}
	return text
}
