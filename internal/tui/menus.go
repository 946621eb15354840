// Interactive prompts built on Charm Huh. Used by destructive commands
// (reject, move) to confirm intent and collect reasons.
//
// Prompts detect non-terminal environments and return ErrMenuCanceled
// instead of blocking, so scripted runs fail fast rather than hang.
package tui

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	roadmaperrors "github.com/mrz1836/roadmap/internal/errors"
)

// Terminal layout constants.
const (
	// TerminalEdgeMargin is the number of characters to leave between
	// menu content and the terminal edge.
	TerminalEdgeMargin = 4

	// MinMenuWidth is the minimum usable width for menu content.
	MinMenuWidth = 40
)

// ErrMenuCanceled is returned when the user cancels a menu operation by
// pressing q or Escape, or when no terminal is attached.
var ErrMenuCanceled = roadmaperrors.ErrMenuCanceled

// adaptWidth returns an appropriate menu width based on terminal size.
func adaptWidth(maxWidth int) int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		if maxWidth <= 0 {
			return DefaultBoxWidth
		}
		return maxWidth
	}

	availableWidth := width - TerminalEdgeMargin

	if maxWidth > 0 && maxWidth < availableWidth {
		return maxWidth
	}

	if availableWidth < MinMenuWidth {
		return MinMenuWidth
	}

	return availableWidth
}

// runForm creates and runs a form with the given field. It handles common
// setup and maps user aborts onto ErrMenuCanceled.
func runForm(field huh.Field, errorContext string) error {
	// Prevents tests and scripts from hanging when no terminal is attached
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ErrMenuCanceled
	}

	CheckNoColor()

	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(roadmapTheme()).
		WithWidth(adaptWidth(DefaultBoxWidth))

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrMenuCanceled
		}
		return fmt.Errorf("%s: %w", errorContext, err)
	}

	return nil
}

// roadmapTheme returns a custom Huh theme using the package colors.
func roadmapTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.BorderForeground(ColorPrimary)
	t.Focused.Title = t.Focused.Title.Foreground(ColorPrimary)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(ColorPrimary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(ColorPrimary)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(ColorPrimary)

	t.Focused.SelectedPrefix = t.Focused.SelectedPrefix.Foreground(ColorSuccess)

	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(ColorError)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(ColorError)

	t.Blurred.Base = t.Blurred.Base.BorderForeground(ColorMuted)
	t.Blurred.Title = t.Blurred.Title.Foreground(ColorMuted)
	t.Focused.Description = t.Focused.Description.Foreground(ColorMuted)
	t.Help.Ellipsis = t.Help.Ellipsis.Foreground(ColorMuted)

	return t
}

// Confirm presents a yes/no confirmation prompt.
// Returns the user's choice or ErrMenuCanceled if canceled.
func Confirm(message string, defaultYes bool) (bool, error) {
	confirmed := defaultYes

	confirmField := huh.NewConfirm().
		Title(message).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed)

	if err := runForm(confirmField, "confirm prompt failed"); err != nil {
		return false, err
	}

	return confirmed, nil
}

// Input presents a single-line text input prompt.
// Returns the entered text or ErrMenuCanceled if canceled.
func Input(prompt, defaultValue string) (string, error) {
	value := defaultValue

	inputField := huh.NewInput().
		Title(prompt).
		Value(&value)

	if err := runForm(inputField, "input prompt failed"); err != nil {
		return "", err
	}

	return value, nil
}
