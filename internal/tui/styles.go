package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/colorpalettestudio/tintshade/internal/ui"
)

// Styles defines all visual styles for the TUI
type Styles struct {
	// Header/Footer
	Header    lipgloss.Style
	SubHeader lipgloss.Style
	Footer    lipgloss.Style
	StatusBar lipgloss.Style
	StatusErr lipgloss.Style

	// Palette rows
	SelectedName lipgloss.Style
	NormalName   lipgloss.Style
	Cursor       lipgloss.Style
	Empty        lipgloss.Style

	// Popup
	PopupBorder lipgloss.Style
	PopupTitle  lipgloss.Style

	// Input
	InputPrompt lipgloss.Style
	InputText   lipgloss.Style

	// Import preview
	Valid   lipgloss.Style
	Invalid lipgloss.Style
	Hint    lipgloss.Style
}

// DefaultStyles returns the default style configuration
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(ui.ColorPrimary).
			Padding(0, 1),

		SubHeader: lipgloss.NewStyle().
			Foreground(ui.ColorMuted),

		Footer: lipgloss.NewStyle().
			Foreground(ui.ColorBorder).
			Padding(0, 1),

		StatusBar: lipgloss.NewStyle().
			Foreground(ui.ColorWarning).
			Padding(0, 1),

		StatusErr: lipgloss.NewStyle().
			Foreground(ui.ColorError).
			Padding(0, 1),

		SelectedName: lipgloss.NewStyle().
			Bold(true).
			Foreground(ui.ColorTextLight),

		NormalName: lipgloss.NewStyle().
			Foreground(ui.ColorText),

		Cursor: lipgloss.NewStyle().
			Foreground(ui.ColorPrimary),

		Empty: lipgloss.NewStyle().
			Foreground(ui.ColorMuted).
			Padding(1, 2),

		PopupBorder: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ui.ColorSecondary).
			Padding(1, 2),

		PopupTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ui.ColorPrimary),

		InputPrompt: lipgloss.NewStyle().
			Foreground(ui.ColorPrimary),

		InputText: lipgloss.NewStyle().
			Foreground(ui.ColorTextWhite),

		Valid: lipgloss.NewStyle().
			Foreground(ui.ColorSuccess),

		Invalid: lipgloss.NewStyle().
			Foreground(ui.ColorError),

		Hint: lipgloss.NewStyle().
			Foreground(ui.ColorMuted),
	}
}
