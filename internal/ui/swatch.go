// Package ui holds the shared terminal colors, icons and swatch rendering
// used by the TUI and the CLI
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/colorpalettestudio/tintshade/internal/color"
)

// Ink returns the text color that reads best on c
func Ink(c color.Color) lipgloss.Color {
	if c.IsLight() {
		return InkDark
	}
	return InkLight
}

func swatchStyle(c color.Color, width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(Ink(c)).
		Width(width).
		Align(lipgloss.Center)
}

// Swatch renders label centered on a block of c, width cells wide
func Swatch(c color.Color, label string, width int) string {
	return swatchStyle(c, width).Render(label)
}

// FocusedSwatch renders like Swatch with the label bold and underlined
func FocusedSwatch(c color.Color, label string, width int) string {
	return swatchStyle(c, width).Bold(true).Underline(true).Render(label)
}

// Chip renders a small block of c with no label
func Chip(c color.Color) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(IconSwatch)
}

// RampRow renders a ramp as adjacent swatches labelled with their hex codes
func RampRow(ramp []color.Swatch, width int) string {
	return FocusedRampRow(ramp, width, -1)
}

// FocusedRampRow renders like RampRow with swatch focus highlighted. A focus
// outside the ramp highlights nothing
func FocusedRampRow(ramp []color.Swatch, width, focus int) string {
	cells := make([]string, len(ramp))
	for i, s := range ramp {
		if i == focus {
			cells[i] = FocusedSwatch(s.Color, s.Hex(), width)
		} else {
			cells[i] = Swatch(s.Color, s.Hex(), width)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// StepHeader renders the step labels aligned with RampRow
func StepHeader(steps []color.Step, width int) string {
	style := lipgloss.NewStyle().Foreground(ColorMuted).Width(width).Align(lipgloss.Center)
	cells := make([]string, len(steps))
	for i, s := range steps {
		cells[i] = style.Render(s.Clamp().Label())
	}
	return strings.Join(cells, "")
}
