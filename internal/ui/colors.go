package ui

import "github.com/charmbracelet/lipgloss"

// Color palette for the editor chrome. Swatches use their own colors
var (
	// Primary colors
	ColorPrimary   = lipgloss.Color("212") // titles and the selected row marker
	ColorSecondary = lipgloss.Color("62")  // selection and overlay borders

	// Text colors
	ColorText      = lipgloss.Color("252")
	ColorTextLight = lipgloss.Color("230")
	ColorTextWhite = lipgloss.Color("255")

	// Border and muted colors
	ColorBorder = lipgloss.Color("240")
	ColorMuted  = lipgloss.Color("241")

	// Semantic colors
	ColorSuccess = lipgloss.Color("46")  // valid entries, completed exports
	ColorError   = lipgloss.Color("196") // invalid entries, failed exports
	ColorWarning = lipgloss.Color("214") // pending work and confirmations
)

// Ink colors for text drawn on top of a swatch
var (
	InkDark  = lipgloss.Color("#000000")
	InkLight = lipgloss.Color("#FFFFFF")
)
