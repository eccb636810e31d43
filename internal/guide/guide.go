// Package guide renders the built-in help pages
package guide

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
)

//go:embed formats.md
var formats string

// Markdown returns the supported formats guide as raw markdown
func Markdown() string {
	return formats
}

// Render renders the guide for a terminal width. With styled false the
// output carries no escape codes
func Render(width int, styled bool) (string, error) {
	style := glamour.WithStandardStyle("notty")
	if styled {
		style = glamour.WithAutoStyle()
	}
	r, err := glamour.NewTermRenderer(
		style,
		glamour.WithWordWrap(min(max(width, 40), 120)),
	)
	if err != nil {
		return "", fmt.Errorf("creating renderer: %w", err)
	}
	return r.Render(formats)
}
