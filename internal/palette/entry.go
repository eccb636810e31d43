// Package palette holds the ordered list of base colors being edited in a
// session, with bounded undo and redo
package palette

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/colorpalettestudio/tintshade/internal/color"
)

// Entry is one named base color in the palette
type Entry struct {
	ID    string      `json:"id" yaml:"id"`
	Name  string      `json:"name" yaml:"name"`
	Color color.Color `json:"-" yaml:"-"`
}

// NewEntry creates an entry with a fresh ID
func NewEntry(c color.Color, name string) Entry {
	return Entry{
		ID:    uuid.NewString(),
		Name:  strings.TrimSpace(name),
		Color: c,
	}
}

// Hex returns the base color as "#RRGGBB"
func (e Entry) Hex() string {
	return e.Color.Hex()
}

// DisplayName returns the name, or the hex code when the entry is unnamed
func (e Entry) DisplayName() string {
	if e.Name == "" {
		return e.Hex()
	}
	return e.Name
}

// defaultName returns "Color N" for the n-th color (1-based)
func defaultName(n int) string {
	return fmt.Sprintf("Color %d", n)
}

// nextDefaultNumber returns one past the highest "Color N" name in use
func nextDefaultNumber(entries []Entry) int {
	maxN := len(entries)
	for _, e := range entries {
		var n int
		if _, err := fmt.Sscanf(e.Name, "Color %d", &n); err == nil && n > maxN {
			maxN = n
		}
	}
	return maxN + 1
}
