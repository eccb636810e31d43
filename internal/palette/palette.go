package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/colorpalettestudio/tintshade/internal/color"
)

// Errors returned by palette mutations
var (
	ErrNotFound  = errors.New("color not found")
	ErrEmptyName = errors.New("name cannot be empty")
	ErrNoColors  = errors.New("no valid colors")
)

// Palette is the ordered collection of base colors
type Palette struct {
	entries []Entry
	history *History
}

// New creates an empty palette
func New() *Palette {
	return &Palette{
		entries: make([]Entry, 0),
		history: NewHistory(DefaultHistoryLimit),
	}
}

// FromColors creates a palette seeded with colors named "Color 1" onward
// Seeding is not recorded in the undo history
func FromColors(colors []color.Color) *Palette {
	p := New()
	for i, c := range colors {
		p.entries = append(p.entries, NewEntry(c, defaultName(i+1)))
	}
	return p
}

// Len returns the number of entries
func (p *Palette) Len() int {
	return len(p.entries)
}

// Entries returns a copy of the entries in display order
func (p *Palette) Entries() []Entry {
	return clone(p.entries)
}

// Get finds an entry by ID
func (p *Palette) Get(id string) (Entry, bool) {
	if i := p.index(id); i >= 0 {
		return p.entries[i], true
	}
	return Entry{}, false
}

// At returns the entry at position i
func (p *Palette) At(i int) (Entry, bool) {
	if i < 0 || i >= len(p.entries) {
		return Entry{}, false
	}
	return p.entries[i], true
}

// Add appends a color. An empty name becomes "Color N"
func (p *Palette) Add(c color.Color, name string) Entry {
	p.history.Record(p.entries)
	e := p.newEntry(c, name)
	p.entries = append(p.entries, e)
	return e
}

// AddBatch appends every valid color of a parsed batch as one undoable
// change. Invalid entries are skipped
func (p *Palette) AddBatch(batch []color.Parsed) []Entry {
	colors := color.Colors(batch)
	if len(colors) == 0 {
		return nil
	}
	p.history.Record(p.entries)
	added := make([]Entry, 0, len(colors))
	for _, c := range colors {
		e := p.newEntry(c, "")
		p.entries = append(p.entries, e)
		added = append(added, e)
	}
	return added
}

// Replace swaps the whole palette for colors, named "Color 1" onward
// An empty list leaves the palette untouched and returns ErrNoColors
func (p *Palette) Replace(colors []color.Color) error {
	if len(colors) == 0 {
		return ErrNoColors
	}
	p.history.Record(p.entries)
	entries := make([]Entry, len(colors))
	for i, c := range colors {
		entries[i] = NewEntry(c, defaultName(i+1))
	}
	p.entries = entries
	return nil
}

// Remove deletes an entry
func (p *Palette) Remove(id string) error {
	i := p.index(id)
	if i < 0 {
		return fmt.Errorf("remove %s: %w", id, ErrNotFound)
	}
	p.history.Record(p.entries)
	p.entries = append(clone(p.entries[:i]), p.entries[i+1:]...)
	return nil
}

// Rename changes the display name of an entry
func (p *Palette) Rename(id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	i := p.index(id)
	if i < 0 {
		return fmt.Errorf("rename %s: %w", id, ErrNotFound)
	}
	if p.entries[i].Name == name {
		return nil
	}
	p.history.Record(p.entries)
	p.entries = clone(p.entries)
	p.entries[i].Name = name
	return nil
}

// Move shifts an entry by delta positions, stopping at either end. It
// returns the new index
func (p *Palette) Move(id string, delta int) (int, error) {
	i := p.index(id)
	if i < 0 {
		return -1, fmt.Errorf("move %s: %w", id, ErrNotFound)
	}
	j := min(max(i+delta, 0), len(p.entries)-1)
	if j == i {
		return i, nil
	}
	p.history.Record(p.entries)
	entries := clone(p.entries)
	e := entries[i]
	entries = append(entries[:i], entries[i+1:]...)
	entries = append(entries[:j], append([]Entry{e}, entries[j:]...)...)
	p.entries = entries
	return j, nil
}

// Clear removes every entry
func (p *Palette) Clear() {
	if len(p.entries) == 0 {
		return
	}
	p.history.Record(p.entries)
	p.entries = make([]Entry, 0)
}

// Undo reverts the last mutation. It reports whether anything changed
func (p *Palette) Undo() bool {
	prev, ok := p.history.Undo(p.entries)
	if ok {
		p.entries = prev
	}
	return ok
}

// Redo reapplies the last undone mutation
func (p *Palette) Redo() bool {
	next, ok := p.history.Redo(p.entries)
	if ok {
		p.entries = next
	}
	return ok
}

// History exposes the undo state shown in the editor header
func (p *Palette) History() *History {
	return p.history
}

func (p *Palette) newEntry(c color.Color, name string) Entry {
	if strings.TrimSpace(name) == "" {
		name = defaultName(nextDefaultNumber(p.entries))
	}
	return NewEntry(c, name)
}

func (p *Palette) index(id string) int {
	for i, e := range p.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}
