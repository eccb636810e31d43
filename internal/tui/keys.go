package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Add        key.Binding
	Import     key.Binding
	Rename     key.Binding
	Remove     key.Binding
	MoveUp     key.Binding
	MoveDown   key.Binding
	Undo       key.Binding
	Redo       key.Binding
	CopySwatch key.Binding
	CopyRow    key.Binding
	CopyComma  key.Binding
	CopyLines  key.Binding
	Export     key.Binding
	Preset     key.Binding
	Sample     key.Binding
	Clear      key.Binding
	Help       key.Binding
	Quit       key.Binding
	Enter      key.Binding
	Escape     key.Binding
	Yes        key.Binding
	No         key.Binding
	Generate   key.Binding
	Append     key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("j/↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("h/←", "prev swatch"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("l/→", "next swatch"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Import: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "bulk import"),
		),
		Rename: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rename"),
		),
		Remove: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "remove"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("K", "shift+up"),
			key.WithHelp("K", "move up"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("J", "shift+down"),
			key.WithHelp("J", "move down"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u", "ctrl+z"),
			key.WithHelp("u", "undo"),
		),
		Redo: key.NewBinding(
			key.WithKeys("ctrl+r", "U"),
			key.WithHelp("ctrl+r", "redo"),
		),
		CopySwatch: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "copy swatch"),
		),
		CopyRow: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy row"),
		),
		CopyComma: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy all (comma)"),
		),
		CopyLines: key.NewBinding(
			key.WithKeys("Y"),
			key.WithHelp("Y", "copy all (lines)"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export"),
		),
		Preset: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "steps"),
		),
		Sample: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "sample palette"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y", "Y"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N"),
		),
		Generate: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "replace palette"),
		),
		Append: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "append"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Import, k.Rename, k.Remove, k.Undo, k.CopySwatch, k.CopyRow, k.Export, k.Preset, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.MoveUp, k.MoveDown, k.Add, k.Import},
		{k.Rename, k.Remove, k.Undo, k.Redo},
		{k.CopySwatch, k.CopyRow, k.CopyComma, k.CopyLines},
		{k.Export, k.Preset, k.Sample, k.Clear},
		{k.Help, k.Quit},
	}
}
