package tui

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/colorpalettestudio/tintshade/internal/color"
	"github.com/colorpalettestudio/tintshade/internal/config"
	"github.com/colorpalettestudio/tintshade/internal/export"
	"github.com/colorpalettestudio/tintshade/internal/palette"
	"github.com/colorpalettestudio/tintshade/internal/ui"
)

// AppState represents the current UI state
type AppState int

const (
	StateNormal AppState = iota
	StateInput
	StateImport
	StateConfirm
	StateExportSelect
)

// InputMode represents what input is being collected
type InputMode int

const (
	InputNone InputMode = iota
	InputAdd
	InputRename
)

// customPreset names the step ladder that came from config or flags
const customPreset = "custom"

const (
	nameWidth = 18
	maxChips  = 24
)

// Options configures a new Model
type Options struct {
	Preset      string
	Steps       []color.Step // overrides Preset when set
	SwatchWidth int
	Colors      []color.Color
	Runner      *export.Runner
	Clipboard   func(string) error
	Logger      *slog.Logger
}

// Model is the main Bubble Tea model
type Model struct {
	// Core dependencies
	palette   *palette.Palette
	runner    *export.Runner
	clipboard func(string) error
	logger    *slog.Logger
	keys      KeyMap
	styles    Styles
	help      help.Model

	// Window dimensions
	width  int
	height int

	// Palette view state
	selected    int
	column      int
	offset      int
	presets     []string
	presetIdx   int
	customSteps []color.Step
	swatchWidth int

	// UI state
	state     AppState
	statusMsg string
	statusErr bool

	// Export state
	exporting    int
	spinnerFrame int
	resultChan   chan export.Result

	// Sub-components
	textInput textinput.Model
	textArea  textarea.Model

	// Input state
	inputPrompt string
	inputMode   InputMode
	renameID    string

	// Import preview
	preview []color.Parsed

	// Confirm state
	confirmMsg    string
	confirmAction func(Model) Model
}

// New creates a new TUI model
func New(opts Options) Model {
	ti := textinput.New()
	ti.CharLimit = 200
	ti.Width = 40

	ta := textarea.New()
	ta.Placeholder = palette.SampleText()
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(56)
	ta.SetHeight(8)

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = export.Copy
	}
	width := opts.SwatchWidth
	if width <= 0 {
		width = config.DefaultSwatchWidth
	}
	runner := opts.Runner
	if runner == nil {
		runner = export.NewRunner(".", config.DefaultFilePrefix, logger)
	}

	m := Model{
		palette:     palette.FromColors(opts.Colors),
		runner:      runner,
		clipboard:   clip,
		logger:      logger,
		keys:        DefaultKeyMap(),
		styles:      DefaultStyles(),
		help:        help.New(),
		presets:     color.PresetNames(),
		swatchWidth: width,
		resultChan:  make(chan export.Result, 10),
		textInput:   ti,
		textArea:    ta,
	}

	if len(opts.Steps) > 0 {
		m.customSteps = append([]color.Step(nil), opts.Steps...)
		m.presets = append(m.presets, customPreset)
		m.presetIdx = len(m.presets) - 1
	} else {
		for i, name := range m.presets {
			if name == strings.ToLower(opts.Preset) {
				m.presetIdx = i
			}
		}
		if opts.Preset == "" {
			for i, name := range m.presets {
				if name == color.DefaultPreset {
					m.presetIdx = i
				}
			}
		}
	}
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.tickCmd(),
		m.listenForResults(),
	)
}

// Tick message for spinner animation
type tickMsg time.Time

func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Result message from an async export
type resultMsg export.Result

func (m Model) listenForResults() tea.Cmd {
	return func() tea.Msg {
		result := <-m.resultChan
		return resultMsg(result)
	}
}

// Palette returns the palette being edited
func (m Model) Palette() *palette.Palette {
	return m.palette
}

// Steps returns the active step ladder
func (m Model) Steps() []color.Step {
	name := m.PresetName()
	if name == customPreset {
		return m.customSteps
	}
	steps, _ := color.Preset(name)
	return steps
}

// PresetName returns the name of the active step ladder
func (m Model) PresetName() string {
	return m.presets[m.presetIdx]
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.textArea.SetWidth(min(72, max(30, msg.Width-16)))
		m.textInput.Width = min(50, max(20, msg.Width-20))
		m.clampScroll()
		return m, nil

	case tickMsg:
		m.spinnerFrame = (m.spinnerFrame + 1) % len(ui.SpinnerFrames)
		cmds = append(cmds, m.tickCmd())

	case resultMsg:
		m.handleResult(export.Result(msg))
		cmds = append(cmds, m.listenForResults())
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateInput:
		return m.handleInputKey(msg)
	case StateImport:
		return m.handleImportKey(msg)
	case StateConfirm:
		return m.handleConfirmKey(msg)
	case StateExportSelect:
		return m.handleExportKey(msg)
	default:
		return m.handleNormalKey(msg)
	}
}

func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		m.clampScroll()
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selected < m.palette.Len()-1 {
			m.selected++
		}
		m.clampScroll()
		return m, nil

	case key.Matches(msg, m.keys.Add):
		return m.startInput(InputAdd, "Color: ", "")

	case key.Matches(msg, m.keys.Import):
		return m.startImport()

	case key.Matches(msg, m.keys.Rename):
		e, ok := m.selectedEntry()
		if !ok {
			return m.setStatus("No color selected", true), nil
		}
		m.renameID = e.ID
		return m.startInput(InputRename, "Name: ", e.Name)

	case key.Matches(msg, m.keys.Remove):
		return m.removeSelected(), nil

	case key.Matches(msg, m.keys.MoveUp):
		return m.moveSelected(-1), nil

	case key.Matches(msg, m.keys.MoveDown):
		return m.moveSelected(1), nil

	case key.Matches(msg, m.keys.Undo):
		if !m.palette.Undo() {
			return m.setStatus("Nothing to undo", false), nil
		}
		m.clampScroll()
		return m.setStatus(ui.IconUndo+" Undone", false), nil

	case key.Matches(msg, m.keys.Redo):
		if !m.palette.Redo() {
			return m.setStatus("Nothing to redo", false), nil
		}
		m.clampScroll()
		return m.setStatus(ui.IconRedo+" Redone", false), nil

	case key.Matches(msg, m.keys.Left):
		if m.column > 0 {
			m.column--
		}
		return m, nil

	case key.Matches(msg, m.keys.Right):
		if m.column < len(m.Steps())-1 {
			m.column++
		}
		return m, nil

	case key.Matches(msg, m.keys.CopySwatch):
		e, ok := m.selectedEntry()
		if !ok {
			return m.setStatus("No color selected", true), nil
		}
		ramp := color.Generate(e.Color, m.Steps())
		if len(ramp) == 0 {
			return m, nil
		}
		sw := ramp[m.focusColumn()]
		return m.copyText(sw.Hex(), fmt.Sprintf("Copied %s (%s %s)", sw.Hex(), e.DisplayName(), sw.Label)), nil

	case key.Matches(msg, m.keys.CopyRow):
		e, ok := m.selectedEntry()
		if !ok {
			return m.setStatus("No color selected", true), nil
		}
		ramp := color.Generate(e.Color, m.Steps())
		return m.copyText(export.RowText(ramp), fmt.Sprintf("Copied %s row", e.DisplayName())), nil

	case key.Matches(msg, m.keys.CopyComma):
		return m.copyAll(export.Comma), nil

	case key.Matches(msg, m.keys.CopyLines):
		return m.copyAll(export.Lines), nil

	case key.Matches(msg, m.keys.Export):
		if m.palette.Len() == 0 {
			return m.setStatus("Add colors first", true), nil
		}
		m.state = StateExportSelect
		return m, nil

	case key.Matches(msg, m.keys.Preset):
		m.presetIdx = (m.presetIdx + 1) % len(m.presets)
		m.column = m.focusColumn()
		return m.setStatus(fmt.Sprintf("Steps: %s", m.PresetName()), false), nil

	case key.Matches(msg, m.keys.Sample):
		_ = m.palette.Replace(palette.Sample())
		m.selected = 0
		m.clampScroll()
		return m.setStatus(fmt.Sprintf("Loaded sample palette (%d colors)", m.palette.Len()), false), nil

	case key.Matches(msg, m.keys.Clear):
		if m.palette.Len() == 0 {
			return m.setStatus("Palette is already empty", false), nil
		}
		return m.confirm(fmt.Sprintf("Clear all %d colors?", m.palette.Len()), func(m Model) Model {
			m.palette.Clear()
			m.selected = 0
			m.offset = 0
			return m.setStatus("Cleared palette (u to undo)", false)
		}), nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.clampScroll()
		return m, nil
	}

	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		value := strings.TrimSpace(m.textInput.Value())

		switch m.inputMode {
		case InputAdd:
			if value == "" {
				return m.endInput().setStatus("Cancelled", false), nil
			}
			c, err := color.Parse(value)
			if err != nil {
				// keep the text so it can be fixed
				return m.setStatus(err.Error(), true), nil
			}
			e := m.palette.Add(c, "")
			m = m.endInput()
			m.selected = m.palette.Len() - 1
			m.clampScroll()
			m.logger.Debug("color added", slog.String("hex", e.Hex()), slog.String("input", value))
			return m.setStatus(fmt.Sprintf("Added %s %s", e.Name, e.Hex()), false), nil

		case InputRename:
			if value == "" {
				return m.endInput().setStatus("Cancelled", false), nil
			}
			if err := m.palette.Rename(m.renameID, value); err != nil {
				return m.endInput().setStatus(err.Error(), true), nil
			}
			e, _ := m.palette.Get(m.renameID)
			return m.endInput().setStatus(fmt.Sprintf("Renamed to %s", e.DisplayName()), false), nil
		}
		return m.endInput(), nil

	case tea.KeyEsc:
		return m.endInput().setStatus("Cancelled", false), nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m Model) handleImportKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.state = StateNormal
		m.textArea.Blur()
		return m.setStatus("Cancelled", false), nil

	case key.Matches(msg, m.keys.Generate), key.Matches(msg, m.keys.Append):
		replace := key.Matches(msg, m.keys.Generate)
		batch := color.ParseBatch(m.textArea.Value())
		valid, invalid := color.Summary(batch)
		if valid == 0 {
			return m.setStatus("No valid colors. Enter HEX, RGB or HSL colors.", true), nil
		}

		if replace {
			_ = m.palette.Replace(color.Colors(batch))
			m.selected = 0
		} else {
			m.palette.AddBatch(batch)
			m.selected = m.palette.Len() - 1
		}
		m.state = StateNormal
		m.textArea.Reset()
		m.textArea.Blur()
		m.preview = nil
		m.clampScroll()

		status := fmt.Sprintf("Generated tints & shades for %d color%s", valid, plural(valid))
		if invalid > 0 {
			status += fmt.Sprintf(", skipped %d invalid", invalid)
		}
		return m.setStatus(status, false), nil
	}

	var cmd tea.Cmd
	m.textArea, cmd = m.textArea.Update(msg)
	m.preview = color.ParseBatch(m.textArea.Value())
	return m, cmd
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Yes), key.Matches(msg, m.keys.Enter):
		m.state = StateNormal
		if m.confirmAction != nil {
			m = m.confirmAction(m)
		}
		m.confirmAction = nil
		return m, nil

	case key.Matches(msg, m.keys.No), key.Matches(msg, m.keys.Escape):
		m.state = StateNormal
		m.confirmAction = nil
		return m.setStatus("Cancelled", false), nil
	}

	return m, nil
}

func (m Model) handleExportKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var f export.Format
	switch msg.String() {
	case "c", "1":
		f = export.FormatCSV
	case "p", "2":
		f = export.FormatPNG
	case "j", "3":
		f = export.FormatJSON
	case "d", "4":
		f = export.FormatPDF
	case "t", "5":
		f = export.FormatText
	case "esc", "q":
		m.state = StateNormal
		return m.setStatus("Cancelled", false), nil
	default:
		return m, nil
	}

	m.state = StateNormal
	m.exporting++
	m.runner.RunAsync(export.Job{Format: f, Rows: m.palette.Ramps(m.Steps())}, m.resultChan)
	return m.setStatus(fmt.Sprintf("Exporting %s...", strings.ToUpper(string(f))), false), nil
}

func (m *Model) handleResult(result export.Result) {
	if m.exporting > 0 {
		m.exporting--
	}
	if result.Err != nil {
		m.statusMsg = fmt.Sprintf("Export failed: %v", result.Err)
		m.statusErr = true
		return
	}
	m.statusMsg = fmt.Sprintf("%s %s exported to %s", ui.IconExport, strings.ToUpper(string(result.Format)), result.Path)
	m.statusErr = false
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	title := fmt.Sprintf("Tint & Shade Generator [%s] %d color%s",
		m.PresetName(), m.palette.Len(), plural(m.palette.Len()))
	if hist := m.historyStatus(); hist != "" {
		title += "  " + hist
	}
	header := m.styles.Header.Render(title)

	footer := m.renderFooter()
	statusStyle := m.styles.StatusBar
	if m.statusErr {
		statusStyle = m.styles.StatusErr
	}
	status := m.statusMsg
	if m.exporting > 0 {
		status = ui.SpinnerFrames[m.spinnerFrame] + " " + status
	}

	content := m.renderPalette(m.contentHeight())

	var overlay string
	switch m.state {
	case StateInput:
		overlay = m.renderInputOverlay()
	case StateImport:
		overlay = m.renderImportOverlay()
	case StateConfirm:
		overlay = m.renderConfirmOverlay()
	case StateExportSelect:
		overlay = m.renderExportOverlay()
	}

	if overlay != "" {
		// Center overlay on screen
		overlayStyle := lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center)
		return overlayStyle.Render(overlay)
	}

	view := lipgloss.JoinVertical(lipgloss.Left,
		header,
		content,
		footer,
		statusStyle.Render(status),
	)

	// Force exact terminal height to prevent scrolling issues
	lines := strings.Split(view, "\n")
	if len(lines) > m.height {
		lines = lines[:m.height]
	}
	for len(lines) < m.height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// cellWidth fits the swatches into the terminal, never below a hex code
func (m Model) cellWidth() int {
	steps := len(m.Steps())
	if steps == 0 {
		return m.swatchWidth
	}
	avail := (m.width - nameWidth - 4) / steps
	return max(7, min(m.swatchWidth, avail))
}

func (m Model) renderPalette(height int) string {
	steps := m.Steps()
	cw := m.cellWidth()

	lines := []string{
		strings.Repeat(" ", nameWidth+3) + ui.StepHeader(steps, cw),
	}

	if m.palette.Len() == 0 {
		lines = append(lines, m.styles.Empty.Render(
			"No colors yet. Press a to add one, i to paste a list or S for the sample palette."))
	} else {
		ramps := m.palette.Ramps(steps)
		end := min(len(ramps), m.offset+m.visibleRows(height))
		for i := m.offset; i < end; i++ {
			r := ramps[i]
			cursor := "  "
			nameStyle := m.styles.NormalName
			if i == m.selected {
				cursor = m.styles.Cursor.Render(ui.IconCursor) + " "
				nameStyle = m.styles.SelectedName
			}

			// Truncate using display width
			name := r.Name
			if runewidth.StringWidth(name) > nameWidth {
				name = runewidth.Truncate(name, nameWidth, ui.IconEllipsis)
			}
			name = runewidth.FillRight(name, nameWidth)

			focus := -1
			if i == m.selected {
				focus = m.focusColumn()
			}
			lines = append(lines, cursor+nameStyle.Render(name)+" "+ui.FocusedRampRow(r.Swatches, cw, focus))
		}
	}

	// Pad to fill height to prevent layout shifts
	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func (m Model) visibleRows(height int) int {
	return max(1, height-1)
}

func (m Model) renderFooter() string {
	return m.styles.Footer.Render(m.help.View(m.keys))
}

// contentHeight is what is left for the palette after the header, step
// header, status line and the footer as currently rendered
func (m Model) contentHeight() int {
	return max(1, m.height-3-lipgloss.Height(m.renderFooter()))
}

// focusColumn is the swatch cursor clamped to the active ladder
func (m Model) focusColumn() int {
	return max(0, min(m.column, len(m.Steps())-1))
}

func (m Model) historyStatus() string {
	h := m.palette.History()
	undo, redo := h.Depth()
	var parts []string
	if h.CanUndo() {
		parts = append(parts, fmt.Sprintf("%s%d", ui.IconUndo, undo))
	}
	if h.CanRedo() {
		parts = append(parts, fmt.Sprintf("%s%d", ui.IconRedo, redo))
	}
	return strings.Join(parts, " ")
}

// clampScroll keeps the selection in range and on screen
func (m *Model) clampScroll() {
	n := m.palette.Len()
	m.selected = max(0, min(m.selected, n-1))
	rows := m.visibleRows(m.contentHeight())
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+rows {
		m.offset = m.selected - rows + 1
	}
	m.offset = max(0, min(m.offset, max(0, n-rows)))
}

func (m Model) renderInputOverlay() string {
	return m.styles.PopupBorder.Render(
		fmt.Sprintf("%s\n%s\n\n%s",
			m.styles.InputPrompt.Render(ui.IconInput+" "+m.inputPrompt),
			m.textInput.View(),
			m.styles.Hint.Render("[enter] ok  [esc] cancel"),
		),
	)
}

func (m Model) renderImportOverlay() string {
	var b strings.Builder
	b.WriteString(m.styles.PopupTitle.Render("Bulk import"))
	b.WriteString("\n")
	b.WriteString(m.styles.Hint.Render("HEX, rgb() or hsl(), separated by commas or new lines"))
	b.WriteString("\n\n")
	b.WriteString(m.textArea.View())
	b.WriteString("\n\n")

	valid, invalid := color.Summary(m.preview)
	b.WriteString(m.styles.Valid.Render(fmt.Sprintf("%s %d valid", ui.IconValid, valid)))
	b.WriteString("  ")
	b.WriteString(m.styles.Invalid.Render(fmt.Sprintf("%s %d invalid", ui.IconInvalid, invalid)))

	// list the first few bad entries so they can be fixed
	shown := 0
	for _, p := range m.preview {
		if p.Valid() || shown == 3 {
			continue
		}
		b.WriteString("\n")
		b.WriteString(m.styles.Invalid.Render("  " + runewidth.Truncate(p.Original, 40, ui.IconEllipsis)))
		shown++
	}
	if valid > 0 {
		b.WriteString("\n")
		colors := color.Colors(m.preview)
		chips := make([]string, 0, min(len(colors), maxChips))
		for _, c := range colors[:min(len(colors), maxChips)] {
			chips = append(chips, ui.Chip(c))
		}
		b.WriteString(strings.Join(chips, ""))
		if len(colors) > maxChips {
			b.WriteString(ui.IconEllipsis)
		}
	}

	b.WriteString("\n\n")
	b.WriteString(m.styles.Hint.Render("[ctrl+s] replace palette  [ctrl+a] append  [esc] cancel"))
	return m.styles.PopupBorder.Render(b.String())
}

func (m Model) renderConfirmOverlay() string {
	return m.styles.PopupBorder.Render(
		fmt.Sprintf("%s\n\n[y]es / [n]o",
			m.styles.PopupTitle.Render(ui.IconConfirm+m.confirmMsg),
		),
	)
}

func (m Model) renderExportOverlay() string {
	return m.styles.PopupBorder.Render(
		fmt.Sprintf("%s\n%s\n\n[c]sv  [p]ng  [j]son  p[d]f  [t]ext\n\n[esc] cancel",
			m.styles.PopupTitle.Render(ui.IconExport+" Export palette"),
			m.styles.Hint.Render(m.runner.Dir),
		),
	)
}

// Actions

func (m Model) startInput(mode InputMode, prompt, value string) (Model, tea.Cmd) {
	m.state = StateInput
	m.inputMode = mode
	m.inputPrompt = prompt
	m.textInput.SetValue(value)
	m.textInput.CursorEnd()
	m.textInput.Focus()
	return m, textinput.Blink
}

func (m Model) endInput() Model {
	m.state = StateNormal
	m.inputMode = InputNone
	m.renameID = ""
	m.textInput.Reset()
	m.textInput.Blur()
	return m
}

func (m Model) startImport() (Model, tea.Cmd) {
	m.state = StateImport
	m.textArea.Reset()
	m.preview = nil
	cmd := m.textArea.Focus()
	return m, cmd
}

func (m Model) removeSelected() Model {
	e, ok := m.selectedEntry()
	if !ok {
		return m.setStatus("No color selected", true)
	}
	if err := m.palette.Remove(e.ID); err != nil {
		return m.setStatus(err.Error(), true)
	}
	m.clampScroll()
	return m.setStatus(fmt.Sprintf("Removed %s (u to undo)", e.DisplayName()), false)
}

func (m Model) moveSelected(delta int) Model {
	e, ok := m.selectedEntry()
	if !ok {
		return m
	}
	idx, err := m.palette.Move(e.ID, delta)
	if err != nil {
		return m.setStatus(err.Error(), true)
	}
	m.selected = idx
	m.clampScroll()
	return m
}

func (m Model) copyAll(sep export.Separator) Model {
	if m.palette.Len() == 0 {
		return m.setStatus("Nothing to copy", true)
	}
	rows := m.palette.Ramps(m.Steps())
	return m.copyText(export.Text(rows, sep), "All codes copied!")
}

func (m Model) copyText(text, done string) Model {
	if err := m.clipboard(text); err != nil {
		if errors.Is(err, export.ErrNoClipboard) {
			return m.setStatus("Clipboard unavailable (install xclip, xsel or wl-clipboard)", true)
		}
		return m.setStatus(fmt.Sprintf("Copy failed: %v", err), true)
	}
	return m.setStatus(ui.IconCopy+" "+done, false)
}

func (m Model) confirm(msg string, action func(Model) Model) Model {
	m.state = StateConfirm
	m.confirmMsg = msg
	m.confirmAction = action
	return m
}

func (m Model) setStatus(msg string, isErr bool) Model {
	m.statusMsg = msg
	m.statusErr = isErr
	return m
}

func (m Model) selectedEntry() (palette.Entry, bool) {
	return m.palette.At(m.selected)
}

// Helper functions

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
