package ui

// Parse result icons
const (
	IconValid   = "✓"
	IconInvalid = "✗"
)

// UI icons for various UI elements
const (
	IconConfirm  = "⚠️ "
	IconInput    = "✎"
	IconCursor   = "▸"
	IconCopy     = "⧉"
	IconExport   = "⤓"
	IconUndo     = "↶"
	IconRedo     = "↷"
	IconSwatch   = "██"
	IconEllipsis = "…"
)

// SpinnerFrames for export progress
var SpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
