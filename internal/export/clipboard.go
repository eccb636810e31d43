package export

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrNoClipboard is returned when no clipboard utility is installed
var ErrNoClipboard = errors.New("clipboard not available")

var writeClipboard = clipboard.WriteAll

// Copy places text on the system clipboard
func Copy(text string) error {
	if clipboard.Unsupported {
		return ErrNoClipboard
	}
	return writeClipboard(text)
}
