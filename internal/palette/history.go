package palette

// DefaultHistoryLimit is the number of undo snapshots kept
const DefaultHistoryLimit = 50

// History records palette snapshots for undo and redo
type History struct {
	limit int
	undo  [][]Entry
	redo  [][]Entry
}

// NewHistory creates a history keeping at most limit undo snapshots
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{limit: limit}
}

// Record stores the state before a mutation and drops the redo stack
func (h *History) Record(before []Entry) {
	h.undo = append(h.undo, clone(before))
	if len(h.undo) > h.limit {
		h.undo = h.undo[len(h.undo)-h.limit:]
	}
	h.redo = nil
}

// Undo returns the previous state, pushing current onto the redo stack
func (h *History) Undo(current []Entry) ([]Entry, bool) {
	if len(h.undo) == 0 {
		return nil, false
	}
	prev := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, clone(current))
	return prev, true
}

// Redo reapplies the last undone state
func (h *History) Redo(current []Entry) ([]Entry, bool) {
	if len(h.redo) == 0 {
		return nil, false
	}
	next := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, clone(current))
	return next, true
}

// CanUndo reports whether Undo would change anything
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether Redo would change anything
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Depth returns the number of undo and redo snapshots held
func (h *History) Depth() (undo, redo int) {
	return len(h.undo), len(h.redo)
}

func clone(entries []Entry) []Entry {
	if entries == nil {
		return nil
	}
	return append([]Entry(nil), entries...)
}
