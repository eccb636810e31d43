package palette

import "testing"

func TestHistoryLimit(t *testing.T) {
	h := NewHistory(3)
	for i := 0; i < 5; i++ {
		h.Record(make([]Entry, i))
	}
	if u, r := h.Depth(); u != 3 || r != 0 {
		t.Fatalf("depth = %d, %d", u, r)
	}

	// oldest snapshots are dropped first
	for _, want := range []int{4, 3, 2} {
		prev, ok := h.Undo(nil)
		if !ok || len(prev) != want {
			t.Errorf("undo = %d entries, %v; want %d", len(prev), ok, want)
		}
	}
	if h.CanUndo() {
		t.Error("history kept more than its limit")
	}
	if !h.CanRedo() {
		t.Error("undo did not fill redo")
	}
}

func TestNewHistoryDefaultLimit(t *testing.T) {
	h := NewHistory(0)
	for i := 0; i < DefaultHistoryLimit+10; i++ {
		h.Record(nil)
	}
	if u, _ := h.Depth(); u != DefaultHistoryLimit {
		t.Errorf("depth = %d, want %d", u, DefaultHistoryLimit)
	}
}
