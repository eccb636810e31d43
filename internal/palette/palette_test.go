package palette

import (
	"errors"
	"testing"

	"github.com/colorpalettestudio/tintshade/internal/color"
)

func names(p *Palette) []string {
	var out []string
	for _, e := range p.Entries() {
		out = append(out, e.Name)
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestAddDefaultNames(t *testing.T) {
	p := New()
	a := p.Add(color.MustParse("#FF0000"), "")
	b := p.Add(color.MustParse("#00FF00"), "  Leaf  ")
	c := p.Add(color.MustParse("#0000FF"), "")

	if !equal(names(p), []string{"Color 1", "Leaf", "Color 3"}) {
		t.Errorf("names = %v", names(p))
	}
	if a.ID == "" || a.ID == b.ID || b.ID == c.ID {
		t.Errorf("ids not unique: %q %q %q", a.ID, b.ID, c.ID)
	}
	if got, ok := p.Get(b.ID); !ok || got.Hex() != "#00FF00" {
		t.Errorf("Get = %+v, %v", got, ok)
	}

	if err := p.Remove(a.ID); err != nil {
		t.Fatal(err)
	}
	// numbering continues past the highest name in use
	d := p.Add(color.White, "")
	if d.Name != "Color 4" {
		t.Errorf("next name = %q, want Color 4", d.Name)
	}
}

func TestAddBatchSkipsInvalid(t *testing.T) {
	p := New()
	added := p.AddBatch(color.ParseBatch("#FF0000, not-a-color, #00ff00"))
	if len(added) != 2 || p.Len() != 2 {
		t.Fatalf("added %d, len %d", len(added), p.Len())
	}
	if added[1].Hex() != "#00FF00" {
		t.Errorf("second = %s", added[1].Hex())
	}

	if got := p.AddBatch(color.ParseBatch("nope, nada")); got != nil {
		t.Errorf("all-invalid batch added %v", got)
	}
	if p.Len() != 2 {
		t.Errorf("len = %d", p.Len())
	}

	// one batch is one undo step
	if !p.Undo() || p.Len() != 0 {
		t.Errorf("undo batch left %d entries", p.Len())
	}
}

func TestReplace(t *testing.T) {
	p := New()
	p.Add(color.Black, "Ink")
	if err := p.Replace(nil); !errors.Is(err, ErrNoColors) {
		t.Errorf("Replace(nil) = %v", err)
	}
	if err := p.Replace([]color.Color{color.White, color.Black}); err != nil {
		t.Fatal(err)
	}
	if !equal(names(p), []string{"Color 1", "Color 2"}) {
		t.Errorf("names = %v", names(p))
	}
	p.Undo()
	if !equal(names(p), []string{"Ink"}) {
		t.Errorf("after undo = %v", names(p))
	}
}

func TestRenameRemoveErrors(t *testing.T) {
	p := New()
	e := p.Add(color.Black, "")

	if err := p.Rename(e.ID, "   "); !errors.Is(err, ErrEmptyName) {
		t.Errorf("Rename empty = %v", err)
	}
	if err := p.Rename("missing", "x"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Rename missing = %v", err)
	}
	if err := p.Remove("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Remove missing = %v", err)
	}
	if _, err := p.Move("missing", 1); !errors.Is(err, ErrNotFound) {
		t.Errorf("Move missing = %v", err)
	}
	if err := p.Rename(e.ID, "Night"); err != nil {
		t.Fatal(err)
	}
	if got, _ := p.Get(e.ID); got.Name != "Night" {
		t.Errorf("name = %q", got.Name)
	}
}

func TestMove(t *testing.T) {
	p := New()
	a := p.Add(color.Black, "a")
	p.Add(color.Black, "b")
	c := p.Add(color.Black, "c")

	tests := []struct {
		id    string
		delta int
		want  []string
		index int
	}{
		{c.ID, -1, []string{"a", "c", "b"}, 1},
		{c.ID, -5, []string{"c", "a", "b"}, 0},
		{c.ID, -1, []string{"c", "a", "b"}, 0},
		{a.ID, 1, []string{"c", "b", "a"}, 2},
		{a.ID, 1, []string{"c", "b", "a"}, 2},
	}
	for i, tt := range tests {
		idx, err := p.Move(tt.id, tt.delta)
		if err != nil {
			t.Fatal(err)
		}
		if idx != tt.index || !equal(names(p), tt.want) {
			t.Errorf("move %d: index %d names %v, want %d %v", i, idx, names(p), tt.index, tt.want)
		}
	}
}

func TestUndoRedo(t *testing.T) {
	p := New()
	if p.Undo() || p.Redo() {
		t.Fatal("empty history changed the palette")
	}

	a := p.Add(color.Black, "a")
	p.Add(color.White, "b")
	p.Rename(a.ID, "z")
	p.Clear()

	steps := [][]string{
		{"z", "b"},
		{"a", "b"},
		{"a"},
		nil,
	}
	for i, want := range steps {
		if !p.Undo() {
			t.Fatalf("undo %d failed", i)
		}
		if !equal(names(p), want) {
			t.Errorf("undo %d = %v, want %v", i, names(p), want)
		}
	}
	if p.Undo() {
		t.Error("undo past the start")
	}

	if !p.Redo() || !p.Redo() || !equal(names(p), []string{"a", "b"}) {
		t.Errorf("redo = %v", names(p))
	}

	// a new change drops the redo stack
	p.Add(color.Black, "c")
	if p.Redo() {
		t.Error("redo after a new change")
	}
	if !equal(names(p), []string{"a", "b", "c"}) {
		t.Errorf("names = %v", names(p))
	}
}

func TestClearEmptyIsNotRecorded(t *testing.T) {
	p := New()
	p.Clear()
	if p.History().CanUndo() {
		t.Error("clearing an empty palette was recorded")
	}
}

func TestEntriesIsACopy(t *testing.T) {
	p := New()
	p.Add(color.Black, "a")
	got := p.Entries()
	got[0].Name = "mutated"
	if names(p)[0] != "a" {
		t.Error("Entries exposes internal state")
	}
}

func TestRamps(t *testing.T) {
	p := New()
	p.Add(color.MustParse("#4169E1"), "Royal")
	p.Add(color.MustParse("#FF0000"), "")

	ramps := p.Ramps([]color.Step{50, 0, -50})
	if len(ramps) != 2 {
		t.Fatalf("len = %d", len(ramps))
	}
	if ramps[0].Name != "Royal" || ramps[1].Name != "Color 2" {
		t.Errorf("names = %q %q", ramps[0].Name, ramps[1].Name)
	}
	got := color.Hexes(ramps[0].Swatches)
	if !equal(got, []string{"#A0B4F0", "#4169E1", "#213571"}) {
		t.Errorf("royal ramp = %v", got)
	}
}

func TestSample(t *testing.T) {
	s := Sample()
	if len(s) != 5 {
		t.Fatalf("sample has %d colors", len(s))
	}
	if s[0].Hex() != "#FF6F61" || s[3].Hex() != "#3B82F6" {
		t.Errorf("sample = %v", s)
	}
	if valid, invalid := color.Summary(color.ParseBatch(SampleText())); valid != 5 || invalid != 0 {
		t.Errorf("sample text parses %d/%d", valid, invalid)
	}
}

func TestFromColors(t *testing.T) {
	p := FromColors([]color.Color{color.Black, color.White})
	if !equal(names(p), []string{"Color 1", "Color 2"}) {
		t.Errorf("names = %v", names(p))
	}
	if p.History().CanUndo() {
		t.Error("seeding was recorded")
	}
}
