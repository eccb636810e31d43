package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/colorpalettestudio/tintshade/internal/color"
)

func TestInk(t *testing.T) {
	if Ink(color.White) != InkDark {
		t.Error("white needs dark ink")
	}
	if Ink(color.MustParse("#213571")) != InkLight {
		t.Error("navy needs light ink")
	}
}

func TestRampRowLayout(t *testing.T) {
	steps := []color.Step{50, 0, -50}
	ramp := color.Generate(color.MustParse("#4169E1"), steps)

	row := RampRow(ramp, 9)
	if w := lipgloss.Width(row); w != 27 {
		t.Errorf("row width = %d, want 27", w)
	}
	for _, hex := range []string{"#A0B4F0", "#4169E1", "#213571"} {
		if !strings.Contains(row, hex) {
			t.Errorf("row missing %s", hex)
		}
	}

	header := StepHeader(steps, 9)
	if w := lipgloss.Width(header); w != 27 {
		t.Errorf("header width = %d, want 27", w)
	}
	if !strings.Contains(header, "Base") || !strings.Contains(header, "−50%") {
		t.Errorf("header = %q", header)
	}
}

func TestFocusedRampRowKeepsLayout(t *testing.T) {
	ramp := color.Generate(color.MustParse("#4169E1"), []color.Step{50, 0, -50})
	for _, focus := range []int{-1, 0, 2, 5} {
		row := FocusedRampRow(ramp, 9, focus)
		if w := lipgloss.Width(row); w != 27 {
			t.Errorf("focus %d: width = %d, want 27", focus, w)
		}
		if !strings.Contains(row, "#4169E1") {
			t.Errorf("focus %d: row missing base hex", focus)
		}
	}
}
