package color

import (
	"strings"
	"testing"
)

func TestGenerateScenario(t *testing.T) {
	ramp := Generate(MustParse("#4169E1"), []Step{50, 0, -50})

	want := []struct{ label, hex string }{
		{"+50%", "#A0B4F0"},
		{"Base", "#4169E1"},
		{"−50%", "#213571"},
	}
	if len(ramp) != len(want) {
		t.Fatalf("len = %d, want %d", len(ramp), len(want))
	}
	for i, w := range want {
		if ramp[i].Label != w.label || ramp[i].Hex() != w.hex {
			t.Errorf("swatch %d = %s %s, want %s %s", i, ramp[i].Label, ramp[i].Hex(), w.label, w.hex)
		}
	}
	if !strings.HasPrefix(ramp[2].Label, "−") {
		t.Errorf("shade label %q must start with U+2212", ramp[2].Label)
	}
}

func TestGenerateKnownRamps(t *testing.T) {
	tests := []struct {
		base  string
		steps []Step
		want  []string
	}{
		{"#4169E1", Decimal, []string{
			"#A0B4F0", "#8DA5ED", "#7A96EA", "#6787E7", "#5478E4", "#4169E1",
			"#3B5FCB", "#3454B4", "#2E4A9E", "#273F87", "#213571",
		}},
		{"#4169E1", Tailwind, []string{
			"#F6F8FE", "#D0DAF8", "#A0B4F0", "#718FE9", "#4169E1",
			"#314FA9", "#213571", "#101A38", "#03050B",
		}},
		{"#FF0000", Tailwind, []string{
			"#FFF2F2", "#FFBFBF", "#FF8080", "#FF4040", "#FF0000",
			"#BF0000", "#800000", "#400000", "#0D0000",
		}},
		{"#FF0000", Decimal, []string{
			"#FF8080", "#FF6666", "#FF4D4D", "#FF3333", "#FF1A1A", "#FF0000",
			"#E60000", "#CC0000", "#B30000", "#990000", "#800000",
		}},
		{"#3B82F6", Tailwind, []string{
			"#F5F9FF", "#CEE0FD", "#9DC1FB", "#6CA1F8", "#3B82F6",
			"#2C62B9", "#1E417B", "#0F213E", "#03070C",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			got := Hexes(Generate(MustParse(tt.base), tt.steps))
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("step %d: got %s, want %s", tt.steps[i], got[i], tt.want[i])
				}
			}
		})
	}
}

func TestGeneratePerceptualSteps(t *testing.T) {
	tests := []struct {
		base  string
		steps []Step
		want  []string
	}{
		{"#808080", []Step{10, 0, -10}, []string{"#9E9E9E", "#808080", "#636363"}},
		{"#6B8E23", []Step{30, 20, 10, 0}, []string{"#C9ED91", "#A9CC72", "#8BAC52", "#6B8E23"}},
		// -10 stays perceptual while the larger shades mix
		{"#FF6F61", Decimal, []string{
			"#FFB7B0", "#FFA9A0", "#FF9A90", "#FF8C81", "#FF7D71", "#FF6F61",
			"#D4574B", "#CC594E", "#B34E44", "#99433A", "#803831",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			got := Hexes(Generate(MustParse(tt.base), tt.steps))
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("step %d: got %s, want %s", tt.steps[i], got[i], tt.want[i])
				}
			}
		})
	}
}

func TestGenerateKeepsInGamutStep(t *testing.T) {
	base := MustParse("#6B8E23")
	l, c, h := base.OkLch()
	for _, s := range []Step{10, 20, 30} {
		want, ok := shiftLightness(l, c, h, s)
		if !ok {
			t.Fatalf("step %d unexpectedly out of gamut", s)
		}
		if want == mixStep(base, s) {
			t.Fatalf("step %d: perceptual and linear results coincide", s)
		}
		if got := Generate(base, []Step{s})[0].Color; got != want {
			t.Errorf("step %d = %s, want perceptual %s (mix would be %s)", s, got.Hex(), want.Hex(), mixStep(base, s).Hex())
		}
	}
}

func TestGenerateOutOfGamutFallsBackToMix(t *testing.T) {
	red := MustParse("#FF0000")
	ramp := Generate(red, []Step{95})
	if want := Mix(red, White, 0.95); ramp[0].Color != want {
		t.Errorf("got %s, want %s", ramp[0].Hex(), want.Hex())
	}
}

func TestGenerateExtremes(t *testing.T) {
	black := Generate(Black, Tailwind)
	for _, sw := range black {
		if sw.Step <= 0 && sw.Color != Black {
			t.Errorf("black %s = %s, want #000000", sw.Label, sw.Hex())
		}
		if sw.Step > 0 && sw.Color == Black {
			t.Errorf("black %s did not lighten", sw.Label)
		}
	}

	white := Generate(White, Tailwind)
	for _, sw := range white {
		if sw.Step >= 0 && sw.Color != White {
			t.Errorf("white %s = %s, want #FFFFFF", sw.Label, sw.Hex())
		}
		if sw.Step < 0 && sw.Color == White {
			t.Errorf("white %s did not darken", sw.Label)
		}
	}

	full := Generate(MustParse("#4169E1"), []Step{100, -100})
	if full[0].Color != White || full[1].Color != Black {
		t.Errorf("±100 = %s %s, want white and black", full[0].Hex(), full[1].Hex())
	}
}

func sampleColors() []Color {
	var out []Color
	for _, h := range []string{
		"#000000", "#FFFFFF", "#808080", "#4169E1", "#FF0000", "#00FF00",
		"#0000FF", "#FFFF00", "#00FFFF", "#FF00FF", "#FF6F61", "#3B82F6",
		"#10B981", "#F59E0B", "#1E1E1E", "#FAFAFA", "#7F1D1D", "#663399",
	} {
		out = append(out, MustParse(h))
	}
	// deterministic spread over the cube
	for r := 0; r < 256; r += 51 {
		for g := 0; g < 256; g += 85 {
			for b := 0; b < 256; b += 127 {
				out = append(out, Color{uint8(r), uint8(g), uint8(b)})
			}
		}
	}
	return out
}

func TestGenerateProperties(t *testing.T) {
	ladders := map[string][]Step{
		"decimal":  Decimal,
		"tailwind": Tailwind,
		"custom":   {100, 60, 33, 5, 0, -5, -33, -60, -100},
	}

	for name, steps := range ladders {
		for _, base := range sampleColors() {
			ramp := Generate(base, steps)

			if len(ramp) != len(steps) {
				t.Fatalf("%s %s: len = %d, want %d", name, base, len(ramp), len(steps))
			}
			for i, sw := range ramp {
				if sw.Step != steps[i] {
					t.Errorf("%s %s: swatch %d step %d, want %d", name, base, i, sw.Step, steps[i])
				}
				if _, err := Parse(sw.Hex()); err != nil || len(sw.Hex()) != 7 {
					t.Errorf("%s %s: invalid hex %q", name, base, sw.Hex())
				}
				if sw.Hex() != strings.ToUpper(sw.Hex()) {
					t.Errorf("%s %s: hex %q not uppercase", name, base, sw.Hex())
				}
				if sw.Step == 0 && sw.Color != base {
					t.Errorf("%s %s: base step = %s", name, base, sw.Hex())
				}
			}

			// steps are ordered from lightest to darkest in every ladder
			for i := 1; i < len(ramp); i++ {
				prev, cur := ramp[i-1].Color.Lightness(), ramp[i].Color.Lightness()
				if cur > prev+1e-9 {
					t.Errorf("%s %s: lightness rises from %s (%.4f) to %s (%.4f)",
						name, base, ramp[i-1].Label, prev, ramp[i].Label, cur)
				}
			}
		}
	}
}

func TestGenerateClampsSteps(t *testing.T) {
	base := MustParse("#4169E1")
	ramp := Generate(base, []Step{150, -150})
	if ramp[0].Step != 100 || ramp[0].Color != White {
		t.Errorf("150 -> %d %s", ramp[0].Step, ramp[0].Hex())
	}
	if ramp[1].Step != -100 || ramp[1].Color != Black {
		t.Errorf("-150 -> %d %s", ramp[1].Step, ramp[1].Hex())
	}
}

func TestGenerateEmptySteps(t *testing.T) {
	if got := Generate(MustParse("#4169E1"), nil); len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestGenerateAllKeepsOrder(t *testing.T) {
	colors := sampleColors()
	all := GenerateAll(colors, Tailwind)
	if len(all) != len(colors) {
		t.Fatalf("len = %d, want %d", len(all), len(colors))
	}
	for i, c := range colors {
		want := Hexes(Generate(c, Tailwind))
		got := Hexes(all[i])
		for j := range want {
			if got[j] != want[j] {
				t.Fatalf("color %s step %d: %s != %s", c, j, got[j], want[j])
			}
		}
	}
}

func TestMix(t *testing.T) {
	tests := []struct {
		a, b Color
		t    float64
		want Color
	}{
		{Black, White, 0, Black},
		{Black, White, 1, White},
		{Black, White, 0.5, Color{128, 128, 128}},
		{MustParse("#4169E1"), White, 0.5, MustParse("#A0B4F0")},
		{MustParse("#4169E1"), Black, 0.5, MustParse("#213571")},
		{Black, White, -1, Black},
		{Black, White, 2, White},
	}
	for _, tt := range tests {
		if got := Mix(tt.a, tt.b, tt.t); got != tt.want {
			t.Errorf("Mix(%s, %s, %v) = %s, want %s", tt.a, tt.b, tt.t, got, tt.want)
		}
	}
}
