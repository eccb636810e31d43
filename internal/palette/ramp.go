package palette

import "github.com/colorpalettestudio/tintshade/internal/color"

// Ramp is an entry together with its generated swatches
type Ramp struct {
	Name     string
	Base     color.Color
	Swatches []color.Swatch
}

// Ramps generates the ramp of every entry for the given steps
func (p *Palette) Ramps(steps []color.Step) []Ramp {
	return BuildRamps(p.entries, steps)
}

// BuildRamps generates ramps for an arbitrary entry list
func BuildRamps(entries []Entry, steps []color.Step) []Ramp {
	colors := make([]color.Color, len(entries))
	for i, e := range entries {
		colors[i] = e.Color
	}
	all := color.GenerateAll(colors, steps)

	out := make([]Ramp, len(entries))
	for i, e := range entries {
		out[i] = Ramp{Name: e.DisplayName(), Base: e.Color, Swatches: all[i]}
	}
	return out
}

// sampleInput is the bulk text used for the sample palette
const sampleInput = "#FF6F61, rgb(100, 200, 150), hsl(200, 50%, 50%)\n#3B82F6\nrgb(239, 68, 68)"

// SampleText returns the sample palette in bulk import form
func SampleText() string {
	return sampleInput
}

// Sample returns the colors of the sample palette
func Sample() []color.Color {
	return color.Colors(color.ParseBatch(sampleInput))
}
