package color

import (
	"log/slog"
	"math"
	"runtime"
	"sort"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

// ChromaFactor scales chroma on every non-base step so tints and shades stay
// slightly less saturated than the base. Empirical, tuned by eye
const ChromaFactor = 0.9

// gamutTolerance is half an 8-bit step: any channel within it still rounds
// to a valid value
const gamutTolerance = 0.5 / 255

// Swatch is one step applied to one color
type Swatch struct {
	Step  Step
	Label string
	Color Color
}

// Hex returns the swatch color as "#RRGGBB"
func (s Swatch) Hex() string { return s.Color.Hex() }

// Generate derives one swatch per step, in step order
//
// Each step prefers an OKLCH lightness shift with hue kept and chroma
// scaled by ChromaFactor. When that result falls outside sRGB the step is
// mixed linearly toward white (tint) or black (shade) instead. Tints and
// shades must get monotonically lighter or darker with the step size; where
// a perceptual result would break that order it is swapped for its linear
// mix, keeping as many perceptual results as the order allows
// Generate never fails and always returns len(steps) swatches
func Generate(base Color, steps []Step) []Swatch {
	out := make([]Swatch, len(steps))
	l, c, h := base.OkLch()
	degenerate := !finite(l) || !finite(c) || !finite(h)
	if degenerate {
		Logger().Debug("color: oklch conversion failed, using linear mix",
			slog.String("base", base.Hex()))
	}

	for i, s := range steps {
		s = s.Clamp()
		out[i] = Swatch{Step: s, Label: s.Label(), Color: base}
		if s != 0 {
			out[i].Color = mixStep(base, s)
		}
	}

	if !degenerate {
		resolveSide(base, out, l, c, h, 1)
		resolveSide(base, out, l, c, h, -1)
	}
	return out
}

// GenerateAll computes the ramps of several colors concurrently. The result
// has the same order as colors
func GenerateAll(colors []Color, steps []Step) [][]Swatch {
	out := make([][]Swatch, len(colors))
	sem := make(chan struct{}, runtime.GOMAXPROCS(0))
	var wg sync.WaitGroup
	for i, c := range colors {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, c Color) {
			defer wg.Done()
			defer func() { <-sem }()
			out[i] = Generate(c, steps)
		}(i, c)
	}
	wg.Wait()
	return out
}

// Hexes returns the hex codes of a ramp
func Hexes(ramp []Swatch) []string {
	out := make([]string, len(ramp))
	for i, s := range ramp {
		out[i] = s.Color.Hex()
	}
	return out
}

// shiftLightness applies the perceptual step. ok is false when the result
// is not representable in sRGB
func shiftLightness(l, c, h float64, s Step) (Color, bool) {
	f := s.Fraction()
	if s > 0 {
		l = math.Min(1, l+f)
	} else {
		l = math.Max(0, l-f)
	}
	c = math.Max(0, c*ChromaFactor)

	out := colorful.OkLch(l, c, h)
	if !inGamut(out) {
		return Color{}, false
	}
	return FromColorful(out.Clamped()), true
}

func inGamut(c colorful.Color) bool {
	for _, v := range [...]float64{c.R, c.G, c.B} {
		if !finite(v) || v < -gamutTolerance || v > 1+gamutTolerance {
			return false
		}
	}
	return true
}

// mixStep interpolates each channel toward white or black by |s|/100
func mixStep(base Color, s Step) Color {
	target := White
	if s < 0 {
		target = Black
	}
	return Mix(base, target, s.Fraction())
}

// Mix linearly interpolates the sRGB channels of a toward b by t in [0,1],
// rounding to the nearest channel value
func Mix(a, b Color, t float64) Color {
	t = math.Max(0, math.Min(1, t))
	lerp := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return Color{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B)}
}

// candidate is one possible color for a step
type candidate struct {
	color      Color
	lightness  float64
	perceptual bool
}

// resolveSide picks the colors of the tints (dir 1) or shades (dir -1) of a
// ramp. Walking the side in order of step size, each step may take its
// linear mix or, when in gamut, its perceptual color. The choice keeps the
// most perceptual colors such that lightness never moves against dir. The
// all-mix choice is always monotonic, so a solution exists
func resolveSide(base Color, ramp []Swatch, l, c, h float64, dir int) {
	var idx []int
	for i, s := range ramp {
		if int(s.Step)*dir > 0 {
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 {
		return
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return ramp[idx[a]].Step.Fraction() < ramp[idx[b]].Step.Fraction()
	})

	cands := make([][]candidate, len(idx))
	inGamutSteps := 0
	for k, i := range idx {
		s := ramp[i].Step
		m := mixStep(base, s)
		cands[k] = []candidate{{color: m, lightness: m.Lightness()}}
		if p, ok := shiftLightness(l, c, h, s); ok {
			cands[k] = append(cands[k], candidate{color: p, lightness: p.Lightness(), perceptual: true})
			inGamutSteps++
		} else {
			Logger().Debug("color: step out of gamut, using linear mix",
				slog.String("base", base.Hex()), slog.Int("step", int(s)))
		}
	}

	const eps = 1e-9
	follows := func(cur, prev float64) bool {
		return (cur-prev)*float64(dir) >= -eps
	}

	// best[k][j]: most perceptual colors among steps 0..k when step k takes
	// cands[k][j], or -1 if no monotonic choice ends there
	type cell struct{ score, prev int }
	best := make([][]cell, len(cands))
	baseL := base.Lightness()
	for k, cs := range cands {
		best[k] = make([]cell, len(cs))
		for j, cand := range cs {
			gain := 0
			if cand.perceptual {
				gain = 1
			}
			cur := cell{score: -1, prev: -1}
			if k == 0 {
				if follows(cand.lightness, baseL) {
					cur.score = gain
				}
			} else {
				for i, p := range cands[k-1] {
					if best[k-1][i].score < 0 || !follows(cand.lightness, p.lightness) {
						continue
					}
					if sc := best[k-1][i].score + gain; sc > cur.score {
						cur = cell{score: sc, prev: i}
					}
				}
			}
			best[k][j] = cur
		}
	}

	last := len(cands) - 1
	j := 0
	for i := range best[last] {
		if best[last][i].score > best[last][j].score {
			j = i
		}
	}
	if best[last][j].score < 0 {
		// unreachable with exact arithmetic; keep the mixes already in place
		return
	}

	kept := 0
	for k := last; k >= 0; k-- {
		chosen := cands[k][j]
		ramp[idx[k]].Color = chosen.color
		if chosen.perceptual {
			kept++
		}
		j = best[k][j].prev
	}
	if dropped := inGamutSteps - kept; dropped > 0 {
		Logger().Debug("color: perceptual steps replaced to keep lightness monotonic",
			slog.String("base", base.Hex()), slog.Int("direction", dir), slog.Int("replaced", dropped))
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
