// Package color parses user supplied color text and derives tint and shade
// ramps from it
package color

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an opaque sRGB color with 8-bit channels. It is the canonical
// value every parser result and ramp swatch is expressed in
type Color struct {
	R, G, B uint8
}

// Common colors
var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// Hex returns the color as an uppercase "#RRGGBB" string
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// String implements fmt.Stringer
func (c Color) String() string {
	return c.Hex()
}

// RGBString returns the color in rgb() notation, e.g. "rgb(65, 105, 225)"
func (c Color) RGBString() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// HSLString returns the color in hsl() notation with whole-number components
func (c Color) HSLString() string {
	h, s, l := c.Colorful().Hsl()
	if math.IsNaN(h) {
		h = 0
	}
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", int(math.Round(h))%360, int(math.Round(s*100)), int(math.Round(l*100)))
}

// RGBA implements image/color.Color. The color is always fully opaque
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	return r, g, b, 0xffff
}

// Colorful converts to the floating point representation used for color
// space math
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// FromColorful clamps a floating point color into gamut and rounds each
// channel to the nearest 8-bit value. NaN channels become 0
func FromColorful(c colorful.Color) Color {
	return Color{R: channel(c.R), G: channel(c.G), B: channel(c.B)}
}

// OkLch returns the perceptual lightness [0,1], chroma (>= 0) and hue in
// degrees [0,360)
func (c Color) OkLch() (l, chroma, hue float64) {
	return c.Colorful().OkLch()
}

// Lightness returns the OKLCH lightness of c
func (c Color) Lightness() float64 {
	l, _, _ := c.OkLch()
	return l
}

// lightThreshold is the OKLCH lightness above which dark text reads better
const lightThreshold = 0.62

// IsLight reports whether dark text should be drawn on c
func (c Color) IsLight() bool {
	return c.Lightness() > lightThreshold
}

// MustParse is like Parse but panics on invalid input. Intended for
// constants and tests
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func channel(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}
