package color

import (
	"image/color"
	"testing"
)

var _ color.Color = Color{}

func TestColorFormats(t *testing.T) {
	c := MustParse("#4169E1")
	if got := c.RGBString(); got != "rgb(65, 105, 225)" {
		t.Errorf("RGBString = %q", got)
	}
	if got := c.String(); got != "#4169E1" {
		t.Errorf("String = %q", got)
	}
	if got := MustParse("#FF0000").HSLString(); got != "hsl(0, 100%, 50%)" {
		t.Errorf("HSLString red = %q", got)
	}
	if got := MustParse("#808080").HSLString(); got != "hsl(0, 0%, 50%)" {
		t.Errorf("HSLString gray = %q", got)
	}
}

func TestRGBA(t *testing.T) {
	r, g, b, a := Color{R: 255, G: 128, B: 0}.RGBA()
	if r != 0xffff || g != 0x8080 || b != 0 || a != 0xffff {
		t.Errorf("RGBA = %x %x %x %x", r, g, b, a)
	}
}

func TestColorfulRoundTrip(t *testing.T) {
	for _, c := range sampleColors() {
		if got := FromColorful(c.Colorful()); got != c {
			t.Errorf("FromColorful(%s.Colorful()) = %s", c, got)
		}
	}
}

func TestLightnessOrdering(t *testing.T) {
	if l := Black.Lightness(); l > 1e-6 {
		t.Errorf("black L = %v", l)
	}
	if l := White.Lightness(); l < 0.999 || l > 1.001 {
		t.Errorf("white L = %v", l)
	}
	if !(Black.Lightness() < MustParse("#808080").Lightness() && MustParse("#808080").Lightness() < White.Lightness()) {
		t.Error("gray is not between black and white")
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse did not panic")
		}
	}()
	MustParse("nope")
}
