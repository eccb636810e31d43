package export

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/colorpalettestudio/tintshade/internal/color"
	"github.com/colorpalettestudio/tintshade/internal/palette"
)

// PNGOptions controls the grid geometry in pixels
type PNGOptions struct {
	CellWidth    int
	CellHeight   int
	NameWidth    int
	HeaderHeight int
	Padding      int
}

// DefaultPNGOptions returns a layout sized for basicfont's 7x13 glyphs
func DefaultPNGOptions() PNGOptions {
	return PNGOptions{
		CellWidth:    84,
		CellHeight:   56,
		NameWidth:    140,
		HeaderHeight: 24,
		Padding:      16,
	}
}

var (
	textInk  = color.Color{R: 0x33, G: 0x33, B: 0x33}
	mutedInk = color.Color{R: 0x77, G: 0x77, B: 0x77}
)

// InkFor returns black or white, whichever reads better on bg
func InkFor(bg color.Color) color.Color {
	if bg.IsLight() {
		return color.Black
	}
	return color.White
}

// GridSize returns the image bounds for rows rendered with opts
func GridSize(rows []palette.Ramp, opts PNGOptions) image.Rectangle {
	cols := 0
	for _, r := range rows {
		cols = max(cols, len(r.Swatches))
	}
	w := 2*opts.Padding + opts.NameWidth + cols*opts.CellWidth
	h := 2*opts.Padding + opts.HeaderHeight + len(rows)*opts.CellHeight
	return image.Rect(0, 0, w, h)
}

// Render draws the palette grid: a header of step labels, then one row per
// ramp with its name and a cell per swatch labelled with its hex code
func Render(rows []palette.Ramp, opts PNGOptions) *image.RGBA {
	img := image.NewRGBA(GridSize(rows, opts))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	top := opts.Padding
	left := opts.Padding + opts.NameWidth

	if len(rows) > 0 {
		for i, s := range rows[0].Swatches {
			x := left + i*opts.CellWidth
			// basicfont has no U+2212 glyph
			label := strings.ReplaceAll(s.Label, color.MinusSign, "-")
			drawCentered(img, face, label, mutedInk, x, opts.CellWidth, top+opts.HeaderHeight-8)
		}
	}
	top += opts.HeaderHeight

	for r, row := range rows {
		y := top + r*opts.CellHeight
		name := fitText(face, row.Name, opts.NameWidth-8)
		drawText(img, face, name, textInk, opts.Padding, y+opts.CellHeight/2-2)
		drawText(img, face, row.Base.Hex(), mutedInk, opts.Padding, y+opts.CellHeight/2+12)

		for i, s := range row.Swatches {
			x := left + i*opts.CellWidth
			cell := image.Rect(x+2, y+2, x+opts.CellWidth-2, y+opts.CellHeight-2)
			draw.Draw(img, cell, image.NewUniform(s.Color), image.Point{}, draw.Src)
			drawCentered(img, face, s.Hex(), InkFor(s.Color), x, opts.CellWidth, y+opts.CellHeight-10)
		}
	}
	return img
}

// PNG encodes the rendered grid
func PNG(w io.Writer, rows []palette.Ramp, opts PNGOptions) error {
	return png.Encode(w, Render(rows, opts))
}

func drawText(dst draw.Image, face font.Face, s string, ink color.Color, x, baseline int) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(ink),
		Face: face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(s)
}

func drawCentered(dst draw.Image, face font.Face, s string, ink color.Color, x, width, baseline int) {
	w := font.MeasureString(face, s).Ceil()
	drawText(dst, face, s, ink, x+(width-w)/2, baseline)
}

// fitText truncates s with "..." so it renders within width pixels
func fitText(face font.Face, s string, width int) string {
	if font.MeasureString(face, s).Ceil() <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		t := string(runes) + "..."
		if font.MeasureString(face, t).Ceil() <= width {
			return t
		}
	}
	return ""
}
