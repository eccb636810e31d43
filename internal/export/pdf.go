package export

import (
	"bytes"
	"fmt"
	"image/png"
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/colorpalettestudio/tintshade/internal/palette"
)

// pdfImage names the grid image inside the document
const pdfImage = "palette"

// PDF places the rendered grid on a single page sized to fit it, one point
// per pixel
func PDF(w io.Writer, rows []palette.Ramp, opts PNGOptions) error {
	img := Render(rows, opts)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encoding grid: %w", err)
	}

	size := img.Bounds().Size()
	wd, ht := float64(size.X), float64(size.Y)
	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: wd, Ht: ht},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.SetTitle("Tint & Shade Palette", true)
	doc.SetCreator("tintshade", true)
	doc.AddPage()

	opt := fpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader(pdfImage, opt, &buf)
	doc.ImageOptions(pdfImage, 0, 0, wd, ht, false, opt, 0, "")
	return doc.Output(w)
}
