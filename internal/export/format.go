// Package export renders generated ramps as text, CSV, JSON, PNG and PDF and
// writes them to files or the clipboard
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/colorpalettestudio/tintshade/internal/color"
	"github.com/colorpalettestudio/tintshade/internal/palette"
)

// Format identifies an export file type
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatPNG  Format = "png"
	FormatPDF  Format = "pdf"
	FormatText Format = "txt"
)

// Formats lists every supported export format
var Formats = []Format{FormatCSV, FormatJSON, FormatPNG, FormatPDF, FormatText}

// FormatNames returns Formats as a comma separated list
func FormatNames() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// ParseFormat resolves a format name, accepting "text" for txt
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	if f == "text" {
		return FormatText, nil
	}
	if slices.Contains(Formats, f) {
		return f, nil
	}
	return "", fmt.Errorf("unknown export format %q (want one of %s)", name, FormatNames())
}

// Separator joins hex codes in text output
type Separator string

const (
	Comma Separator = ", "
	Lines Separator = "\n"
)

// Text joins the hex codes of every swatch of every ramp
func Text(rows []palette.Ramp, sep Separator) string {
	var codes []string
	for _, r := range rows {
		codes = append(codes, color.Hexes(r.Swatches)...)
	}
	return strings.Join(codes, string(sep))
}

// RowText returns one ramp as a comma separated hex list
func RowText(ramp []color.Swatch) string {
	return strings.Join(color.Hexes(ramp), string(Comma))
}

// CSVHeader is the first record of every CSV export
var CSVHeader = []string{"Color Name", "Base Color", "Step", "HEX"}

// CSV writes one record per swatch
func CSV(w io.Writer, rows []palette.Ramp) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, r := range rows {
		for _, s := range r.Swatches {
			if err := cw.Write([]string{r.Name, r.Base.Hex(), s.Label, s.Hex()}); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

type jsonSwatch struct {
	Step  int    `json:"step"`
	Label string `json:"label"`
	Hex   string `json:"hex"`
}

type jsonRamp struct {
	Name     string       `json:"name"`
	Base     string       `json:"base"`
	Swatches []jsonSwatch `json:"swatches"`
}

// JSON writes the ramps as an indented array
func JSON(w io.Writer, rows []palette.Ramp) error {
	out := make([]jsonRamp, len(rows))
	for i, r := range rows {
		jr := jsonRamp{Name: r.Name, Base: r.Base.Hex(), Swatches: make([]jsonSwatch, len(r.Swatches))}
		for j, s := range r.Swatches {
			jr.Swatches[j] = jsonSwatch{Step: int(s.Step), Label: s.Label, Hex: s.Hex()}
		}
		out[i] = jr
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// Write renders rows in format f
func Write(w io.Writer, f Format, rows []palette.Ramp) error {
	switch f {
	case FormatCSV:
		return CSV(w, rows)
	case FormatJSON:
		return JSON(w, rows)
	case FormatPNG:
		return PNG(w, rows, DefaultPNGOptions())
	case FormatPDF:
		return PDF(w, rows, DefaultPNGOptions())
	case FormatText:
		_, err := io.WriteString(w, Text(rows, Lines)+"\n")
		return err
	}
	return fmt.Errorf("unknown export format %q", f)
}
