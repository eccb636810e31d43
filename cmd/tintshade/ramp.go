package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/colorpalettestudio/tintshade/internal/color"
	"github.com/colorpalettestudio/tintshade/internal/config"
	"github.com/colorpalettestudio/tintshade/internal/export"
	"github.com/colorpalettestudio/tintshade/internal/palette"
	"github.com/colorpalettestudio/tintshade/internal/ui"
)

// Output formats of the ramp command
const (
	outputTable = "table"
	outputHex   = "hex"
	outputCSV   = "csv"
	outputJSON  = "json"
)

func newRampCmd(opts *globalOptions) *cobra.Command {
	var (
		format   string
		copyRows bool
		noColor  bool
	)

	cmd := &cobra.Command{
		Use:   "ramp [colors...]",
		Short: "Print the tint and shade ramp of each color",
		Long: `Print the tint and shade ramp of each color.

Colors are read from the arguments, or from stdin when none are given.
Invalid entries are reported on stderr and skipped.`,
		Example: `  tintshade ramp "#4169E1" --steps 50,0,-50
  tintshade ramp tomato "rgb(59, 130, 246)" --format csv
  pbpaste | tintshade ramp --preset decimal --format hex`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConfig(cmd, opts, func(cfg *config.Config, steps []color.Step) error {
				text, err := readInput(cmd, args)
				if err != nil {
					return err
				}
				rows, err := buildRows(cmd, text, steps)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				switch strings.ToLower(format) {
				case outputTable, "text":
					if !noColor && isTerminal(out) {
						writeSwatches(out, rows, steps, cfg.SwatchWidth)
					} else {
						writeTable(out, rows, steps, presetTitle(cfg))
					}
				case outputHex:
					fmt.Fprintln(out, export.Text(rows, export.Lines))
				case outputCSV:
					err = export.CSV(out, rows)
				case outputJSON:
					err = export.JSON(out, rows)
				default:
					return fmt.Errorf("unknown format %q (want table, hex, csv or json)", format)
				}
				if err != nil {
					return err
				}

				if copyRows {
					if err := export.Copy(export.Text(rows, export.Comma)); err != nil {
						return fmt.Errorf("copying to clipboard: %w", err)
					}
					fmt.Fprintln(cmd.ErrOrStderr(), ui.IconCopy+" Copied to clipboard")
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", outputTable, "output format: table, hex, csv, json")
	cmd.Flags().BoolVarP(&copyRows, "copy", "c", false, "also copy every hex code to the clipboard")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "never render colored swatches")

	return cmd
}

// buildRows parses text and generates ramps for the valid colors. Invalid
// entries are reported on stderr; having no valid color at all is an error
func buildRows(cmd *cobra.Command, text string, steps []color.Step) ([]palette.Ramp, error) {
	batch := color.ParseBatch(text)
	for _, p := range batch {
		if !p.Valid() {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n", ui.IconInvalid, p.Err)
		}
	}
	colors := color.Colors(batch)
	if len(colors) == 0 {
		return nil, palette.ErrNoColors
	}
	return palette.FromColors(colors).Ramps(steps), nil
}

func presetTitle(cfg *config.Config) string {
	if len(cfg.Steps) > 0 {
		return "Custom"
	}
	return cases.Title(language.English).String(cfg.Preset)
}

// writeTable prints one bordered table per ramp with plain text cells
func writeTable(w io.Writer, rows []palette.Ramp, steps []color.Step, title string) {
	for i, r := range rows {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s  %s  (%s: %s)\n", r.Name, r.Base.Hex(), title, color.FormatSteps(steps))

		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("Step", "HEX", "RGB", "HSL")
		for _, s := range r.Swatches {
			t.Row(s.Label, s.Hex(), s.Color.RGBString(), s.Color.HSLString())
		}
		fmt.Fprintln(w, t.Render())
	}
}

// writeSwatches prints each ramp as a row of colored cells
func writeSwatches(w io.Writer, rows []palette.Ramp, steps []color.Step, width int) {
	nameStyle := lipgloss.NewStyle().Foreground(ui.ColorPrimary).Bold(true)
	fmt.Fprintln(w, ui.StepHeader(steps, width))
	for _, r := range rows {
		fmt.Fprintln(w, nameStyle.Render(r.Name)+"  "+ui.Chip(r.Base)+" "+r.Base.Hex())
		fmt.Fprintln(w, ui.RampRow(r.Swatches, width))
	}
}
