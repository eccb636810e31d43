package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/colorpalettestudio/tintshade/internal/color"
	"github.com/colorpalettestudio/tintshade/internal/config"
	"github.com/colorpalettestudio/tintshade/internal/ui"
)

func newParseCmd(opts *globalOptions) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "parse [colors...]",
		Short: "Check a color list and print the normalized HEX of each entry",
		Long: `Check a color list and print the normalized HEX of each entry.

Entries are separated by commas or new lines. Each line of output shows
whether the entry parsed, its HEX code and the text it came from.`,
		Example: `  tintshade parse "#abc, rgb(255 0 0), hsl(200, 50%, 50%)"
  tintshade parse --strict < colors.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConfig(cmd, opts, func(*config.Config, []color.Step) error {
				text, err := readInput(cmd, args)
				if err != nil {
					return err
				}

				batch := color.ParseBatch(text)
				out := cmd.OutOrStdout()
				for _, p := range batch {
					if p.Valid() {
						fmt.Fprintf(out, "%s %s  %s\n", ui.IconValid, p.Color.Hex(), p.Original)
					} else {
						fmt.Fprintf(out, "%s %-7s  %v\n", ui.IconInvalid, "", p.Err)
					}
				}

				valid, invalid := color.Summary(batch)
				fmt.Fprintf(out, "%d valid, %d invalid\n", valid, invalid)
				if strict && invalid > 0 {
					return fmt.Errorf("%d invalid color(s)", invalid)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error when any entry is invalid")

	return cmd
}
