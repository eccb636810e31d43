package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/colorpalettestudio/tintshade/internal/guide"
)

func newFormatsCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "formats",
		Short: "Show the accepted color formats and step presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if raw {
				_, err := fmt.Fprint(out, guide.Markdown())
				return err
			}

			width, styled := 80, false
			if isTerminal(out) {
				styled = true
				if w, _, err := term.GetSize(int(out.(*os.File).Fd())); err == nil {
					width = w
				}
			}
			text, err := guide.Render(width, styled)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(out, text)
			return err
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print the guide as markdown")

	return cmd
}
