package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/colorpalettestudio/tintshade/internal/color"
	"github.com/colorpalettestudio/tintshade/internal/config"
	"github.com/colorpalettestudio/tintshade/internal/export"
	"github.com/colorpalettestudio/tintshade/internal/ui"
)

func newExportCmd(opts *globalOptions) *cobra.Command {
	var (
		formats []string
		dir     string
		prefix  string
	)

	cmd := &cobra.Command{
		Use:   "export [colors...]",
		Short: "Write the ramps of a color list to files",
		Long: `Write the ramps of a color list to CSV, JSON, PNG, PDF or plain text files.

Files are named <prefix>.<ext> in the export directory. An existing file is
never overwritten; a numeric suffix is added instead.`,
		Example: `  tintshade export "#4169E1" tomato --format csv --format pdf
  tintshade export --dir ./palettes --prefix brand < colors.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConfig(cmd, opts, func(cfg *config.Config, steps []color.Step) error {
				if prefix == "" {
					prefix = cfg.FilePrefix
				}
				if err := config.ValidatePrefix(prefix); err != nil {
					return fmt.Errorf("--prefix: %w", err)
				}

				var jobs []export.Format
				for _, name := range formats {
					f, err := export.ParseFormat(name)
					if err != nil {
						return err
					}
					jobs = append(jobs, f)
				}

				text, err := readInput(cmd, args)
				if err != nil {
					return err
				}
				rows, err := buildRows(cmd, text, steps)
				if err != nil {
					return err
				}

				if dir == "" {
					dir = cfg.OutputDir()
				}
				runner := export.NewRunner(dir, prefix, color.Logger())

				for _, f := range jobs {
					path, err := runner.Run(export.Job{Format: f, Rows: rows})
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.IconExport, path)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringSliceVarP(&formats, "format", "f", []string{string(export.FormatCSV)}, "file formats: "+export.FormatNames()+" (repeatable)")
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "export directory (default: config export_dir or the working directory)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "file name prefix (default: config file_prefix)")

	return cmd
}
