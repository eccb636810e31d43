package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/colorpalettestudio/tintshade/internal/color"
	"github.com/colorpalettestudio/tintshade/internal/config"
	"github.com/colorpalettestudio/tintshade/internal/export"
	"github.com/colorpalettestudio/tintshade/internal/tui"
)

// globalOptions are the flags shared by every command
type globalOptions struct {
	configPath string
	logLevel   string
	preset     string
	steps      string
}

func newRootCmd() *cobra.Command {
	var (
		opts        globalOptions
		logFile     string
		writeConfig bool
	)

	cmd := &cobra.Command{
		Use:   "tintshade [colors...]",
		Short: "Generate tint and shade ramps from base colors",
		Long: `tintshade turns base colors into ramps of lighter tints and darker shades.

Colors may be HEX, rgb()/rgba(), hsl()/hsla() or CSS color names. Lists can be
separated by commas or new lines.

Without a subcommand it opens an interactive palette editor, seeded with any
colors given as arguments.`,
		SilenceUsage: true,
		Args:         cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withConfig(cmd, &opts, func(cfg *config.Config, steps []color.Step) error {
				if writeConfig {
					return saveConfig(cmd, &opts, cfg)
				}

				colors, err := parseArgs(args)
				if err != nil {
					return err
				}

				logger, closeLog, err := fileLogger(logFile, cfg.LogLevel)
				if err != nil {
					return err
				}
				defer closeLog()
				color.SetLogger(logger)

				tuiOpts := tui.Options{
					Preset:      cfg.Preset,
					SwatchWidth: cfg.SwatchWidth,
					Colors:      colors,
					Runner:      export.NewRunner(cfg.OutputDir(), cfg.FilePrefix, logger),
					Logger:      logger,
				}
				if len(cfg.Steps) > 0 {
					tuiOpts.Steps = steps
				}

				p := tea.NewProgram(tui.New(tuiOpts), tea.WithAltScreen())
				if _, err := p.Run(); err != nil {
					return fmt.Errorf("running TUI: %w", err)
				}
				return nil
			})
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "config file (default: user config dir/tintshade/config.yaml)")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVarP(&opts.preset, "preset", "p", "", "step preset: "+strings.Join(color.PresetNames(), ", "))
	pf.StringVar(&opts.steps, "steps", "", `custom steps, e.g. "60,30,0,-30,-60"`)

	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file while the editor runs")
	cmd.Flags().BoolVar(&writeConfig, "write-config", false, "save the effective settings to the config file and exit")

	cmd.AddCommand(newRampCmd(&opts))
	cmd.AddCommand(newParseCmd(&opts))
	cmd.AddCommand(newExportCmd(&opts))
	cmd.AddCommand(newFormatsCmd())

	return cmd
}

// withConfig loads the config file, applies flag overrides, installs the
// stderr logger and resolves the step ladder before calling fn
func withConfig(cmd *cobra.Command, opts *globalOptions, fn func(*config.Config, []color.Step) error) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	color.SetLogger(logger)

	steps, err := cfg.StepList()
	if err != nil {
		return err
	}
	return fn(cfg, steps)
}

func loadConfig(opts *globalOptions) (*config.Config, error) {
	store, err := config.NewStore(opts.configPath)
	if err != nil {
		return nil, err
	}
	cfg, err := store.Load()
	if err != nil {
		return nil, err
	}

	// Flags override the file
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.preset != "" {
		cfg.Preset = strings.ToLower(opts.preset)
		cfg.Steps = nil
	}
	if opts.steps != "" {
		steps, err := color.ParseSteps(opts.steps)
		if err != nil {
			return nil, fmt.Errorf("--steps: %w", err)
		}
		cfg.SetSteps(steps)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func saveConfig(cmd *cobra.Command, opts *globalOptions, cfg *config.Config) error {
	store, err := config.NewStore(opts.configPath)
	if err != nil {
		return err
	}
	if err := store.Save(cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", store.Path)
	return nil
}

// fileLogger returns a logger writing to path, or a silent one when path is
// empty. The terminal belongs to the editor while it runs
func fileLogger(path, level string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	lvl, err := config.ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl}))
	return logger, func() { f.Close() }, nil
}

// parseArgs parses every argument as a color list. Any invalid entry fails
// the whole command with every problem listed
func parseArgs(args []string) ([]color.Color, error) {
	if len(args) == 0 {
		return nil, nil
	}
	batch := color.ParseBatch(strings.Join(args, "\n"))
	var bad []string
	for _, p := range batch {
		if !p.Valid() {
			bad = append(bad, p.Err.Error())
		}
	}
	if len(bad) > 0 {
		return nil, fmt.Errorf("%s", strings.Join(bad, "\n"))
	}
	return color.Colors(batch), nil
}

// readInput returns the arguments joined as one list, or stdin when there
// are no arguments and stdin is not a terminal
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, "\n"), nil
	}
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", fmt.Errorf("no colors given: pass them as arguments or pipe them on stdin")
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

// isTerminal reports whether w is an interactive terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
