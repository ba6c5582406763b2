package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/escaperoute/internal/config"
	"github.com/katalvlaran/escaperoute/internal/output"
)

// debugEnv enables debug logging when set to any non-empty value.
const debugEnv = "ESCAPE_DEBUG"

// app carries the state shared by every subcommand: flags, the loaded
// configuration and the logger and printer built from them.
type app struct {
	stdout, stderr io.Writer

	configPath string
	outputFlag string
	noColor    bool
	verbose    bool

	cfg     *config.Config
	logger  *slog.Logger
	printer *output.Printer
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "escape",
		Short: "Escape-route planner and absorbing-chain calculator",
		Long: `escape reads small scenario files (YAML, JSON or JSONC) and answers two questions:

  plan    which targets can be rescued before the time limit runs out
  absorb  where an absorbing Markov chain started in state 0 ends up

Examples:
  # rescue plan with the full walk
  escape plan refund.yaml --route

  # override the time limit, print JSON
  escape plan unit.jsonc --time-limit 5 --output json

  # absorption probabilities
  escape absorb fuel.yml`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default $"+config.EnvVar+")")
	flags.StringVarP(&a.outputFlag, "output", "o", "", "output format: text, json, yaml or cbor")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colored output")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging on stderr")

	root.AddCommand(a.planCmd(), a.absorbCmd(), a.versionCmd())

	return root
}

// setup loads the configuration, applies flag overrides and builds the
// logger and printer.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = a.outputFlag
	}
	if a.noColor {
		cfg.Color = false
	}
	if a.verbose || os.Getenv(debugEnv) != "" {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	format, err := output.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cfg.LogLevel == "debug" {
		level = slog.LevelDebug
	}
	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
	a.printer = output.New(a.stdout, format, cfg.Color)
	a.logger.Debug("configuration loaded",
		"config", a.configPath, "output", cfg.Output, "color", cfg.Color, "route", cfg.Route)

	return nil
}

// errorPrinter prints to stderr in text mode; it works even when setup
// failed before the configuration was known.
func (a *app) errorPrinter() *output.Printer {
	colored := !a.noColor
	if a.cfg != nil {
		colored = a.cfg.Color
	}

	return output.New(a.stderr, output.Text, colored)
}
