package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/pval/internal/calc"
	"github.com/roach88/pval/internal/config"
)

// RootOptions holds global flags for all commands. After the root command's
// pre-run they hold the effective settings: flags over config files over
// defaults.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string
	Domain     string
	Database   string
	Units      []string

	Logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = config.Formats

// NewRootCommand creates the root command for the pval CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand()
}

func newRootCommand(loaderOpts ...config.LoaderOption) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "pval",
		Short: "pval - physical values with dimensions",
		Long: `Evaluate and convert quantities with dimensions.

Expressions combine numbers, units and stored measurements:
  pval eval '9.81 m/s^2 * 3 s'
  pval convert '100 m / 9.58 s' km/h
  pval --domain rat eval '1 ft + 1 in'`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.setupLogging(cmd.ErrOrStderr())
			if err := opts.applyConfig(cmd, loaderOpts...); err != nil {
				_ = opts.formatter(cmd).Error(CodeConfig, err.Error(), nil)
				return WrapExitError(ExitCommandError, CodeConfig, err)
			}
			if !isValidFormat(opts.Format) {
				msg := fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
				_ = opts.formatter(cmd).Error(CodeConfig, msg, nil)
				return NewExitError(ExitCommandError, msg)
			}
			return nil
		},
	}

	// Global flags
	pf := cmd.PersistentFlags()
	pf.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	pf.StringVar(&opts.Format, "format", "text", "output format (json|text)")
	pf.StringVar(&opts.ConfigPath, "config", "", "config file (default: pval.yaml, then ~/.config/pval/config.yaml)")
	pf.StringVar(&opts.Domain, "domain", "float", "number domain (float|rat|decimal)")
	pf.StringVar(&opts.Database, "db", "pval.db", "SQLite database of stored measurements")
	pf.StringArrayVar(&opts.Units, "units", nil, "unit definition file (.yaml, .yml, .cue); repeatable")

	cmd.AddCommand(NewEvalCommand(opts))
	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewDimCommand(opts))
	cmd.AddCommand(NewUnitsCommand(opts))
	cmd.AddCommand(NewStoreCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))

	return cmd
}

// setupLogging installs a text handler on w, at Debug level when verbose.
func (o *RootOptions) setupLogging(w io.Writer) {
	level := slog.LevelWarn
	if o.Verbose {
		level = slog.LevelDebug
	}
	o.Logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(o.Logger)
}

// applyConfig loads the config files and fills every setting whose flag was
// not given on the command line.
func (o *RootOptions) applyConfig(cmd *cobra.Command, loaderOpts ...config.LoaderOption) error {
	cfg, err := config.NewLoader(o.logger(), loaderOpts...).Load(o.ConfigPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("format") {
		o.Format = cfg.Format
	}
	if !flags.Changed("domain") {
		o.Domain = cfg.Domain
	}
	if !flags.Changed("db") {
		o.Database = cfg.Database
	}
	o.Units = append(slices.Clone(cfg.Units), o.Units...)
	return nil
}

func (o *RootOptions) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

func (o *RootOptions) domain() string {
	if o.Domain == "" {
		return config.DefaultConfig().Domain
	}
	return o.Domain
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   o.Verbose,
	}
}

// newCalculator builds a Calculator for the configured domain and unit files.
func (o *RootOptions) newCalculator() (calc.Calculator, error) {
	c, err := calc.New(o.domain(), calc.WithLogger(o.logger()), calc.WithUnitFiles(o.Units...))
	if err != nil {
		return nil, err
	}
	o.logger().Debug("calculator ready", "domain", c.Domain(), "unit_files", len(o.Units))
	return c, nil
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
