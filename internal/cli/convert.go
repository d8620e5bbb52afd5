package cli

import (
	"github.com/spf13/cobra"
)

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvalOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "convert <expr> <unit>",
		Short: "Express a quantity in another unit",
		Long: `Evaluate an expression and express it as a multiple of a unit.

The unit is itself an expression and must have the same dimension.

Examples:
  pval convert '100 m / 9.58 s' km/h
  pval --domain rat convert '1 mi' ft`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().StringArrayVar(&opts.Vars, "var", nil, "bind a variable, name=expr; repeatable")
	cmd.Flags().BoolVar(&opts.NoStore, "no-store", false, "do not bind stored measurements")

	return cmd
}

func runConvert(opts *EvalOptions, input, unit string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	c, err := opts.prepare(cmd)
	if err != nil {
		return formatter.Fail(ExitCommandError, err)
	}

	conv, err := c.Convert(input, unit)
	if err != nil {
		return formatter.Fail(ExitFailure, err)
	}
	return formatter.Success(conv, conv.Text)
}
