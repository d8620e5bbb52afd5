package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/pval/internal/dimension"
)

// DimResult is the dimension of an expression.
type DimResult struct {
	Input     string                  `json:"input"`
	Exponents [dimension.Count]string `json:"exponents"`
	Units     string                  `json:"units"`
	Named     map[string]string       `json:"named"`
}

// NewDimCommand creates the dim command.
func NewDimCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvalOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "dim <expr>...",
		Short: "Show the dimension of an expression",
		Long: `Evaluate an expression and print its dimension: the base-unit
expression and the exponent of each base dimension, in the order
length mass time charge temperature luminosity amount.

Example:
  pval dim N m
  pval --domain rat dim 'm^(1/2)'`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDim(opts, strings.Join(args, " "), cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.NoStore, "no-store", false, "do not bind stored measurements")

	return cmd
}

func runDim(opts *EvalOptions, input string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	c, err := opts.prepare(cmd)
	if err != nil {
		return formatter.Fail(ExitCommandError, err)
	}

	res, err := c.Eval(input)
	if err != nil {
		return formatter.Fail(ExitFailure, err)
	}

	out := DimResult{
		Input:     input,
		Exponents: res.Record.Dimension,
		Units:     res.Units,
		Named:     map[string]string{},
	}
	for i, b := range dimension.Bases() {
		if e := out.Exponents[i]; e != "0" {
			out.Named[b.Name()] = e
		}
	}

	text := fmt.Sprintf("%s [%s]", out.Units, strings.Join(out.Exponents[:], " "))
	return formatter.Success(out, text)
}
