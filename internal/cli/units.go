package cli

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/pval/internal/calc")

// NewUnitsCommand creates the units command.
func NewUnitsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "units [symbol]...",
		Short: "List defined units",
		Long: `List the built-in units plus those loaded with --units or the
config file, with their scale in base units.

With arguments, only the named units are shown. Prefixed forms such as
km resolve to their root unit.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnits(rootOpts, args, cmd)
		},
	}

	return cmd
}

func runUnits(opts *RootOptions, symbols []string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	c, err := opts.newCalculator()
	if err != nil {
		return formatter.Fail(ExitCommandError, err)
	}

	infos := c.Units()
	if len(symbols) > 0 {
		infos, err = selectUnits(c, infos, symbols)
		if err != nil {
			return formatter.Fail(ExitFailure, err)
		}
	}

	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SYMBOL\tSCALE\tUNITS\tPREFIX")
	for _, u := range infos {
		prefix := ""
		if u.Prefixable {
			prefix = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", u.Symbol, u.Scale, u.Units, prefix)
	}
	_ = tw.Flush()

	return formatter.Success(infos, strings.TrimRight(buf.String(), "\n"))
}

// selectUnits returns the entries named by symbols. Other symbols, such as
// prefixed forms, are evaluated and report their own scale.
func selectUnits(c calc.Calculator, all []calc.UnitInfo, symbols []string) ([]calc.UnitInfo, error) {
	bySymbol := make(map[string]calc.UnitInfo, len(all))
	for _, u := range all {
		bySymbol[u.Symbol] = u
	}

	out := make([]calc.UnitInfo, 0, len(symbols))
	for _, s := range symbols {
		if u, ok := bySymbol[s]; ok {
			out = append(out, u)
			continue
		}
		res, err := c.Eval(s)
		if err != nil {
			return nil, err
		}
		out = append(out, calc.UnitInfo{Symbol: s, Scale: res.Record.Magnitude, Units: res.Units})
	}
	return out, nil
}
