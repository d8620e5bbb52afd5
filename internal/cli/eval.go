package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/pval/internal/calc"
	"github.com/roach88/pval/internal/store"
)

// EvalOptions holds flags for the eval command.
type EvalOptions struct {
	*RootOptions
	Vars    []string // name=expr bindings
	NoStore bool     // skip binding stored measurements
}

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EvalOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "eval <expr>...",
		Short: "Evaluate a quantity expression",
		Long: `Evaluate a quantity expression and print it in base units.

Arguments are joined with spaces. Stored measurements are available as
$name variables when the database exists.

Examples:
  pval eval 9.81 m/s^2 '*' 3 s
  pval eval --var g='9.81 m/s^2' '$g * 2 s'
  pval --domain rat --format json eval '(1/3) m'`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(opts, strings.Join(args, " "), cmd)
		},
	}

	cmd.Flags().StringArrayVar(&opts.Vars, "var", nil, "bind a variable, name=expr; repeatable")
	cmd.Flags().BoolVar(&opts.NoStore, "no-store", false, "do not bind stored measurements")

	return cmd
}

func runEval(opts *EvalOptions, input string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	c, err := opts.prepare(cmd)
	if err != nil {
		return formatter.Fail(ExitCommandError, err)
	}

	res, err := c.Eval(input)
	if err != nil {
		return formatter.Fail(ExitFailure, err)
	}

	text := res.Text
	if opts.Verbose {
		text = fmt.Sprintf("%s\n%s\ndigest %s", res.Text, res.Describe, res.Digest)
	}
	return formatter.Success(res, text)
}

// prepare builds the calculator and binds stored measurements and --var
// bindings, in that order.
func (o *EvalOptions) prepare(cmd *cobra.Command) (calc.Calculator, error) {
	c, err := o.newCalculator()
	if err != nil {
		return nil, err
	}

	if !o.NoStore {
		if err := o.bindStore(cmd, c); err != nil {
			return nil, err
		}
	}

	for _, v := range o.Vars {
		name, input, ok := strings.Cut(v, "=")
		if !ok {
			return nil, fmt.Errorf("--var %q: want name=expr", v)
		}
		if _, err := c.Bind(strings.TrimSpace(name), input); err != nil {
			return nil, fmt.Errorf("--var %s: %w", name, err)
		}
	}
	return c, nil
}

// bindStore binds the measurements stored in the database, if it exists.
func (o *RootOptions) bindStore(cmd *cobra.Command, c calc.Calculator) error {
	if o.Database == "" {
		return nil
	}
	if _, err := os.Stat(o.Database); errors.Is(err, fs.ErrNotExist) {
		o.logger().Debug("no database, skipping stored measurements", "path", o.Database)
		return nil
	}

	st, err := store.Open(o.Database)
	if err != nil {
		return err
	}
	defer st.Close()

	n, err := calc.BindStore(commandContext(cmd), c, st)
	if err != nil {
		return err
	}
	o.logger().Debug("bound stored measurements", "count", n, "domain", c.Domain())
	return nil
}
