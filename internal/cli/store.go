package cli

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/pval/internal/calc"
	"github.com/roach88/pval/internal/store"
)

// StoredMeasurement is a measurement with its rendered value.
type StoredMeasurement struct {
	store.Measurement
	Text string `json:"text"`
}

// StoreOptions holds flags for the store subcommands.
type StoreOptions struct {
	*EvalOptions
	Note string
	All  bool
}

// NewStoreCommand creates the store command and its subcommands.
func NewStoreCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &StoreOptions{EvalOptions: &EvalOptions{RootOptions: rootOpts}}

	cmd := &cobra.Command{
		Use:   "store",
		Short: "Manage stored measurements",
		Long: `Save named quantities in the SQLite database given by --db.

Stored measurements of the current domain are bound as $name variables
by eval, convert and dim.`,
	}

	put := &cobra.Command{
		Use:   "put <name> <expr>...",
		Short: "Evaluate an expression and store it under a name",
		Example: `  pval store put g 9.80665 m/s^2
  pval store put --note "sprint" v '100 m / 9.58 s'`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStorePut(opts, args[0], strings.Join(args[1:], " "), cmd)
		},
	}
	put.Flags().StringVar(&opts.Note, "note", "", "free-form note kept with the measurement")

	get := &cobra.Command{
		Use:           "get <name>",
		Short:         "Show a stored measurement",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStoreGet(opts, args[0], cmd)
		},
	}

	list := &cobra.Command{
		Use:           "list",
		Short:         "List stored measurements of the current domain",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStoreList(opts, cmd)
		},
	}
	list.Flags().BoolVar(&opts.All, "all", false, "list measurements of every domain")

	rm := &cobra.Command{
		Use:           "rm <name>",
		Short:         "Delete a stored measurement",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStoreRm(opts, args[0], cmd)
		},
	}

	cmd.AddCommand(put, get, list, rm)
	return cmd
}

func (o *StoreOptions) open() (*store.Store, error) {
	if o.Database == "" {
		return nil, fmt.Errorf("no database configured")
	}
	o.logger().Debug("opening database", "path", o.Database)
	return store.Open(o.Database)
}

func runStorePut(opts *StoreOptions, name, input string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	if !store.ValidName(name) {
		return formatter.Fail(ExitFailure, fmt.Errorf("put %q: %w", name, store.ErrInvalidName))
	}

	c, err := opts.prepare(cmd)
	if err != nil {
		return formatter.Fail(ExitCommandError, err)
	}
	res, err := c.Eval(input)
	if err != nil {
		return formatter.Fail(ExitFailure, err)
	}

	st, err := opts.open()
	if err != nil {
		return formatter.Fail(ExitCommandError, err)
	}
	defer st.Close()

	m, err := st.Put(commandContext(cmd), name, res.Record, opts.Note)
	if err != nil {
		return formatter.Fail(ExitFailure, err)
	}
	opts.logger().Debug("measurement stored", "name", m.Name, "seq", m.Seq, "digest", m.Digest)

	out := StoredMeasurement{Measurement: m, Text: res.Text}
	return formatter.Success(out, fmt.Sprintf("$%s = %s", m.Name, out.Text))
}

func runStoreGet(opts *StoreOptions, name string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	st, err := opts.open()
	if err != nil {
		return formatter.Fail(ExitCommandError, err)
	}
	defer st.Close()

	m, err := st.Get(commandContext(cmd), name)
	if err != nil {
		return formatter.Fail(ExitFailure, err)
	}
	out, err := render(m)
	if err != nil {
		return formatter.Fail(ExitFailure, err)
	}

	text := fmt.Sprintf("$%s = %s", out.Name, out.Text)
	if out.Note != "" {
		text += "  # " + out.Note
	}
	if opts.Verbose {
		text += fmt.Sprintf("\ndomain %s, seq %d, digest %s", out.Record.Domain, out.Seq, out.Digest)
	}
	return formatter.Success(out, text)
}

func runStoreList(opts *StoreOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	st, err := opts.open()
	if err != nil {
		return formatter.Fail(ExitCommandError, err)
	}
	defer st.Close()

	domain := opts.domain()
	if opts.All {
		domain = ""
	}
	ms, err := st.List(commandContext(cmd), domain)
	if err != nil {
		return formatter.Fail(ExitCommandError, err)
	}

	out := make([]StoredMeasurement, 0, len(ms))
	for _, m := range ms {
		sm, err := render(m)
		if err != nil {
			return formatter.Fail(ExitFailure, err)
		}
		out = append(out, sm)
	}

	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDOMAIN\tVALUE\tNOTE")
	for _, sm := range out {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", sm.Name, sm.Record.Domain, sm.Text, sm.Note)
	}
	_ = tw.Flush()

	return formatter.Success(out, strings.TrimRight(buf.String(), "\n"))
}

func runStoreRm(opts *StoreOptions, name string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	st, err := opts.open()
	if err != nil {
		return formatter.Fail(ExitCommandError, err)
	}
	defer st.Close()

	if err := st.Delete(commandContext(cmd), name); err != nil {
		return formatter.Fail(ExitFailure, err)
	}
	return formatter.Success(map[string]string{"deleted": name}, fmt.Sprintf("deleted $%s", name))
}

// render formats a measurement in its own domain.
func render(m store.Measurement) (StoredMeasurement, error) {
	c, err := calc.New(m.Record.Domain)
	if err != nil {
		return StoredMeasurement{}, err
	}
	if err := c.BindRecord(m.Name, m.Record); err != nil {
		return StoredMeasurement{}, fmt.Errorf("$%s: %w", m.Name, err)
	}
	res, err := c.Eval("$" + m.Name)
	if err != nil {
		return StoredMeasurement{}, err
	}
	return StoredMeasurement{Measurement: m, Text: res.Text}, nil
}
