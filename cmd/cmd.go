package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/dtromb/automata"
	"github.com/dtromb/automata/catalog"
	"github.com/dtromb/automata/envconfig"
	"github.com/dtromb/automata/logutil"
	"github.com/dtromb/automata/repl"
)

func ListHandler(cmd *cobra.Command, args []string) error {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"NAME", "KIND", "STATES", "DESCRIPTION"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.SetAutoWrapText(false)

	for _, name := range catalog.Names() {
		e, err := catalog.Lookup(name)
		if err != nil {
			return err
		}
		states := "-"
		// converted entries are built on demand
		if e.Kind != catalog.KindConverted {
			a, err := e.Build()
			if err != nil {
				return err
			}
			states = fmt.Sprint(a.NumStates())
		}
		table.Append([]string{e.Name, string(e.Kind), states, e.Description})
	}
	table.Render()
	return nil
}

func build(name string) (catalog.Entry, automata.Automaton, error) {
	e, err := catalog.Lookup(name)
	if err != nil {
		return catalog.Entry{}, nil, err
	}
	a, err := e.Build()
	if err != nil {
		return catalog.Entry{}, nil, err
	}
	return e, a, nil
}

func RunHandler(cmd *cobra.Command, args []string) error {
	e, a, err := build(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Testing %s that %s...\n", kindLabel(e.Kind), e.Description)
	return repl.Run(cmd.Context(), a, cmd.InOrStdin(), cmd.OutOrStdout())
}

func CheckHandler(cmd *cobra.Command, args []string) error {
	_, a, err := build(args[0])
	if err != nil {
		return err
	}
	for _, input := range args[1:] {
		if err := repl.Check(a, input, cmd.OutOrStdout()); err != nil {
			return err
		}
	}
	return nil
}

func PrintHandler(cmd *cobra.Command, args []string) error {
	e, err := catalog.Lookup(args[0])
	if err != nil {
		return err
	}
	allSymbols, err := cmd.Flags().GetBool("all-symbols")
	if err != nil {
		return err
	}
	var opts []automata.WriteOption
	if allSymbols || envconfig.AllSymbols {
		opts = append(opts, automata.WithAllSymbols())
	}
	return printEntry(cmd.OutOrStdout(), e, opts)
}

func printEntry(w io.Writer, e catalog.Entry, opts []automata.WriteOption) error {
	switch e.Kind {
	case catalog.KindConverted:
		// rebuild from the source NFA so the subsets can be shown
		src, err := catalog.Lookup(strings.TrimSuffix(e.Name, "-dfa"))
		if err != nil {
			return err
		}
		a, err := src.Build()
		if err != nil {
			return err
		}
		conv, err := automata.ConvertDetailed(a.(*automata.NFA), envconfig.MaxDFAStates)
		if err != nil {
			return errors.Wrapf(err, "converting %s", src.Name)
		}
		return automata.WriteConversion(w, conv, opts...)
	default:
		a, err := e.Build()
		if err != nil {
			return err
		}
		switch a := a.(type) {
		case *automata.DFA:
			return automata.WriteDFA(w, a, opts...)
		case *automata.NFA:
			return automata.WriteNFA(w, a, opts...)
		}
		return errors.Newf("cannot print %T", a)
	}
}

func DemoHandler(cmd *cobra.Command, args []string) error {
	session := repl.NewSession(cmd.InOrStdin(), cmd.OutOrStdout())
	for _, e := range catalog.Entries() {
		a, err := e.Build()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Testing %s that %s...\n", kindLabel(e.Kind), e.Description)
		if err := session.Run(cmd.Context(), a); err != nil {
			return err
		}
	}
	return nil
}

func EnvHandler(cmd *cobra.Command, args []string) error {
	vars := envconfig.AsMap()
	names := make([]string, 0, len(vars))
	for k := range vars {
		names = append(names, k)
	}
	sort.Strings(names)

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"NAME", "VALUE", "DESCRIPTION"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetAutoWrapText(false)
	for _, k := range names {
		v := vars[k]
		table.Append([]string{v.Name, fmt.Sprintf("%v", v.Value), v.Description})
	}
	table.Render()
	return nil
}

func kindLabel(k catalog.Kind) string {
	switch k {
	case catalog.KindNFA:
		return "NFA"
	case catalog.KindConverted:
		return "DFA on NFA"
	}
	return "DFA"
}

func NewCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "automata",
		Short:         "Finite automata and subset construction",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, err := cmd.Flags().GetBool("debug")
			if err != nil {
				return err
			}
			level := envconfig.LogLevel()
			if debug && level > slog.LevelDebug {
				level = slog.LevelDebug
			}
			slog.SetDefault(logutil.NewLogger(cmd.ErrOrStderr(), level))
			return nil
		},
	}

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	cobra.EnableCommandSorting = false

	listCmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List example automata",
		Args:    cobra.NoArgs,
		RunE:    ListHandler,
	}

	runCmd := &cobra.Command{
		Use:   "run NAME",
		Short: "Feed lines from stdin to an automaton",
		Args:  cobra.ExactArgs(1),
		RunE:  RunHandler,
	}

	checkCmd := &cobra.Command{
		Use:   "check NAME INPUT...",
		Short: "Run an automaton on each input",
		Args:  cobra.MinimumNArgs(2),
		RunE:  CheckHandler,
	}

	printCmd := &cobra.Command{
		Use:   "print NAME",
		Short: "Print the transition table of an automaton",
		Args:  cobra.ExactArgs(1),
		RunE:  PrintHandler,
	}
	printCmd.Flags().Bool("all-symbols", false, "List every symbol of the alphabet")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Walk every example automaton through the prompt",
		Args:  cobra.NoArgs,
		RunE:  DemoHandler,
	}

	envCmd := &cobra.Command{
		Use:   "env",
		Short: "Show configuration environment variables",
		Args:  cobra.NoArgs,
		RunE:  EnvHandler,
	}

	rootCmd.AddCommand(
		listCmd,
		runCmd,
		checkCmd,
		printCmd,
		demoCmd,
		envCmd,
	)

	return rootCmd
}
