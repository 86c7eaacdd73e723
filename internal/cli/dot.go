package cli

import (
	"bytes"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"regalgebra/internal/automaton"
	"regalgebra/internal/regex"
)

type DOTOptions struct {
	Automaton string // "thompson" | "glushkov" | "dfa"
	Output    string
}

// NewDOTCommand creates the dot command.
func NewDOTCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DOTOptions{}

	cmd := &cobra.Command{
		Use:   "dot <regex>",
		Short: "Print an automaton of a regex as Graphviz DOT",
		Long: `Build an automaton for the regex and print it in Graphviz DOT.

  --automaton thompson   ε-NDFA from the Thompson construction
  --automaton glushkov   ε-free position automaton
  --automaton dfa        determinized Thompson automaton (default)`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDOT(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Automaton, "automaton", "dfa", "automaton to draw (thompson|glushkov|dfa)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write to file instead of stdout")

	return cmd
}

func runDOT(rootOpts *RootOptions, opts *DOTOptions, source string, cmd *cobra.Command) error {
	f := rootOpts.formatter(cmd)

	var g automaton.Graph
	switch opts.Automaton {
	case "thompson", "glushkov":
		n, err := regex.Parse(source)
		if err != nil {
			return f.Fail(WrapExitError(ExitCommandError, "parse", err))
		}
		if opts.Automaton == "thompson" {
			g = automaton.FromRegex(n)
		} else {
			g = automaton.Glushkov(n)
		}
	case "dfa":
		p, err := rootOpts.compile(source)
		if err != nil {
			return f.Fail(err)
		}
		g = p.DFA
	default:
		return f.Fail(NewExitError(ExitCommandError, fmt.Sprintf("unknown automaton %q", opts.Automaton)))
	}

	var buf bytes.Buffer
	if err := automaton.WriteDOT(&buf, g); err != nil {
		return f.Fail(err)
	}

	if opts.Output == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	if err := afero.WriteFile(rootOpts.fs(), opts.Output, buf.Bytes(), 0o644); err != nil {
		return f.Fail(WrapExitError(ExitCommandError, "write "+opts.Output, err))
	}
	f.VerboseLog("wrote %d states to %s", g.StateCount(), opts.Output)
	return nil
}
