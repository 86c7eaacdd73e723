package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"regalgebra/internal/regex"
)

// ParseResult describes a parsed regex and its local sets.
type ParseResult struct {
	Source     string   `json:"source" yaml:"source"`
	Regex      string   `json:"regex" yaml:"regex"`
	Simplified string   `json:"simplified" yaml:"simplified"`
	Size       int      `json:"size" yaml:"size"`
	Empty      bool     `json:"empty" yaml:"empty"`
	Nullable   bool     `json:"nullable" yaml:"nullable"`
	Symbols    []string `json:"symbols" yaml:"symbols"`
	First      []string `json:"first" yaml:"first"`
	Last       []string `json:"last" yaml:"last"`
	Factors    []string `json:"factors" yaml:"factors"`
	DFAStates  int      `json:"dfa_states" yaml:"dfa_states"`
	FromDFA    string   `json:"from_dfa" yaml:"from_dfa"`
}

func (r ParseResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "regex:      %s\n", r.Regex)
	fmt.Fprintf(&b, "simplified: %s\n", r.Simplified)
	fmt.Fprintf(&b, "size:       %d\n", r.Size)
	fmt.Fprintf(&b, "empty:      %t\n", r.Empty)
	fmt.Fprintf(&b, "nullable:   %t\n", r.Nullable)
	fmt.Fprintf(&b, "symbols:    %s\n", braces(r.Symbols))
	fmt.Fprintf(&b, "first:      %s\n", braces(r.First))
	fmt.Fprintf(&b, "last:       %s\n", braces(r.Last))
	fmt.Fprintf(&b, "factors:    %s\n", braces(r.Factors))
	fmt.Fprintf(&b, "dfa states: %d\n", r.DFAStates)
	fmt.Fprintf(&b, "from dfa:   %s", r.FromDFA)
	return b.String()
}

func braces(items []string) string {
	return "{" + strings.Join(items, ", ") + "}"
}

func runeStrings(rs []rune) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = string(r)
	}
	return out
}

// NewParseCommand creates the parse command.
func NewParseCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <regex>",
		Short: "Parse a regex and print its structure",
		Long: `Parse a regex and print its canonical form, the form with ∅ eliminated,
and the sets of first symbols, last symbols and two-symbol factors.

The last line is a regex recovered from the determinized automaton by state
elimination.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(rootOpts, args[0], cmd)
		},
	}
}

func runParse(opts *RootOptions, source string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	n, err := regex.Parse(source)
	if err != nil {
		return f.Fail(WrapExitError(ExitCommandError, "parse", err))
	}
	p, err := opts.compile(source)
	if err != nil {
		return f.Fail(err)
	}

	factors := make([]string, 0)
	for _, fc := range n.Factors() {
		factors = append(factors, string([]rune{fc.From, fc.To}))
	}
	f.VerboseLog("parsed %q into %d nodes", source, n.Size())

	return f.Success(ParseResult{
		Source:     source,
		Regex:      n.String(),
		Simplified: regex.EliminateEmpty(n).String(),
		Size:       n.Size(),
		Empty:      n.IsEmpty(),
		Nullable:   n.ContainsEpsilon(),
		Symbols:    runeStrings(n.Symbols()),
		First:      runeStrings(n.FirstSymbols()),
		Last:       runeStrings(n.LastSymbols()),
		Factors:    factors,
		DFAStates:  p.DFA.StateCount(),
		FromDFA:    p.DFA.ToRegex().String(),
	})
}
