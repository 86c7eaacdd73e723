package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

type WordMatch struct {
	Word     string `json:"word" yaml:"word"`
	Accepted bool   `json:"accepted" yaml:"accepted"`
}

type MatchResult struct {
	Pattern string      `json:"pattern" yaml:"pattern"`
	States  int         `json:"dfa_states" yaml:"dfa_states"`
	Words   []WordMatch `json:"words" yaml:"words"`
}

func (r MatchResult) String() string {
	lines := make([]string, len(r.Words))
	for i, w := range r.Words {
		verdict := "reject"
		if w.Accepted {
			verdict = "accept"
		}
		lines[i] = fmt.Sprintf("%s %q", verdict, w.Word)
	}
	return strings.Join(lines, "\n")
}

// NewMatchCommand creates the match command.
func NewMatchCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "match <regex> <word>...",
		Short: "Test words against a regex",
		Long: `Run each word through the determinized automaton of the regex.

Exits with status 1 when any word is rejected.`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(rootOpts, args[0], args[1:], cmd)
		},
	}
}

func runMatch(opts *RootOptions, source string, words []string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	p, err := opts.compile(source)
	if err != nil {
		return f.Fail(err)
	}

	res := MatchResult{Pattern: source, States: p.DFA.StateCount()}
	rejected := 0
	for _, w := range words {
		ok := p.Match(w)
		if !ok {
			rejected++
		}
		res.Words = append(res.Words, WordMatch{Word: w, Accepted: ok})
	}
	if err := f.Success(res); err != nil {
		return err
	}
	if rejected > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d word(s) rejected", rejected, len(words)))
	}
	return nil
}
