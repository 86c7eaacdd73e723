package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"regalgebra/internal/automaton"
)

// RelationResult reports whether a language relation holds between two
// patterns.
type RelationResult struct {
	Left     string `json:"left" yaml:"left"`
	Right    string `json:"right" yaml:"right"`
	Relation string `json:"relation" yaml:"relation"`
	Holds    bool   `json:"holds" yaml:"holds"`
}

func (r RelationResult) String() string {
	op := map[string]string{"include": "⊆", "equal": "="}[r.Relation]
	if !r.Holds {
		op = map[string]string{"include": "⊄", "equal": "≠"}[r.Relation]
	}
	return fmt.Sprintf("L(%s) %s L(%s)", r.Left, op, r.Right)
}

// NewIncludeCommand creates the include command.
func NewIncludeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "include <a> <b>",
		Short: "Decide whether L(a) is included in L(b)",
		Long: `Decide L(a) ⊆ L(b) by checking that L(a) ∩ ¬L(b) is empty over the
union of both alphabets.

Exits with status 1 when the inclusion does not hold.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRelation(rootOpts, "include", args[0], args[1], cmd)
		},
	}
}

// NewEqualCommand creates the equal command.
func NewEqualCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "equal <a> <b>",
		Short: "Decide whether L(a) equals L(b)",
		Long: `Decide L(a) = L(b) as inclusion in both directions.

Exits with status 1 when the languages differ.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRelation(rootOpts, "equal", args[0], args[1], cmd)
		},
	}
}

func runRelation(opts *RootOptions, relation, left, right string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	a, err := opts.compile(left)
	if err != nil {
		return f.Fail(err)
	}
	b, err := opts.compile(right)
	if err != nil {
		return f.Fail(err)
	}
	f.VerboseLog("dfa states: %s=%d %s=%d", left, a.DFA.StateCount(), right, b.DFA.StateCount())

	var holds bool
	if relation == "include" {
		holds = automaton.IsLanguageIncluded(a.DFA, b.DFA)
	} else {
		holds = automaton.AreLanguageEqual(a.DFA, b.DFA)
	}

	res := RelationResult{Left: left, Right: right, Relation: relation, Holds: holds}
	if err := f.Success(res); err != nil {
		return err
	}
	if !holds {
		return NewExitError(ExitFailure, res.String())
	}
	return nil
}
