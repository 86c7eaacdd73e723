package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"regalgebra/internal/automaton"
	"regalgebra/internal/script"
)

var errScript = errors.New("script")

// CheckResult wraps a script report for output.
type CheckResult struct {
	File    string          `json:"file" yaml:"file"`
	Results []script.Result `json:"results" yaml:"results"`
	Passed  int             `json:"passed" yaml:"passed"`
	Failed  int             `json:"failed" yaml:"failed"`
}

func (r CheckResult) String() string {
	var b strings.Builder
	for _, res := range r.Results {
		verdict := "FAIL"
		if res.Passed {
			verdict = "ok  "
		}
		fmt.Fprintf(&b, "%s %s:%d %s\n", verdict, r.File, res.Line, res.Text)
	}
	fmt.Fprintf(&b, "%d passed, %d failed", r.Passed, r.Failed)
	return b.String()
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <script>",
		Short: "Run an assertion script",
		Long: `Run a script of let bindings and assertions over regular languages:

  let evens = "(aa)*";
  assert "a*" includes evens;
  assert not evens accepts "aaa";

Exits with status 1 when any assertion fails.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args[0], cmd)
		},
	}
}

func runCheck(opts *RootOptions, path string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	src, err := afero.ReadFile(opts.fs(), path)
	if err != nil {
		return f.Fail(WrapExitError(ExitCommandError, "read script", err))
	}

	s, err := script.Parse(path, string(src))
	if err != nil {
		return f.Fail(WrapExitError(ExitCommandError, "check", fmt.Errorf("%w: %w", errScript, err)))
	}
	f.VerboseLog("parsed %d statement(s) from %s", len(s.Statements), path)

	env := script.NewEnvironment(
		automaton.WithMaxStates(opts.MaxStates),
		automaton.WithLogger(opts.logger()),
	)
	rep, err := s.Run(&script.Context{Env: env, Logger: opts.logger()})
	if err != nil {
		return f.Fail(WrapExitError(ExitCommandError, "check", err))
	}

	if err := f.Success(CheckResult{File: path, Results: rep.Results, Passed: rep.Passed, Failed: rep.Failed}); err != nil {
		return err
	}
	if !rep.OK() {
		return NewExitError(ExitFailure, fmt.Sprintf("%d assertion(s) failed", rep.Failed))
	}
	return nil
}
