package script

import (
	"fmt"
	"log/slog"

	"github.com/alecthomas/participle/v2/lexer"

	"regalgebra/internal/automaton"
)

// Result is the outcome of one assert statement.
type Result struct {
	Pos    lexer.Position `json:"-" yaml:"-"`
	Line   int            `json:"line" yaml:"line"`
	Text   string         `json:"assertion" yaml:"assertion"`
	Passed bool           `json:"passed" yaml:"passed"`
}

type Report struct {
	Results []Result `json:"results" yaml:"results"`
	Passed  int      `json:"passed" yaml:"passed"`
	Failed  int      `json:"failed" yaml:"failed"`
}

func (r *Report) OK() bool { return r.Failed == 0 }

// Context carries what a running script needs.
type Context struct {
	Env    *Environment
	Logger *slog.Logger
}

// Run executes every statement in order. A failed assertion is recorded in the
// report; an undefined name or a bad pattern stops the run with an error.
func (s *Script) Run(ctx *Context) (*Report, error) {
	if ctx.Logger == nil {
		ctx.Logger = slog.Default()
	}
	rep := &Report{}
	for _, stmt := range s.Statements {
		switch {
		case stmt.Let != nil:
			if err := stmt.Let.exec(ctx); err != nil {
				return rep, err
			}
		case stmt.Assert != nil:
			res, err := stmt.Assert.eval(ctx)
			if err != nil {
				return rep, err
			}
			rep.Results = append(rep.Results, res)
			if res.Passed {
				rep.Passed++
			} else {
				rep.Failed++
			}
		}
	}
	return rep, nil
}

func (l *Let) exec(ctx *Context) error {
	p, err := l.Value.resolve(ctx.Env)
	if err != nil {
		return err
	}
	ctx.Env.Set(l.Name, p)
	ctx.Logger.Debug("pattern bound", "name", l.Name, "pattern", p.Source, "dfa_states", p.DFA.StateCount())
	return nil
}

func (o *Operand) resolve(env *Environment) (*automaton.Pattern, error) {
	if o.Ref != nil {
		p, ok := env.Get(*o.Ref)
		if !ok {
			return nil, fmt.Errorf("%s: undefined name %s", o.Pos, *o.Ref)
		}
		return p, nil
	}
	p, err := env.compile(*o.Pattern)
	if err != nil {
		return nil, fmt.Errorf("%s: pattern %q: %w", o.Pos, *o.Pattern, err)
	}
	return p, nil
}

func (a *Assert) eval(ctx *Context) (Result, error) {
	left, err := a.Left.resolve(ctx.Env)
	if err != nil {
		return Result{}, err
	}

	var ok bool
	switch c := a.Check; {
	case c.Includes != nil:
		right, err := c.Includes.resolve(ctx.Env)
		if err != nil {
			return Result{}, err
		}
		ok = left.Includes(right)
	case c.Equals != nil:
		right, err := c.Equals.resolve(ctx.Env)
		if err != nil {
			return Result{}, err
		}
		ok = left.Equals(right)
	case c.Accepts != nil:
		ok = left.Match(*c.Accepts)
	case c.Rejects != nil:
		ok = !left.Match(*c.Rejects)
	default:
		ok = left.DFA.IsEmptyLanguage()
	}
	if a.Negate {
		ok = !ok
	}

	res := Result{Pos: a.Pos, Line: a.Pos.Line, Text: a.String(), Passed: ok}
	ctx.Logger.Debug("assertion evaluated", "line", res.Line, "assertion", res.Text, "passed", ok)
	return res, nil
}
