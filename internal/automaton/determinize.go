package automaton

import (
	"fmt"
	"log/slog"

	"regalgebra/internal/stateset"
)

type determinizeConfig struct {
	maxStates int
	logger    *slog.Logger
}

// Option tunes Determinize.
type Option func(*determinizeConfig)

// WithMaxStates bounds the number of DFA states the subset construction may
// create. Zero or less means unbounded.
func WithMaxStates(n int) Option {
	return func(c *determinizeConfig) { c.maxStates = n }
}

// WithLogger traces discovered states at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(c *determinizeConfig) { c.logger = l }
}

// ToDFA is Determinize without a state budget.
func (a *NDFA) ToDFA() *DFA {
	d, err := a.Determinize()
	if err != nil {
		panic(err)
	}
	return d
}

// Determinize runs the subset construction. DFA state 0 is the epsilon
// closure of the initial state; every other state is a distinct closed set of
// NDFA states, numbered in breadth-first discovery order with symbols taken in
// ascending order. A DFA state is final iff its set holds an NDFA final state.
func (a *NDFA) Determinize(opts ...Option) (*DFA, error) {
	var cfg determinizeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	start := a.EpsilonClosure(stateset.Of(a.states, a.initial))
	index := map[string]int{start.Key(): 0}
	sets := []*stateset.Set{start}

	d := NewDFA(1)
	d.SetFinal(0, start.Intersects(a.finals))

	// sets doubles as the FIFO worklist: everything after cur is unexplored
	for cur := 0; cur < len(sets); cur++ {
		from := sets[cur]
		for _, sym := range a.symbolsFrom(from) {
			next := a.Delta(from, sym)
			key := next.Key()
			to, seen := index[key]
			if !seen {
				if cfg.maxStates > 0 && len(sets) >= cfg.maxStates {
					return nil, fmt.Errorf("%w: more than %d states", ErrStateBudget, cfg.maxStates)
				}
				to = d.AddState()
				index[key] = to
				sets = append(sets, next)
				d.SetFinal(to, next.Intersects(a.finals))
				if cfg.logger != nil {
					cfg.logger.Debug("dfa state discovered",
						"state", to,
						"nfa_states", next.String(),
						"final", d.IsFinal(to),
					)
				}
			}
			d.AddTransition(cur, sym, to)
		}
	}
	if cfg.logger != nil {
		cfg.logger.Debug("determinization done", "nfa_states", a.states, "dfa_states", d.StateCount())
	}
	return d, nil
}
