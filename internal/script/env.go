package script

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"regalgebra/internal/automaton"
)

// Environment holds the let bindings of a running script and a cache of
// compiled literal patterns.
type Environment struct {
	vars     map[string]*automaton.Pattern
	literals map[string]*automaton.Pattern
	opts     []automaton.Option
}

// NewEnvironment returns an empty environment; opts are passed to every
// determinization.
func NewEnvironment(opts ...automaton.Option) *Environment {
	return &Environment{
		vars:     map[string]*automaton.Pattern{},
		literals: map[string]*automaton.Pattern{},
		opts:     opts,
	}
}

func (e *Environment) Get(name string) (*automaton.Pattern, bool) {
	p, ok := e.vars[name]
	return p, ok
}

func (e *Environment) Set(name string, p *automaton.Pattern) {
	e.vars[name] = p
}

// Names returns the bound names in sorted order.
func (e *Environment) Names() []string {
	names := maps.Keys(e.vars)
	slices.Sort(names)
	return names
}

func (e *Environment) compile(source string) (*automaton.Pattern, error) {
	if p, ok := e.literals[source]; ok {
		return p, nil
	}
	p, err := automaton.CompilePattern(source, e.opts...)
	if err != nil {
		return nil, err
	}
	e.literals[source] = p
	return p, nil
}

func (e *Environment) String() string {
	return fmt.Sprint(e.Names())
}
