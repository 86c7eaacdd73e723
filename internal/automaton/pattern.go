package automaton

import (
	"regalgebra/internal/regex"
)

// Pattern keeps every stage of compiling a regex: the tree, the Thompson
// NDFA and the determinized DFA.
type Pattern struct {
	Source string
	AST    *regex.Node
	NFA    *NDFA
	DFA    *DFA
}

// CompilePattern parses source and builds both automata. opts bound the
// determinization.
func CompilePattern(source string, opts ...Option) (*Pattern, error) {
	ast, err := regex.Parse(source)
	if err != nil {
		return nil, err
	}
	nfa := FromRegex(ast)
	dfa, err := nfa.Determinize(opts...)
	if err != nil {
		return nil, err
	}
	return &Pattern{Source: source, AST: ast, NFA: nfa, DFA: dfa}, nil
}

func MustCompile(source string) *Pattern {
	p, err := CompilePattern(source)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Pattern) Match(word string) bool { return p.DFA.IsRecognized(word) }

// Includes reports L(q) ⊆ L(p).
func (p *Pattern) Includes(q *Pattern) bool { return IsLanguageIncluded(q.DFA, p.DFA) }

func (p *Pattern) Equals(q *Pattern) bool { return AreLanguageEqual(p.DFA, q.DFA) }

func (p *Pattern) String() string { return p.Source }
