package automaton

import (
	"regalgebra/internal/regex"
)

// Thompson compiles a regex tree into an equivalent NDFA. Each symbol, ε,
// union and star case adds exactly two fresh boundary states; concatenation
// adds none. Sub-automata are embedded at a fixed index shift.
//
// The tree must contain no ∅ node; run regex.EliminateEmpty first.
func Thompson(n *regex.Node) *NDFA {
	switch n.Kind() {
	case regex.KindEmpty:
		precondition("Thompson", "∅ must be eliminated before construction")

	case regex.KindSymbol, regex.KindEpsilon:
		sym := Epsilon
		if n.Kind() == regex.KindSymbol {
			sym = n.Sym()
		}
		a := NewNDFA(2)
		a.AddTransition(0, sym, 1)
		a.SetFinal(1)
		return a

	case regex.KindUnion:
		l, r := Thompson(n.Left()), Thompson(n.Right())
		a := NewNDFA(l.states + r.states + 2)
		lo, ro, final := 1, 1+l.states, l.states+r.states+1
		embed(a, l, lo)
		embed(a, r, ro)
		a.AddTransition(0, Epsilon, l.initial+lo)
		a.AddTransition(0, Epsilon, r.initial+ro)
		for f := range l.finals.All() {
			a.AddTransition(f+lo, Epsilon, final)
		}
		for f := range r.finals.All() {
			a.AddTransition(f+ro, Epsilon, final)
		}
		a.SetFinal(final)
		return a

	case regex.KindConcat:
		l, r := Thompson(n.Left()), Thompson(n.Right())
		a := NewNDFA(l.states + r.states)
		ro := l.states
		embed(a, l, 0)
		embed(a, r, ro)
		a.initial = l.initial
		for f := range l.finals.All() {
			a.AddTransition(f, Epsilon, r.initial+ro)
		}
		for f := range r.finals.All() {
			a.SetFinal(f + ro)
		}
		return a

	case regex.KindStar:
		b := Thompson(n.Left())
		a := NewNDFA(b.states + 2)
		final := b.states + 1
		embed(a, b, 1)
		a.AddTransition(0, Epsilon, b.initial+1)
		a.AddTransition(0, Epsilon, final)
		for f := range b.finals.All() {
			a.AddTransition(f+1, Epsilon, b.initial+1)
			a.AddTransition(f+1, Epsilon, final)
		}
		a.SetFinal(final)
		return a
	}
	panic("unknown regex node")
}

// Compile parses text and runs Thompson's construction on it. ∅ is eliminated
// first; a pattern whose whole language is empty yields a single non-final
// state.
func Compile(text string) (*NDFA, error) {
	n, err := regex.Parse(text)
	if err != nil {
		return nil, err
	}
	return FromRegex(n), nil
}

// FromRegex is Thompson after regex.EliminateEmpty, accepting any tree.
func FromRegex(n *regex.Node) *NDFA {
	n = regex.EliminateEmpty(n)
	if n.Kind() == regex.KindEmpty {
		return NewNDFA(1)
	}
	return Thompson(n)
}
