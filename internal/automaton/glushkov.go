package automaton

import (
	"regalgebra/internal/regex"
)

// Glushkov builds the position automaton of n: one state per symbol
// occurrence plus an initial state, no epsilon transitions. States follow the
// linearized tree's first/last/factor sets; edges carry the original symbols
// restored from the linearization table.
func Glushkov(n *regex.Node) *NDFA {
	n = regex.EliminateEmpty(n)
	if n.Kind() == regex.KindEmpty {
		return NewNDFA(1)
	}

	lin, table := n.Linearize()
	position := func(s rune) int { return int(s-regex.LinearBase) + 1 }

	a := NewNDFA(len(table) + 1)
	for _, s := range lin.FirstSymbols() {
		a.AddTransition(0, table.Original(s), position(s))
	}
	for _, f := range lin.Factors() {
		a.AddTransition(position(f.From), table.Original(f.To), position(f.To))
	}
	for _, s := range lin.LastSymbols() {
		a.SetFinal(position(s))
	}
	if lin.ContainsEpsilon() {
		a.SetFinal(0)
	}
	return a
}
