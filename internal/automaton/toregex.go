package automaton

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"regalgebra/internal/regex"
)

// ToRegex recovers a regex denoting L(d) by state elimination. States are
// removed in index order, so the result is deterministic but not minimal.
func (d *DFA) ToRegex() *regex.Node {
	n := d.StateCount()
	start, final := n, n+1

	// r[i][j] labels the path i -> j; nil stands for ∅
	r := make([][]*regex.Node, n+2)
	for i := range r {
		r[i] = make([]*regex.Node, n+2)
	}
	r[start][d.initial] = regex.Epsilon()
	for f := range d.finals {
		r[f][final] = regex.Epsilon()
	}
	for from, row := range d.delta {
		syms := maps.Keys(row)
		slices.Sort(syms)
		for _, sym := range syms {
			to := row[sym]
			r[from][to] = alt(r[from][to], regex.Symbol(sym))
		}
	}

	for k := 0; k < n; k++ {
		loop := star(r[k][k])
		for i := 0; i < n+2; i++ {
			if i == k || r[i][k] == nil {
				continue
			}
			for j := 0; j < n+2; j++ {
				if j == k || r[k][j] == nil {
					continue
				}
				r[i][j] = alt(r[i][j], cat(cat(r[i][k], loop), r[k][j]))
			}
		}
		for i := range r {
			r[i][k], r[k][i] = nil, nil
		}
	}

	if r[start][final] == nil {
		return regex.Empty()
	}
	return r[start][final]
}

func isEpsilon(n *regex.Node) bool { return n != nil && n.Kind() == regex.KindEpsilon }

func alt(a, b *regex.Node) *regex.Node {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case a.String() == b.String():
		return a
	}
	return regex.Union(a, b)
}

func cat(a, b *regex.Node) *regex.Node {
	switch {
	case a == nil || b == nil:
		return nil
	case isEpsilon(a):
		return b
	case isEpsilon(b):
		return a
	}
	return regex.Concat(a, b)
}

func star(a *regex.Node) *regex.Node {
	switch {
	case a == nil || isEpsilon(a):
		return regex.Epsilon()
	case a.Kind() == regex.KindStar:
		return a
	}
	return regex.Star(a)
}
