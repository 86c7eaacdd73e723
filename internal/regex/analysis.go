package regex

import (
	"sort"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// IsEmpty reports whether the tree denotes the empty language.
func (n *Node) IsEmpty() bool {
	switch n.kind {
	case KindEmpty:
		return true
	case KindUnion:
		return n.left.IsEmpty() && n.right.IsEmpty()
	case KindConcat:
		return n.left.IsEmpty() || n.right.IsEmpty()
	}
	// ε, symbols and stars are never empty
	return false
}

// ContainsEpsilon reports whether the empty word belongs to the language.
func (n *Node) ContainsEpsilon() bool {
	switch n.kind {
	case KindEpsilon:
		return true
	case KindUnion:
		return n.left.ContainsEpsilon() || n.right.ContainsEpsilon()
	case KindConcat:
		return n.left.ContainsEpsilon() && n.right.ContainsEpsilon()
	case KindStar:
		return !n.left.IsEmpty()
	}
	return false
}

// EliminateEmpty returns an equivalent tree that is either ∅ itself or holds no
// ∅ node at all. The result shares no nodes with n.
func EliminateEmpty(n *Node) *Node {
	switch n.kind {
	case KindEmpty:
		return Empty()
	case KindEpsilon:
		return Epsilon()
	case KindSymbol:
		return Symbol(n.sym)
	case KindUnion:
		l, r := EliminateEmpty(n.left), EliminateEmpty(n.right)
		switch {
		case l.kind == KindEmpty:
			return r
		case r.kind == KindEmpty:
			return l
		}
		return Union(l, r)
	case KindConcat:
		l, r := EliminateEmpty(n.left), EliminateEmpty(n.right)
		if l.kind == KindEmpty || r.kind == KindEmpty {
			return Empty()
		}
		return Concat(l, r)
	case KindStar:
		b := EliminateEmpty(n.left)
		if b.kind == KindEmpty {
			return Epsilon()
		}
		return Star(b)
	}
	panic("unknown regex node")
}

type runeSet map[rune]struct{}

func (s runeSet) add(rs ...rune) runeSet {
	for _, r := range rs {
		s[r] = struct{}{}
	}
	return s
}

func (s runeSet) sorted() []rune {
	out := maps.Keys(s)
	slices.Sort(out)
	return out
}

// Symbols returns the sorted set of symbols occurring in the tree.
func (n *Node) Symbols() []rune {
	set := runeSet{}
	var walk func(*Node)
	walk = func(n *Node) {
		switch n.kind {
		case KindSymbol:
			set.add(n.sym)
		case KindUnion, KindConcat:
			walk(n.left)
			walk(n.right)
		case KindStar:
			walk(n.left)
		}
	}
	walk(n)
	return set.sorted()
}

// The local-language sets below assume a tree without ∅ (see EliminateEmpty).

// FirstSymbols returns the sorted set of symbols that can start a word (P).
func (n *Node) FirstSymbols() []rune { return n.first(runeSet{}).sorted() }

func (n *Node) first(acc runeSet) runeSet {
	switch n.kind {
	case KindSymbol:
		acc.add(n.sym)
	case KindUnion:
		n.left.first(acc)
		n.right.first(acc)
	case KindConcat:
		n.left.first(acc)
		if n.left.ContainsEpsilon() {
			n.right.first(acc)
		}
	case KindStar:
		n.left.first(acc)
	}
	return acc
}

// LastSymbols returns the sorted set of symbols that can end a word (D).
func (n *Node) LastSymbols() []rune { return n.last(runeSet{}).sorted() }

func (n *Node) last(acc runeSet) runeSet {
	switch n.kind {
	case KindSymbol:
		acc.add(n.sym)
	case KindUnion:
		n.left.last(acc)
		n.right.last(acc)
	case KindConcat:
		n.right.last(acc)
		if n.right.ContainsEpsilon() {
			n.left.last(acc)
		}
	case KindStar:
		n.left.last(acc)
	}
	return acc
}

// Factor is an adjacent symbol pair From·To occurring in some word.
type Factor struct {
	From, To rune
}

// Factors returns the sorted set of length-two factors (F).
func (n *Node) Factors() []Factor {
	set := map[Factor]struct{}{}
	n.factors(set)
	out := maps.Keys(set)
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})
	return out
}

func (n *Node) factors(acc map[Factor]struct{}) {
	cross := func(from, to []rune) {
		for _, x := range from {
			for _, y := range to {
				acc[Factor{From: x, To: y}] = struct{}{}
			}
		}
	}
	switch n.kind {
	case KindUnion:
		n.left.factors(acc)
		n.right.factors(acc)
	case KindConcat:
		n.left.factors(acc)
		n.right.factors(acc)
		cross(n.left.LastSymbols(), n.right.FirstSymbols())
	case KindStar:
		n.left.factors(acc)
		cross(n.left.LastSymbols(), n.left.FirstSymbols())
	}
}
