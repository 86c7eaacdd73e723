package automaton

import (
	"golang.org/x/exp/slices"
)

// MakeComplete makes the transition function total over alphabet (the
// automaton's own Alphabet when nil): one sink state is added with a
// self-loop on every symbol, and every missing rule is sent to it.
func (d *DFA) MakeComplete(alphabet []rune) {
	if alphabet == nil {
		alphabet = d.Alphabet()
	}
	sink := d.AddState()
	for _, m := range d.delta {
		for _, sym := range alphabet {
			if _, ok := m[sym]; !ok {
				m[sym] = sink
			}
		}
	}
}

// MakeComplementary swaps final and non-final states. The automaton must be
// complete over its own alphabet, which is checked.
func (d *DFA) MakeComplementary() {
	if !d.IsComplete(d.Alphabet()) {
		precondition("MakeComplementary", "automaton is not complete")
	}
	finals := make(map[int]struct{}, len(d.delta)-len(d.finals))
	for s := range d.delta {
		if !d.IsFinal(s) {
			finals[s] = struct{}{}
		}
	}
	d.finals = finals
}

// Product returns the automaton of L(a) ∩ L(b). State (i, j) has index
// i*|b|+j; a rule on sym leaves (i, j) iff both operands have one.
func Product(a, b *DFA) *DFA {
	nb := b.StateCount()
	p := NewDFA(a.StateCount() * nb)
	p.initial = a.initial*nb + b.initial
	for i := range a.finals {
		for j := range b.finals {
			p.finals[i*nb+j] = struct{}{}
		}
	}
	for i, ma := range a.delta {
		for sym, ti := range ma {
			for j, mb := range b.delta {
				if tj, ok := mb[sym]; ok {
					p.delta[i*nb+j][sym] = ti*nb + tj
				}
			}
		}
	}
	return p
}

func unionRunes(a, b []rune) []rune {
	out := append(slices.Clone(a), b...)
	slices.Sort(out)
	return slices.Compact(out)
}

// IsLanguageIncluded decides L(a) ⊆ L(b) as L(a) ∩ complement(L(b)) = ∅,
// the complement taken over the union of both alphabets. Neither operand is
// modified.
func IsLanguageIncluded(a, b *DFA) bool {
	alphabet := unionRunes(a.Alphabet(), b.Alphabet())

	ca := Copy(a)
	ca.MakeComplete(alphabet)

	cb := Copy(b)
	cb.MakeComplete(alphabet)
	cb.MakeComplementary()

	return Product(ca, cb).IsEmptyLanguage()
}

// AreLanguageEqual decides L(a) = L(b).
func AreLanguageEqual(a, b *DFA) bool {
	return IsLanguageIncluded(a, b) && IsLanguageIncluded(b, a)
}
