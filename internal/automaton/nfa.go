// Package automaton implements nondeterministic and deterministic finite
// automata over rune symbols, their construction from regex trees, subset
// construction, and the product/complement algebra used to decide language
// inclusion and equivalence.
//
// Automata are built incrementally and then queried as if immutable. They are
// not safe for concurrent mutation; use Copy to hand an automaton to another
// goroutine or to an operation that mutates it.
package automaton

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"regalgebra/internal/stateset"
)

// Epsilon labels a transition that consumes no input. It is not a valid rune,
// so it never occurs in a Go string.
const Epsilon rune = -1

// NDFA is a nondeterministic automaton with epsilon transitions. Every
// destination set has the automaton's state count as capacity.
type NDFA struct {
	states  int
	initial int
	finals  *stateset.Set
	delta   []map[rune]*stateset.Set
}

// NewNDFA returns an automaton with states 0..n-1, initial state 0, no final
// state and no transition.
func NewNDFA(n int) *NDFA {
	if n < 1 {
		precondition("NewNDFA", "state count %d < 1", n)
	}
	a := &NDFA{
		states: n,
		finals: stateset.New(n),
		delta:  make([]map[rune]*stateset.Set, n),
	}
	for i := range a.delta {
		a.delta[i] = map[rune]*stateset.Set{}
	}
	return a
}

func (a *NDFA) check(op string, states ...int) {
	for _, s := range states {
		if s < 0 || s >= a.states {
			precondition(op, "state %d out of range [0,%d)", s, a.states)
		}
	}
}

func (a *NDFA) StateCount() int { return a.states }

func (a *NDFA) Initial() int { return a.initial }

func (a *NDFA) SetInitial(s int) {
	a.check("SetInitial", s)
	a.initial = s
}

// Finals returns a copy of the final-state set.
func (a *NDFA) Finals() *stateset.Set { return a.finals.Clone() }

func (a *NDFA) SetFinal(s int) {
	a.check("SetFinal", s)
	a.finals.Add(s)
}

func (a *NDFA) IsFinal(s int) bool { return a.finals.Contains(s) }

// AddTransition adds to to the destinations of (from, sym). Use Epsilon for
// a move that reads nothing.
func (a *NDFA) AddTransition(from int, sym rune, to int) {
	a.check("AddTransition", from, to)
	dst, ok := a.delta[from][sym]
	if !ok {
		dst = stateset.New(a.states)
		a.delta[from][sym] = dst
	}
	dst.Add(to)
}

// Symbols returns the sorted non-epsilon labels of all transitions.
func (a *NDFA) Symbols() []rune {
	set := map[rune]struct{}{}
	for _, m := range a.delta {
		for sym := range m {
			if sym != Epsilon {
				set[sym] = struct{}{}
			}
		}
	}
	out := maps.Keys(set)
	slices.Sort(out)
	return out
}

// symbolsFrom returns the sorted non-epsilon labels leaving any member of set.
func (a *NDFA) symbolsFrom(set *stateset.Set) []rune {
	seen := map[rune]struct{}{}
	for s := range set.All() {
		for sym := range a.delta[s] {
			if sym != Epsilon {
				seen[sym] = struct{}{}
			}
		}
	}
	out := maps.Keys(seen)
	slices.Sort(out)
	return out
}

func (a *NDFA) checkSet(op string, set *stateset.Set) {
	if set.Cap() != a.states {
		precondition(op, "state set capacity %d, automaton has %d states", set.Cap(), a.states)
	}
}

// EpsilonClosure returns every state reachable from a member of set through
// epsilon transitions only, set itself included.
func (a *NDFA) EpsilonClosure(set *stateset.Set) *stateset.Set {
	a.checkSet("EpsilonClosure", set)
	closure := set.Clone()
	stack := set.Slice()
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		eps, ok := a.delta[s][Epsilon]
		if !ok {
			continue
		}
		for t := range eps.All() {
			if !closure.Contains(t) {
				closure.Add(t)
				stack = append(stack, t)
			}
		}
	}
	return closure
}

// Delta is the transition function lifted to sets: close set, read sym from
// every member, close the result.
func (a *NDFA) Delta(set *stateset.Set, sym rune) *stateset.Set {
	closure := a.EpsilonClosure(set)
	next := stateset.New(a.states)
	for s := range closure.All() {
		if dst, ok := a.delta[s][sym]; ok {
			next.UnionWith(dst)
		}
	}
	return a.EpsilonClosure(next)
}

func (a *NDFA) IsRecognized(word string) bool {
	cur := stateset.Of(a.states, a.initial)
	for _, r := range word {
		cur = a.Delta(cur, r)
		if cur.IsEmpty() {
			return false
		}
	}
	if word == "" {
		cur = a.EpsilonClosure(cur)
	}
	return cur.Intersects(a.finals)
}

// IsEmptyLanguage reports whether no final state is reachable from the
// initial state.
func (a *NDFA) IsEmptyLanguage() bool {
	seen := stateset.Of(a.states, a.initial)
	stack := []int{a.initial}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if a.finals.Contains(s) {
			return false
		}
		for _, dst := range a.delta[s] {
			for t := range dst.All() {
				if !seen.Contains(t) {
					seen.Add(t)
					stack = append(stack, t)
				}
			}
		}
	}
	return true
}

// embed copies every transition of src into dst with both ends shifted by
// offset. dst must have room for src.StateCount() states from offset on.
func embed(dst, src *NDFA, offset int) {
	for s, m := range src.delta {
		for sym, to := range m {
			for t := range to.All() {
				dst.AddTransition(s+offset, sym, t+offset)
			}
		}
	}
}
