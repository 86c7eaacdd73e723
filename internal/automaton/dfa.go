package automaton

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"regalgebra/internal/stateset"
)

// DFA is a deterministic automaton. Its transition function is partial unless
// MakeComplete was called: a missing (state, symbol) rule blocks, which
// rejects the word.
type DFA struct {
	initial int
	finals  map[int]struct{}
	delta   []map[rune]int
}

// NewDFA returns an automaton with states 0..n-1, initial state 0, no final
// state and no transition.
func NewDFA(n int) *DFA {
	if n < 1 {
		precondition("NewDFA", "state count %d < 1", n)
	}
	d := &DFA{
		finals: map[int]struct{}{},
		delta:  make([]map[rune]int, n),
	}
	for i := range d.delta {
		d.delta[i] = map[rune]int{}
	}
	return d
}

func (d *DFA) check(op string, states ...int) {
	for _, s := range states {
		if s < 0 || s >= len(d.delta) {
			precondition(op, "state %d out of range [0,%d)", s, len(d.delta))
		}
	}
}

func (d *DFA) StateCount() int { return len(d.delta) }

// AddState appends a state without transitions and returns its index.
func (d *DFA) AddState() int {
	d.delta = append(d.delta, map[rune]int{})
	return len(d.delta) - 1
}

func (d *DFA) Initial() int { return d.initial }

func (d *DFA) SetInitial(s int) {
	d.check("SetInitial", s)
	d.initial = s
}

func (d *DFA) SetFinal(s int, final bool) {
	d.check("SetFinal", s)
	if final {
		d.finals[s] = struct{}{}
	} else {
		delete(d.finals, s)
	}
}

func (d *DFA) IsFinal(s int) bool {
	_, ok := d.finals[s]
	return ok
}

// Finals returns the final states in ascending order.
func (d *DFA) Finals() []int {
	out := maps.Keys(d.finals)
	slices.Sort(out)
	return out
}

// AddTransition sets the rule for (from, sym), replacing any previous one.
func (d *DFA) AddTransition(from int, sym rune, to int) {
	d.check("AddTransition", from, to)
	if sym == Epsilon {
		precondition("AddTransition", "epsilon transition in a DFA")
	}
	d.delta[from][sym] = to
}

// Delta returns the destination of (state, sym); ok is false when blocked.
func (d *DFA) Delta(state int, sym rune) (next int, ok bool) {
	d.check("Delta", state)
	next, ok = d.delta[state][sym]
	return next, ok
}

func (d *DFA) IsRecognized(word string) bool {
	s := d.initial
	for _, r := range word {
		next, ok := d.delta[s][r]
		if !ok {
			return false
		}
		s = next
	}
	return d.IsFinal(s)
}

// Alphabet returns every symbol labeling a transition of any state, sorted.
// Unreachable states count too.
func (d *DFA) Alphabet() []rune {
	set := map[rune]struct{}{}
	for _, m := range d.delta {
		for sym := range m {
			set[sym] = struct{}{}
		}
	}
	out := maps.Keys(set)
	slices.Sort(out)
	return out
}

// IsComplete reports whether every state has a rule for every symbol of
// alphabet.
func (d *DFA) IsComplete(alphabet []rune) bool {
	for _, m := range d.delta {
		for _, sym := range alphabet {
			if _, ok := m[sym]; !ok {
				return false
			}
		}
	}
	return true
}

// Reachable returns the states reachable from the initial state.
func (d *DFA) Reachable() *stateset.Set {
	seen := stateset.Of(len(d.delta), d.initial)
	stack := []int{d.initial}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, t := range d.delta[s] {
			if !seen.Contains(t) {
				seen.Add(t)
				stack = append(stack, t)
			}
		}
	}
	return seen
}

// IsEmptyLanguage reports whether no final state is reachable.
func (d *DFA) IsEmptyLanguage() bool {
	for s := range d.Reachable().All() {
		if d.IsFinal(s) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy sharing nothing with d.
func (d *DFA) Clone() *DFA {
	c := &DFA{
		initial: d.initial,
		finals:  maps.Clone(d.finals),
		delta:   make([]map[rune]int, len(d.delta)),
	}
	for i, m := range d.delta {
		c.delta[i] = maps.Clone(m)
	}
	return c
}

// Copy is Clone as a free function.
func Copy(d *DFA) *DFA { return d.Clone() }
