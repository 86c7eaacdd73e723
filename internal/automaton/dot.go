package automaton

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Graph is an automaton WriteDOT can render: *NDFA or *DFA.
type Graph interface {
	StateCount() int
	Initial() int
	IsFinal(s int) bool
	edges() []edge
}

type edge struct {
	from, to int
	sym      rune
}

func sortEdges(es []edge) []edge {
	sort.Slice(es, func(i, j int) bool {
		if es[i].from != es[j].from {
			return es[i].from < es[j].from
		}
		if es[i].sym != es[j].sym {
			return es[i].sym < es[j].sym
		}
		return es[i].to < es[j].to
	})
	return es
}

func (a *NDFA) edges() []edge {
	var es []edge
	for s, m := range a.delta {
		for sym, to := range m {
			for t := range to.All() {
				es = append(es, edge{from: s, to: t, sym: sym})
			}
		}
	}
	return sortEdges(es)
}

func (d *DFA) edges() []edge {
	var es []edge
	for s, m := range d.delta {
		for sym, t := range m {
			es = append(es, edge{from: s, to: t, sym: sym})
		}
	}
	return sortEdges(es)
}

func label(sym rune) string {
	if sym == Epsilon {
		return "ε"
	}
	return string(sym)
}

// WriteDOT prints a Graphviz description of g: accepting states drawn with a
// double circle, a point-shaped qi node with an arrow to the initial state,
// one labeled edge per transition. Output is deterministic.
func WriteDOT(w io.Writer, g Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph G {")
	fmt.Fprintln(bw, "    rankdir=LR;")

	var finals, others []string
	for s := 0; s < g.StateCount(); s++ {
		if g.IsFinal(s) {
			finals = append(finals, fmt.Sprint(s))
		} else {
			others = append(others, fmt.Sprint(s))
		}
	}
	if len(finals) > 0 {
		fmt.Fprintf(bw, "    node [shape=doublecircle]; %s;\n", strings.Join(finals, " "))
	}
	if len(others) > 0 {
		fmt.Fprintf(bw, "    node [shape=circle]; %s;\n", strings.Join(others, " "))
	}
	fmt.Fprintln(bw, "    node [shape=point]; qi;")
	fmt.Fprintf(bw, "    qi -> %d;\n", g.Initial())

	for _, e := range g.edges() {
		fmt.Fprintf(bw, "    %d -> %d [label=%q];\n", e.from, e.to, label(e.sym))
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

// DOT returns WriteDOT output as a string.
func DOT(g Graph) string {
	var b strings.Builder
	_ = WriteDOT(&b, g)
	return b.String()
}
