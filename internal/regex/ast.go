// Package regex holds the regular-expression syntax tree, its parser and
// printer, and the structural analyses used by the automaton constructions.
//
// The surface syntax has literal symbols, the meta-characters | ( ) * and the
// designated literals ε (empty word) and ∅ (empty language). There is no
// escaping: reserved characters cannot be matched literally.
package regex

import "fmt"

type Kind int

const (
	KindEmpty   Kind = iota // ∅
	KindEpsilon             // ε
	KindSymbol
	KindUnion
	KindConcat
	KindStar
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindEpsilon:
		return "Epsilon"
	case KindSymbol:
		return "Symbol"
	case KindUnion:
		return "Union"
	case KindConcat:
		return "Concat"
	case KindStar:
		return "Star"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Node is an immutable regex tree node. Union and Concat are strictly binary;
// Star keeps its body in left.
type Node struct {
	kind  Kind
	sym   rune
	left  *Node
	right *Node
}

func Empty() *Node   { return &Node{kind: KindEmpty} }
func Epsilon() *Node { return &Node{kind: KindEpsilon} }

func Symbol(r rune) *Node { return &Node{kind: KindSymbol, sym: r} }

func Union(left, right *Node) *Node {
	return &Node{kind: KindUnion, left: left, right: right}
}

func Concat(left, right *Node) *Node {
	return &Node{kind: KindConcat, left: left, right: right}
}

func Star(body *Node) *Node { return &Node{kind: KindStar, left: body} }

func (n *Node) Kind() Kind { return n.kind }

// Sym is the symbol of a KindSymbol node.
func (n *Node) Sym() rune { return n.sym }

// Left is the left operand of Union/Concat, or the body of Star.
func (n *Node) Left() *Node { return n.left }

func (n *Node) Right() *Node { return n.right }

// Size returns the number of nodes in the tree.
func (n *Node) Size() int {
	switch n.kind {
	case KindUnion, KindConcat:
		return 1 + n.left.Size() + n.right.Size()
	case KindStar:
		return 1 + n.left.Size()
	}
	return 1
}

// String prints the tree so that Parse(n.String()) denotes the same language.
// Only the parentheses precedence requires are emitted.
func (n *Node) String() string { return n.stringify(-1) }

func (n *Node) stringify(above Kind) string {
	switch n.kind {
	case KindEmpty:
		return "∅"
	case KindEpsilon:
		return "ε"
	case KindSymbol:
		return string(n.sym)
	case KindUnion:
		s := n.left.stringify(KindUnion) + "|" + n.right.stringify(KindUnion)
		if above == KindConcat || above == KindStar {
			return "(" + s + ")"
		}
		return s
	case KindConcat:
		s := n.left.stringify(KindConcat) + n.right.stringify(KindConcat)
		if above == KindStar {
			return "(" + s + ")"
		}
		return s
	case KindStar:
		return n.left.stringify(KindStar) + "*"
	}
	panic("unknown regex node")
}
