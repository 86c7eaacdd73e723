package regex

// LinearBase is the first synthetic symbol handed out by Linearize. Synthetic
// symbols come from the Unicode private-use area so they never collide with a
// meta-character.
const LinearBase rune = 0xE000

// Table maps a synthetic symbol back to the symbol it replaced.
type Table map[rune]rune

// Linearize rewrites the tree so every symbol occurrence is distinct: the k-th
// occurrence, left to right, becomes LinearBase+k.
func (n *Node) Linearize() (*Node, Table) {
	table := Table{}
	next := LinearBase
	var walk func(*Node) *Node
	walk = func(n *Node) *Node {
		switch n.kind {
		case KindSymbol:
			s := next
			next++
			table[s] = n.sym
			return Symbol(s)
		case KindUnion:
			l := walk(n.left)
			return Union(l, walk(n.right))
		case KindConcat:
			l := walk(n.left)
			return Concat(l, walk(n.right))
		case KindStar:
			return Star(walk(n.left))
		case KindEmpty:
			return Empty()
		}
		return Epsilon()
	}
	return walk(n), table
}

// Original returns the symbol s stood for, or s itself when it is not synthetic.
func (t Table) Original(s rune) rune {
	if o, ok := t[s]; ok {
		return o
	}
	return s
}

// UnLinearize undoes Linearize using its table.
func UnLinearize(n *Node, table Table) *Node {
	switch n.kind {
	case KindSymbol:
		return Symbol(table.Original(n.sym))
	case KindUnion:
		return Union(UnLinearize(n.left, table), UnLinearize(n.right, table))
	case KindConcat:
		return Concat(UnLinearize(n.left, table), UnLinearize(n.right, table))
	case KindStar:
		return Star(UnLinearize(n.left, table))
	case KindEmpty:
		return Empty()
	}
	return Epsilon()
}
