package Trees

import (
	"fmt"
	"io"
	"strings"
)

// toDot writes the tree in Graphviz DOT format. style returns extra node
// attributes, starting with a comma, or "".
func (u *bst[T, S, M]) toDot(w io.Writer, style func(*node[T, S, M]) string) error {
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	b.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	ids := make(map[*node[T, S, M]]int, int(u.Count()))
	var edges strings.Builder
	nils := 0
	edge := func(from int, to *node[T, S, M]) {
		if to == nil {
			nils++
			fmt.Fprintf(&b, "\t\"nil%d\" [label=\"\",shape=point];\n", nils)
			fmt.Fprintf(&edges, "\t\"%d\" -> \"nil%d\";\n", from, nils)
			return
		}
		fmt.Fprintf(&edges, "\t\"%d\" -> \"%d\";\n", from, ids[to])
	}
	u.levels(func(n *node[T, S, M], _ int) bool {
		ids[n] = len(ids) + 1
		return true
	})
	u.levels(func(n *node[T, S, M], _ int) bool {
		id := ids[n]
		fmt.Fprintf(&b, "\t\"%d\" [label=\"%v\\n#%d\"%s];\n", id, n.v, n.sz, style(n))
		if n.l != nil || n.r != nil {
			edge(id, n.l)
			edge(id, n.r)
		}
		return true
	})
	b.WriteString(edges.String())
	b.WriteString("}\n")
	if _, err := io.WriteString(w, b.String()); err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
		return err
	}
	return nil
}

// ToDot outputs the internal structure of the tree in Graphviz DOT format
// (for debugging purposes).
func (u *AVLTree[T, S]) ToDot(w io.Writer) error {
	return u.toDot(w, func(n *node[T, S, int8]) string {
		return fmt.Sprintf(",xlabel=\"h=%d\"", n.m)
	})
}

// ToDot outputs the internal structure of the tree in Graphviz DOT format
// (for debugging purposes).
func (u *RBTree[T, S]) ToDot(w io.Writer) error {
	return u.toDot(w, func(n *node[T, S, color]) string {
		if n.m == red {
			return ",style=filled,fillcolor=red,fontcolor=white"
		}
		return ",style=filled,fillcolor=black,fontcolor=white"
	})
}

// ToDot outputs the internal structure of the tree in Graphviz DOT format
// (for debugging purposes).
func (u *SplayTree[T, S]) ToDot(w io.Writer) error {
	return u.toDot(w, func(*node[T, S, struct{}]) string { return "" })
}

// ToDot outputs the internal structure of the tree in Graphviz DOT format
// (for debugging purposes).
func (u *Treap[T, S]) ToDot(w io.Writer) error {
	return u.toDot(w, func(n *node[T, S, uint64]) string {
		return fmt.Sprintf(",xlabel=\"p=%d\"", n.m)
	})
}
