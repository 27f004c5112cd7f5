package Trees

import (
	"fmt"
	"io"
	"strings"

	fcolor "github.com/fatih/color"
)

// redNode renders red nodes, unless output isn't a color terminal.
var redNode = fcolor.New(fcolor.FgRed, fcolor.Bold)

// fprint writes the tree sideways to w, one node per line, the largest value
// first and every node indented by its depth. label renders a node.
// Time: O(n*D)
func (u *bst[T, S, M]) fprint(w io.Writer, label func(*node[T, S, M]) string) error {
	if u.root == nil {
		_, err := io.WriteString(w, "(empty)\n")
		return err
	}
	for n := u.root.max(); n != nil; n = n.prev() {
		d := 0
		for a := n.p; a != nil; a = a.p {
			d++
		}
		if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("    ", d), label(n)); err != nil {
			tracer().Errorf("tree print: %s", err.Error())
			return err
		}
	}
	return nil
}

// Fprint writes the tree sideways to w with the height of every node (for
// debugging purposes).
func (u *AVLTree[T, S]) Fprint(w io.Writer) error {
	return u.fprint(w, func(n *node[T, S, int8]) string {
		return fmt.Sprintf("%v h=%d", n.v, n.m)
	})
}

// Fprint writes the tree sideways to w, red nodes in red if w is a color
// terminal (for debugging purposes).
func (u *RBTree[T, S]) Fprint(w io.Writer) error {
	return u.fprint(w, func(n *node[T, S, color]) string {
		if n.m == red {
			return redNode.Sprintf("%v", n.v)
		}
		return fmt.Sprintf("%v", n.v)
	})
}

// Fprint writes the tree sideways to w (for debugging purposes).
func (u *SplayTree[T, S]) Fprint(w io.Writer) error {
	return u.fprint(w, func(n *node[T, S, struct{}]) string {
		return fmt.Sprintf("%v", n.v)
	})
}

// Fprint writes the tree sideways to w with the priority of every node (for
// debugging purposes).
func (u *Treap[T, S]) Fprint(w io.Writer) error {
	return u.fprint(w, func(n *node[T, S, uint64]) string {
		return fmt.Sprintf("%v p=%d", n.v, n.m)
	})
}
