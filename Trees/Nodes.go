package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// A node in a tree. m is the field of the balancing strategy: the height for
// AVLTree, the color for RBTree, the priority for Treap and nothing for SplayTree.
// sz is the size of the subtree rooted at the node, including itself.
// The nil *node is a valid empty subtree for the accessors below.
type node[T cmp.Ordered, S constraints.Unsigned, M any] struct {
	v       T
	p, l, r *node[T, S, M]
	sz      S
	m       M
}

func (n *node[T, S, M]) size() S {
	if n == nil {
		return 0
	}
	return n.sz
}

// isLeft reports whether n is the left child of its parent.
func (n *node[T, S, M]) isLeft() bool {
	return n.p != nil && n.p.l == n
}

func (n *node[T, S, M]) min() *node[T, S, M] {
	for n.l != nil {
		n = n.l
	}
	return n
}

func (n *node[T, S, M]) max() *node[T, S, M] {
	for n.r != nil {
		n = n.r
	}
	return n
}

// next returns the in-order successor of n, or nil.
// Time: amortized O(1) during a traversal; Space: O(1)
func (n *node[T, S, M]) next() *node[T, S, M] {
	if n.r != nil {
		return n.r.min()
	}
	for n.p != nil && n.p.r == n {
		n = n.p
	}
	return n.p
}

// prev returns the in-order predecessor of n, or nil.
func (n *node[T, S, M]) prev() *node[T, S, M] {
	if n.l != nil {
		return n.l.max()
	}
	for n.p != nil && n.p.l == n {
		n = n.p
	}
	return n.p
}

// rank is the number of values smaller than n.v, found by climbing to the root.
func (n *node[T, S, M]) rank() S {
	r := n.l.size()
	for ; n.p != nil; n = n.p {
		if n.p.r == n {
			r += n.p.l.size() + 1
		}
	}
	return r
}

// pullSize recomputes the size of n from its children.
func pullSize[T cmp.Ordered, S constraints.Unsigned, M any](n *node[T, S, M]) {
	n.sz = n.l.size() + n.r.size() + 1
}

// replace puts c in the position of o under p, which is o's parent. A nil p
// means o is the root.
func (u *bst[T, S, M]) replace(p, o, c *node[T, S, M]) {
	if p == nil {
		u.root = c
	} else if p.l == o {
		p.l = c
	} else {
		p.r = c
	}
	if c != nil {
		c.p = p
	}
}

// rotateLeft turns (x a (y b c)) into (y (x a b) c). x must have a right child.
// x is pulled before y.
// Time: O(1); Space: O(1)
func (u *bst[T, S, M]) rotateLeft(x *node[T, S, M]) {
	y := x.r
	x.r = y.l
	if y.l != nil {
		y.l.p = x
	}
	u.replace(x.p, x, y)
	y.l = x
	x.p = y
	u.pull(x)
	u.pull(y)
}

// rotateRight turns (x (y a b) c) into (y a (x b c)). x must have a left child.
// x is pulled before y.
// Time: O(1); Space: O(1)
func (u *bst[T, S, M]) rotateRight(x *node[T, S, M]) {
	y := x.l
	x.l = y.r
	if y.r != nil {
		y.r.p = x
	}
	u.replace(x.p, x, y)
	y.r = x
	x.p = y
	u.pull(x)
	u.pull(y)
}
