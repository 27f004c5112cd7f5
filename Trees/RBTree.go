package Trees

import (
	"cmp"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// color of a node in an RBTree. The zero value is red, so new nodes are red.
type color bool

const (
	red   color = false
	black color = true
)

func (c color) String() string {
	if c == red {
		return "red"
	}
	return "black"
}

// RBTree is a red-black tree with no repeated values. The root is black, a
// red node has no red children and every path from a node down to an empty
// subtree passes the same number of black nodes, so the height of the tree
// is at most 2*log2(n+1).
// T is the type of values it will hold, S is the type of the variables
// used for storing the sizes of different subtrees.
type RBTree[T cmp.Ordered, S constraints.Unsigned] struct {
	bst[T, S, color]
}

// NewRBTree returns an empty RBTree. At most one Config may be given.
func NewRBTree[T cmp.Ordered, S constraints.Unsigned](cfg ...Config) (*RBTree[T, S], error) {
	c, err := pickConfig(cfg)
	if err != nil {
		return nil, err
	}
	u := new(RBTree[T, S])
	u.init(c, pullSize[T, S, color])
	return u, nil
}

// BuildRBTree builds an RBTree from a strictly ascending slice. All levels but
// the deepest are full; the nodes on the deepest level are red, all others
// black. Returns an *InvalidSliceError if sli isn't strictly ascending.
// Time: O(n)
func BuildRBTree[T cmp.Ordered, S constraints.Unsigned](sli []T, cfg ...Config) (*RBTree[T, S], error) {
	u, err := NewRBTree[T, S](cfg...)
	if err != nil {
		return nil, err
	}
	deepest := bits.Len(uint(len(sli))) - 1
	err = u.build(sli, func(n *node[T, S, color], d int) {
		if d > 0 && d == deepest {
			n.m = red
		} else {
			n.m = black
		}
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

// colorOf n, where empty subtrees are black.
func colorOf[T cmp.Ordered, S constraints.Unsigned](n *node[T, S, color]) color {
	if n == nil {
		return black
	}
	return n.m
}

func child[T cmp.Ordered, S constraints.Unsigned, M any](n *node[T, S, M], left bool) *node[T, S, M] {
	if left {
		return n.l
	}
	return n.r
}

// rotateToward rotates n down to its left if left is true, to its right otherwise.
func (u *RBTree[T, S]) rotateToward(n *node[T, S, color], left bool) {
	if left {
		u.rotateLeft(n)
	} else {
		u.rotateRight(n)
	}
}

// Insert v into the tree. Returns an error wrapping ErrDuplicateKey if v is
// already in the tree.
// Time: O(log n)
func (u *RBTree[T, S]) Insert(v T) error {
	n, err := u.insertLocate(v)
	if err != nil {
		return err
	}
	u.insertFixup(n)
	return nil
}

// insertFixup restores the coloring after linking the red node n.
func (u *RBTree[T, S]) insertFixup(n *node[T, S, color]) {
	for p := n.p; colorOf(p) == red; p = n.p {
		g := p.p // p is red, so it isn't the root.
		left := p == g.l
		if uncle := child(g, !left); colorOf(uncle) == red {
			p.m, uncle.m, g.m = black, black, red
			n = g
			continue
		}
		if n.isLeft() != left { // LR or RL: turn into LL or RR.
			u.rotateToward(p, left)
			n, p = p, n
		}
		u.rotateToward(g, !left)
		p.m, g.m = black, red
		break
	}
	u.root.m = black
}

// Delete v from the tree. Returns an error wrapping ErrItemNotFound if v
// isn't in the tree.
// Time: O(log n)
func (u *RBTree[T, S]) Delete(v T) error {
	n := u.find(v)
	if n == nil {
		return itemNotFound(v)
	}
	u.remove(n)
	return nil
}

// RemoveAt deletes and returns the value of rank k.
// Time: O(log n)
func (u *RBTree[T, S]) RemoveAt(k S) (T, error) {
	n, err := u.at(k)
	if err != nil {
		return *new(T), err
	}
	v := n.v
	u.remove(n)
	return v, nil
}

func (u *RBTree[T, S]) remove(n *node[T, S, color]) {
	if r := u.unlink(n); r.gone.m == black {
		u.deleteFixup(r.child, r.p, r.left)
	}
}

// deleteFixup resolves the double black at x, the child of p on the side
// given by left. x may be nil.
func (u *RBTree[T, S]) deleteFixup(x, p *node[T, S, color], left bool) {
	for x != u.root && colorOf(x) == black {
		s := child(p, !left)
		assert(s != nil, "rbtree: double black without sibling")
		if s.m == red {
			s.m, p.m = black, red
			u.rotateToward(p, left)
			s = child(p, !left)
		}
		near, far := child(s, left), child(s, !left)
		if colorOf(near) == black && colorOf(far) == black {
			if p.m == red {
				p.m, s.m = black, red
				return
			}
			s.m = red
			x, p = p, p.p
			left = x.isLeft()
			continue
		}
		if colorOf(far) == black {
			near.m, s.m = black, red
			u.rotateToward(s, !left)
			s = child(p, !left)
			far = child(s, !left)
		}
		s.m, p.m, far.m = p.m, black, black
		u.rotateToward(p, left)
		x = u.root
	}
	if x != nil {
		x.m = black
	}
}

// Check validates the structure of the tree, including the coloring.
func (u *RBTree[T, S]) Check() error {
	if colorOf(u.root) != black {
		return corrupt("red root %v", u.root.v)
	}
	if err := u.check(func(n *node[T, S, color]) error {
		if n.m == red && (colorOf(n.l) == red || colorOf(n.r) == red) {
			return corrupt("red node %v has a red child", n.v)
		}
		return nil
	}); err != nil {
		return err
	}
	return u.checkBlackHeight()
}

// checkBlackHeight verifies that all paths from the root to an empty subtree
// have the same number of black nodes.
func (u *RBTree[T, S]) checkBlackHeight() error {
	type item struct {
		n      *node[T, S, color]
		blacks int
	}
	want := -1
	st := []item{{u.root, 0}}
	for len(st) > 0 {
		it := st[len(st)-1]
		st = st[:len(st)-1]
		if it.n == nil {
			if want < 0 {
				want = it.blacks
			} else if it.blacks != want {
				return corrupt("black height %d, want %d", it.blacks, want)
			}
			continue
		}
		b := it.blacks
		if it.n.m == black {
			b++
		}
		st = append(st, item{it.n.l, b}, item{it.n.r, b})
	}
	return nil
}
