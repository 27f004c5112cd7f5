package Trees

import (
	"cmp"
	"fmt"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// bst is the skeleton shared by all trees: ordered insertion and removal
// points, rank and select through subtree sizes, neighbor queries and bulk
// construction. It never rebalances; the embedding tree does that after
// every structural change.
// Values are ordered by cmp.Compare. NaN values are rejected on insertion, a
// NaN query orders before every value and is never found.
type bst[T cmp.Ordered, S constraints.Unsigned, M any] struct {
	root *node[T, S, M]
	idx  index[T, *node[T, S, M]] // nil when the tree has no index.
	pull func(*node[T, S, M])     // recomputes the augmentation of a node from its children.
	kind IndexKind
}

func (u *bst[T, S, M]) init(cfg Config, pull func(*node[T, S, M])) {
	u.pull, u.kind = pull, cfg.Index
	u.idx = newIndex[T, *node[T, S, M]](cfg.Index)
	if u.idx != nil {
		tracer().Debugf("tree uses %v index", cfg.Index)
	}
}

// removal describes the outcome of unlinking a node.
type removal[T cmp.Ordered, S constraints.Unsigned, M any] struct {
	gone  *node[T, S, M] // the node taken out of the tree, its links cleared.
	child *node[T, S, M] // the node put in gone's position, may be nil.
	p     *node[T, S, M] // gone's former parent, the lowest changed node. nil if gone was the root.
	left  bool           // whether gone was the left child of p.
}

// Count of values in the tree.
// Time: O(1); Space: O(1)
func (u *bst[T, S, M]) Count() S {
	return u.root.size()
}

// Height of the tree, -1 for an empty tree and 0 for a single node.
// Time: O(n)
func (u *bst[T, S, M]) Height() int {
	h := -1
	u.levels(func(_ *node[T, S, M], d int) bool {
		h = max(h, d)
		return true
	})
	return h
}

// Clear removes all values.
// Time: O(1) without an index.
func (u *bst[T, S, M]) Clear() {
	u.root = nil
	if u.idx != nil {
		u.idx = newIndex[T, *node[T, S, M]](u.kind)
	}
}

// lookup asks the index for the node of v. An entry is only trusted if the
// node still holds v and is linked into the tree; anything else counts as a
// miss.
func (u *bst[T, S, M]) lookup(v T) *node[T, S, M] {
	n, ok := u.idx.Get(v)
	if !ok || n == nil || n.v != v || (n.p == nil && n != u.root) {
		return nil
	}
	return n
}

// search descends from the root towards v. found is the node holding v, last
// is the last node visited, which is found if v is in the tree.
// Time: O(D); Space: O(1)
func (u *bst[T, S, M]) search(v T) (found, last *node[T, S, M]) {
	for cur := u.root; cur != nil; {
		last = cur
		switch cmp.Compare(v, cur.v) {
		case -1:
			cur = cur.l
		case 1:
			cur = cur.r
		default:
			return cur, cur
		}
	}
	return nil, last
}

// find the node holding v or nil, using the index when there is one.
func (u *bst[T, S, M]) find(v T) *node[T, S, M] {
	if u.idx != nil {
		return u.lookup(v)
	}
	n, _ := u.search(v)
	return n
}

// HasItem reports whether v is in the tree.
// Time: O(D), O(1) on average with an index.
func (u *bst[T, S, M]) HasItem(v T) bool {
	return u.find(v) != nil
}

// Contains is HasItem.
func (u *bst[T, S, M]) Contains(v T) bool {
	return u.HasItem(v)
}

// FindMin returns the smallest value.
// Time: O(D); Space: O(1)
func (u *bst[T, S, M]) FindMin() (T, error) {
	if u.root == nil {
		return *new(T), fmt.Errorf("%w: no minimum", ErrEmptyTree)
	}
	return u.root.min().v, nil
}

// FindMax returns the largest value.
// Time: O(D); Space: O(1)
func (u *bst[T, S, M]) FindMax() (T, error) {
	if u.root == nil {
		return *new(T), fmt.Errorf("%w: no maximum", ErrEmptyTree)
	}
	return u.root.max().v, nil
}

// IndexOf returns the rank of v: the number of values in the tree smaller than v.
// Time: O(D); Space: O(1)
func (u *bst[T, S, M]) IndexOf(v T) (S, error) {
	if u.idx != nil {
		if n := u.lookup(v); n != nil {
			return n.rank(), nil
		}
		return 0, itemNotFound(v)
	}
	var r S
	for cur := u.root; cur != nil; {
		switch cmp.Compare(v, cur.v) {
		case -1:
			cur = cur.l
		case 1:
			r += cur.l.size() + 1
			cur = cur.r
		default:
			return r + cur.l.size(), nil
		}
	}
	return 0, itemNotFound(v)
}

// ElementAt returns the value of rank k, 0<=k<Count().
// Time: O(D); Space: O(1)
func (u *bst[T, S, M]) ElementAt(k S) (T, error) {
	n, err := u.at(k)
	if err != nil {
		return *new(T), err
	}
	return n.v, nil
}

func (u *bst[T, S, M]) at(k S) (*node[T, S, M], error) {
	if k >= u.Count() {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, k, u.Count())
	}
	cur := u.root
	for {
		if ls := cur.l.size(); k < ls {
			cur = cur.l
		} else if k > ls {
			k -= ls + 1
			cur = cur.r
		} else {
			return cur, nil
		}
	}
}

// NextLower returns the greatest value less than v. v doesn't have to be in
// the tree: for an absent v the result is the value that would precede v
// after inserting it. ok is false if there's no such value.
// Time: O(D); Space: O(1)
func (u *bst[T, S, M]) NextLower(v T) (r T, ok bool) {
	if u.idx != nil {
		if n := u.lookup(v); n != nil {
			if p := n.prev(); p != nil {
				return p.v, true
			}
			return
		}
	}
	var p *node[T, S, M]
	for cur := u.root; cur != nil; {
		if cmp.Less(cur.v, v) {
			p = cur
			cur = cur.r
		} else {
			cur = cur.l
		}
	}
	if p == nil {
		return
	}
	return p.v, true
}

// NextHigher returns the smallest value greater than v, following the same
// rules as NextLower.
// Time: O(D); Space: O(1)
func (u *bst[T, S, M]) NextHigher(v T) (r T, ok bool) {
	if u.idx != nil {
		if n := u.lookup(v); n != nil {
			if s := n.next(); s != nil {
				return s.v, true
			}
			return
		}
	}
	var s *node[T, S, M]
	for cur := u.root; cur != nil; {
		if cmp.Less(v, cur.v) {
			s = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if s == nil {
		return
	}
	return s.v, true
}

// insertLocate links a new node holding v at the insertion point and
// increments the sizes on the path. The strategy field of the new node is the
// zero value of M. Nothing changes if v is already in the tree, is NaN or the
// tree already holds the maximum value of S in values.
// Time: O(D); Space: O(1)
func (u *bst[T, S, M]) insertLocate(v T) (*node[T, S, M], error) {
	if isNaN(v) {
		return nil, fmt.Errorf("%w: cannot insert NaN", ErrInvalidArgument)
	}
	if u.idx != nil && u.lookup(v) != nil {
		return nil, fmt.Errorf("%w: %v", ErrDuplicateKey, v)
	}
	var p *node[T, S, M]
	left := false
	for cur := u.root; cur != nil; {
		p = cur
		switch cmp.Compare(v, cur.v) {
		case -1:
			cur, left = cur.l, true
		case 1:
			cur, left = cur.r, false
		default:
			return nil, fmt.Errorf("%w: %v", ErrDuplicateKey, v)
		}
	}
	if u.root.size() == ^S(0) {
		return nil, fmt.Errorf("%w: tree holds %d values", ErrSizeOverflow, u.root.size())
	}
	n := &node[T, S, M]{v: v, p: p, sz: 1}
	if p == nil {
		u.root = n
	} else if left {
		p.l = n
	} else {
		p.r = n
	}
	for a := p; a != nil; a = a.p {
		a.sz++
	}
	if u.idx != nil {
		u.idx.Set(v, n)
	}
	return n, nil
}

// unlink removes the value of n from the tree. A node with two children
// takes over the value of its in-order predecessor, which is then unlinked
// instead; the node actually taken out has at most one child, which is
// spliced into its position. Sizes on the path are decremented.
// n must be linked into the tree.
// Time: O(D); Space: O(1)
func (u *bst[T, S, M]) unlink(n *node[T, S, M]) removal[T, S, M] {
	assert(n.p != nil || n == u.root, "trees: unlinking a detached node")
	if n.l != nil && n.r != nil {
		pred := n.l.max()
		if u.idx != nil {
			u.idx.Del(n.v)
			u.idx.Set(pred.v, n)
		}
		n.v = pred.v
		n = pred
	} else if u.idx != nil {
		u.idx.Del(n.v)
	}
	c := n.l
	if c == nil {
		c = n.r
	}
	p := n.p
	left := n.isLeft()
	u.replace(p, n, c)
	for a := p; a != nil; a = a.p {
		a.sz--
	}
	n.p, n.l, n.r = nil, nil, nil
	return removal[T, S, M]{gone: n, child: c, p: p, left: left}
}

// build replaces the content of u with a tree holding the strictly ascending
// slice s. The middle element of each range becomes the root of its subtree,
// so the result is balanced by construction. visit is called once per node in
// pre-order, with the depth of the node, after the node is linked.
// Nothing changes if s isn't strictly ascending or holds a NaN.
// Time: O(n)
func (u *bst[T, S, M]) build(s []T, visit func(n *node[T, S, M], depth int)) error {
	for i := range s {
		if isNaN(s[i]) {
			return fmt.Errorf("%w: NaN at %d", ErrInvalidArgument, i)
		}
		if i > 0 && !cmp.Less(s[i-1], s[i]) {
			return &InvalidSliceError[T]{i, s[i-1], s[i]}
		}
	}
	if uint64(len(s)) > uint64(^S(0)) {
		return fmt.Errorf("%w: %d values overflow the size type", ErrInvalidArgument, len(s))
	}
	u.Clear()
	if len(s) == 0 {
		return nil
	}
	tracer().Debugf("building tree of %d values", len(s))
	type frame struct {
		lo, hi, depth int
		p             *node[T, S, M]
		left          bool
	}
	st := make([]frame, 0, 2*bits.Len(uint(len(s))))
	st = append(st, frame{0, len(s) - 1, 0, nil, false})
	for len(st) > 0 {
		f := st[len(st)-1]
		st = st[:len(st)-1]
		mid := int(uint(f.lo+f.hi) >> 1)
		n := &node[T, S, M]{v: s[mid], p: f.p, sz: S(f.hi - f.lo + 1)}
		if f.p == nil {
			u.root = n
		} else if f.left {
			f.p.l = n
		} else {
			f.p.r = n
		}
		if u.idx != nil {
			u.idx.Set(n.v, n)
		}
		if visit != nil {
			visit(n, f.depth)
		}
		if mid < f.hi {
			st = append(st, frame{mid + 1, f.hi, f.depth + 1, n, false})
		}
		if f.lo < mid {
			st = append(st, frame{f.lo, mid - 1, f.depth + 1, n, true})
		}
	}
	return nil
}
