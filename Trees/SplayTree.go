package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// SplayTree is a self-adjusting binary search tree with no repeated values.
// Every access rotates the accessed node to the root, which gives amortized
// O(log n) operations without storing any balance information. Lookups
// (HasItem, Contains, IndexOf) restructure the tree too.
// T is the type of values it will hold, S is the type of the variables
// used for storing the sizes of different subtrees.
type SplayTree[T cmp.Ordered, S constraints.Unsigned] struct {
	bst[T, S, struct{}]
}

// NewSplayTree returns an empty SplayTree. At most one Config may be given.
func NewSplayTree[T cmp.Ordered, S constraints.Unsigned](cfg ...Config) (*SplayTree[T, S], error) {
	c, err := pickConfig(cfg)
	if err != nil {
		return nil, err
	}
	u := new(SplayTree[T, S])
	u.init(c, pullSize[T, S, struct{}])
	return u, nil
}

// BuildSplayTree builds a SplayTree from a strictly ascending slice. The
// result is balanced until the first access. Returns an *InvalidSliceError if
// sli isn't strictly ascending.
// Time: O(n)
func BuildSplayTree[T cmp.Ordered, S constraints.Unsigned](sli []T, cfg ...Config) (*SplayTree[T, S], error) {
	u, err := NewSplayTree[T, S](cfg...)
	if err != nil {
		return nil, err
	}
	if err = u.build(sli, nil); err != nil {
		return nil, err
	}
	return u, nil
}

// splay rotates x to the root by zig, zig-zig and zig-zag steps.
// Time: amortized O(log n)
func (u *SplayTree[T, S]) splay(x *node[T, S, struct{}]) {
	for x.p != nil {
		p := x.p
		g := p.p
		switch {
		case g == nil: // zig
			if x == p.l {
				u.rotateRight(p)
			} else {
				u.rotateLeft(p)
			}
		case x.isLeft() == p.isLeft(): // zig-zig
			if x == p.l {
				u.rotateRight(g)
				u.rotateRight(p)
			} else {
				u.rotateLeft(g)
				u.rotateLeft(p)
			}
		default: // zig-zag
			if x == p.l {
				u.rotateRight(p)
				u.rotateLeft(g)
			} else {
				u.rotateLeft(p)
				u.rotateRight(g)
			}
		}
	}
}

// access finds the node of v and splays it. If v isn't in the tree, the last
// node visited while searching is splayed instead and nil is returned.
func (u *SplayTree[T, S]) access(v T) *node[T, S, struct{}] {
	if u.idx != nil {
		n := u.lookup(v)
		if n != nil {
			u.splay(n)
		}
		return n
	}
	n, last := u.search(v)
	if last != nil {
		u.splay(last)
	}
	return n
}

// HasItem reports whether v is in the tree, splaying the node of v, or the
// node where the search for v ended.
// Time: amortized O(log n)
func (u *SplayTree[T, S]) HasItem(v T) bool {
	return u.access(v) != nil
}

// Contains is HasItem.
func (u *SplayTree[T, S]) Contains(v T) bool {
	return u.HasItem(v)
}

// IndexOf returns the rank of v, splaying it to the root first.
// Time: amortized O(log n)
func (u *SplayTree[T, S]) IndexOf(v T) (S, error) {
	if u.access(v) == nil {
		return 0, itemNotFound(v)
	}
	return u.root.l.size(), nil
}

// Insert v into the tree and splay it to the root. Returns an error wrapping
// ErrDuplicateKey if v is already in the tree, in which case the tree isn't
// modified.
// Time: amortized O(log n)
func (u *SplayTree[T, S]) Insert(v T) error {
	n, err := u.insertLocate(v)
	if err != nil {
		return err
	}
	u.splay(n)
	return nil
}

// Delete v from the tree and splay the parent of the removed node. Returns an
// error wrapping ErrItemNotFound if v isn't in the tree, in which case the
// tree isn't modified.
// Time: amortized O(log n)
func (u *SplayTree[T, S]) Delete(v T) error {
	n := u.find(v)
	if n == nil {
		return itemNotFound(v)
	}
	u.remove(n)
	return nil
}

// RemoveAt deletes and returns the value of rank k.
// Time: amortized O(log n)
func (u *SplayTree[T, S]) RemoveAt(k S) (T, error) {
	n, err := u.at(k)
	if err != nil {
		return *new(T), err
	}
	v := n.v
	u.remove(n)
	return v, nil
}

func (u *SplayTree[T, S]) remove(n *node[T, S, struct{}]) {
	if p := u.unlink(n).p; p != nil {
		u.splay(p)
	}
}

// Check validates the structure of the tree. A SplayTree has no balance
// invariant.
func (u *SplayTree[T, S]) Check() error {
	return u.check(nil)
}
