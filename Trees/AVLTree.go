package Trees

import (
	"cmp"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// AVLTree is a binary search tree with no repeated values. It maintains
// balance through rotations by keeping the heights of the two subtrees of
// every node within 1 of each other.
// T is the type of values it will hold, S is the type of the variables
// used for storing the sizes of different subtrees.
// The height of the tree is less than 1.44*log2(n+2)-0.328.
type AVLTree[T cmp.Ordered, S constraints.Unsigned] struct {
	bst[T, S, int8]
}

// NewAVLTree returns an empty AVLTree. At most one Config may be given.
func NewAVLTree[T cmp.Ordered, S constraints.Unsigned](cfg ...Config) (*AVLTree[T, S], error) {
	c, err := pickConfig(cfg)
	if err != nil {
		return nil, err
	}
	u := new(AVLTree[T, S])
	u.init(c, pullHeight[T, S])
	return u, nil
}

// BuildAVLTree builds an AVLTree from a strictly ascending slice. This is
// faster than repeatedly calling Insert. Returns an *InvalidSliceError if sli
// isn't strictly ascending.
// Time: O(n)
func BuildAVLTree[T cmp.Ordered, S constraints.Unsigned](sli []T, cfg ...Config) (*AVLTree[T, S], error) {
	u, err := NewAVLTree[T, S](cfg...)
	if err != nil {
		return nil, err
	}
	// a range split in the middle has height floor(log2(size)).
	err = u.build(sli, func(n *node[T, S, int8], _ int) {
		n.m = int8(bits.Len64(uint64(n.sz)) - 1)
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

func height[T cmp.Ordered, S constraints.Unsigned](n *node[T, S, int8]) int8 {
	if n == nil {
		return -1
	}
	return n.m
}

// balance is the height of the left subtree minus the height of the right one.
func balance[T cmp.Ordered, S constraints.Unsigned](n *node[T, S, int8]) int8 {
	return height(n.l) - height(n.r)
}

func pullHeight[T cmp.Ordered, S constraints.Unsigned](n *node[T, S, int8]) {
	n.sz = n.l.size() + n.r.size() + 1
	n.m = max(height(n.l), height(n.r)) + 1
}

// Height of the tree, -1 for an empty tree.
// Time: O(1); Space: O(1)
func (u *AVLTree[T, S]) Height() int {
	return int(height(u.root))
}

// rebalance walks from n to the root, recomputing heights and rotating every
// node whose subtrees differ in height by 2.
// Time: O(D); Space: O(1)
func (u *AVLTree[T, S]) rebalance(n *node[T, S, int8]) {
	for ; n != nil; n = n.p {
		u.pull(n)
		if b := balance(n); b >= 2 {
			if balance(n.l) < 0 {
				u.rotateLeft(n.l)
			}
			u.rotateRight(n)
			n = n.p
		} else if b <= -2 {
			if balance(n.r) > 0 {
				u.rotateRight(n.r)
			}
			u.rotateLeft(n)
			n = n.p
		}
	}
}

// Insert v into the tree. Returns an error wrapping ErrDuplicateKey if v is
// already in the tree.
// Time: O(log n)
func (u *AVLTree[T, S]) Insert(v T) error {
	n, err := u.insertLocate(v)
	if err != nil {
		return err
	}
	u.rebalance(n.p)
	return nil
}

// Delete v from the tree. Returns an error wrapping ErrItemNotFound if v
// isn't in the tree.
// Time: O(log n)
func (u *AVLTree[T, S]) Delete(v T) error {
	n := u.find(v)
	if n == nil {
		return itemNotFound(v)
	}
	u.remove(n)
	return nil
}

// RemoveAt deletes and returns the value of rank k.
// Time: O(log n)
func (u *AVLTree[T, S]) RemoveAt(k S) (T, error) {
	n, err := u.at(k)
	if err != nil {
		return *new(T), err
	}
	v := n.v
	u.remove(n)
	return v, nil
}

func (u *AVLTree[T, S]) remove(n *node[T, S, int8]) {
	u.rebalance(u.unlink(n).p)
}

// Check validates the structure of the tree, including heights and balance.
func (u *AVLTree[T, S]) Check() error {
	return u.check(func(n *node[T, S, int8]) error {
		if h := max(height(n.l), height(n.r)) + 1; n.m != h {
			return corrupt("height of %v is %d, want %d", n.v, n.m, h)
		}
		if b := balance(n); b < -1 || b > 1 {
			return corrupt("balance of %v is %d", n.v, b)
		}
		return nil
	})
}
