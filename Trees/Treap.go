package Trees

import (
	"cmp"
	"math/rand/v2"
	"slices"

	"golang.org/x/exp/constraints"
)

// Treap is a binary search tree with no repeated values whose nodes carry
// random priorities kept in min-heap order: no node has a smaller priority
// than its parent. The shape is that of a tree built by inserting the values
// in order of priority, so the expected height is O(log n).
// The priorities come from a source owned by the tree, seeded by Config.Seed.
type Treap[T cmp.Ordered, S constraints.Unsigned] struct {
	bst[T, S, uint64]
	rng *rand.Rand
}

// NewTreap returns an empty Treap. At most one Config may be given.
func NewTreap[T cmp.Ordered, S constraints.Unsigned](cfg ...Config) (*Treap[T, S], error) {
	c, err := pickConfig(cfg)
	if err != nil {
		return nil, err
	}
	u := &Treap[T, S]{rng: rand.New(rand.NewPCG(c.Seed, c.Seed>>32|c.Seed<<32))}
	u.init(c, pullSize[T, S, uint64])
	return u, nil
}

// BuildTreap builds a Treap from a strictly ascending slice. The nodes get
// random priorities in sorted order following the pre-order of the built
// tree, so every parent precedes its children. Returns an *InvalidSliceError
// if sli isn't strictly ascending.
// Time: O(n log n) for sorting the priorities.
func BuildTreap[T cmp.Ordered, S constraints.Unsigned](sli []T, cfg ...Config) (*Treap[T, S], error) {
	u, err := NewTreap[T, S](cfg...)
	if err != nil {
		return nil, err
	}
	ps := make([]uint64, len(sli))
	for i := range ps {
		ps[i] = u.rng.Uint64()
	}
	slices.Sort(ps)
	i := 0
	err = u.build(sli, func(n *node[T, S, uint64], _ int) {
		n.m = ps[i]
		i++
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

// heapify rotates n up while its priority is less than its parent's.
// Time: O(D)
func (u *Treap[T, S]) heapify(n *node[T, S, uint64]) {
	for n.p != nil && n.m < n.p.m {
		if n == n.p.l {
			u.rotateRight(n.p)
		} else {
			u.rotateLeft(n.p)
		}
	}
}

// Insert v into the tree. Returns an error wrapping ErrDuplicateKey if v is
// already in the tree.
// Time: expected O(log n)
func (u *Treap[T, S]) Insert(v T) error {
	n, err := u.insertLocate(v)
	if err != nil {
		return err
	}
	n.m = u.rng.Uint64()
	u.heapify(n)
	return nil
}

// Delete v from the tree. Returns an error wrapping ErrItemNotFound if v
// isn't in the tree.
// The node with two children keeps its priority when it takes over the
// value of its predecessor, and a spliced child already has a priority no
// less than the removed node's parent, so removal needs no rotations.
// Time: expected O(log n)
func (u *Treap[T, S]) Delete(v T) error {
	n := u.find(v)
	if n == nil {
		return itemNotFound(v)
	}
	u.unlink(n)
	return nil
}

// RemoveAt deletes and returns the value of rank k.
// Time: expected O(log n)
func (u *Treap[T, S]) RemoveAt(k S) (T, error) {
	n, err := u.at(k)
	if err != nil {
		return *new(T), err
	}
	v := n.v
	u.unlink(n)
	return v, nil
}

// Check validates the structure of the tree, including the heap order of
// the priorities.
func (u *Treap[T, S]) Check() error {
	return u.check(checkHeap[T, S])
}

func checkHeap[T cmp.Ordered, S constraints.Unsigned](n *node[T, S, uint64]) error {
	if n.l != nil && n.l.m < n.m {
		return corrupt("priority of %v is less than its parent %v", n.l.v, n.v)
	}
	if n.r != nil && n.r.m < n.m {
		return corrupt("priority of %v is less than its parent %v", n.r.v, n.v)
	}
	return nil
}
