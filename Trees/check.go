package Trees

import "cmp"

// check validates the invariants shared by all trees: parent links, subtree
// sizes, strictly ascending in-order values and the consistency of the index.
// local checks the strategy invariant of a single node and may be nil.
// Returns an error wrapping ErrCorrupt describing the first violation found.
// Time: O(n)
func (u *bst[T, S, M]) check(local func(*node[T, S, M]) error) (err error) {
	if u.root != nil && u.root.p != nil {
		return corrupt("root %v has a parent", u.root.v)
	}
	u.levels(func(n *node[T, S, M], _ int) bool {
		switch {
		case n.l != nil && n.l.p != n:
			err = corrupt("left child of %v doesn't link back", n.v)
		case n.r != nil && n.r.p != n:
			err = corrupt("right child of %v doesn't link back", n.v)
		case n.sz != n.l.size()+n.r.size()+1:
			err = corrupt("size of %v is %d, want %d", n.v, n.sz, n.l.size()+n.r.size()+1)
		case local != nil:
			err = local(n)
		}
		return err == nil
	})
	if err != nil {
		return err
	}
	var prev *node[T, S, M]
	if u.root != nil {
		for n := u.root.min(); n != nil; n = n.next() {
			if prev != nil && !cmp.Less(prev.v, n.v) {
				return corrupt("%v follows %v in order", n.v, prev.v)
			}
			if u.idx != nil {
				if in, _ := u.idx.Get(n.v); in != n {
					return corrupt("index entry of %v points elsewhere", n.v)
				}
			}
			prev = n
		}
	}
	if u.idx != nil && u.idx.Len() != int(u.Count()) {
		return corrupt("index holds %d values, tree holds %d", u.idx.Len(), u.Count())
	}
	return nil
}
