package Trees

import (
	"iter"

	"github.com/g-m-twostay/bstrees/Queues"
)

// Ascend returns the values in ascending order. Each call of the returned
// sequence starts a new traversal. The tree mustn't be modified during an
// iteration.
// Time: O(n) for a full iteration; Space: O(1)
func (u *bst[T, S, M]) Ascend() iter.Seq[T] {
	return func(yield func(T) bool) {
		if u.root == nil {
			return
		}
		for n := u.root.min(); n != nil; n = n.next() {
			if !yield(n.v) {
				return
			}
		}
	}
}

// Descend returns the values in descending order, like Ascend.
func (u *bst[T, S, M]) Descend() iter.Seq[T] {
	return func(yield func(T) bool) {
		if u.root == nil {
			return
		}
		for n := u.root.max(); n != nil; n = n.prev() {
			if !yield(n.v) {
				return
			}
		}
	}
}

// InOrder returns a closure f acting like an iterator over the values in
// ascending order. Calling f is like calling "Next()" of iterators:
// val, valid=f(). val is meaningful only if valid is true; once valid is
// false, f is exhausted. The tree mustn't be modified while f is in use.
// Time: f(): amortized O(1) at each call; Space: O(1)
func (u *bst[T, S, M]) InOrder() func() (T, bool) {
	var cur *node[T, S, M]
	if u.root != nil {
		cur = u.root.min()
	}
	return func() (r T, has bool) {
		if cur == nil {
			return
		}
		r, has = cur.v, true
		cur = cur.next()
		return
	}
}

// levels visits the nodes in level order with their depth, the root having
// depth 0. The walk stops early when f returns false.
func (u *bst[T, S, M]) levels(f func(n *node[T, S, M], depth int) bool) {
	if u.root == nil {
		return
	}
	type item struct {
		n *node[T, S, M]
		d int
	}
	q := Queues.MakeArrayQueue[item](16)
	q.Push(item{u.root, 0})
	for !q.Empty() {
		it, _ := q.Pop()
		if !f(it.n, it.d) {
			return
		}
		if it.n.l != nil {
			q.Push(item{it.n.l, it.d + 1})
		}
		if it.n.r != nil {
			q.Push(item{it.n.r, it.d + 1})
		}
	}
}
