/*
Package Trees implements generic, in-memory binary search trees with order
statistics.

All trees share one BST skeleton: every node knows its parent and the size of
the subtree rooted at it, so rank (IndexOf) and select (ElementAt) run in time
proportional to the height of the tree. On top of the skeleton each tree type
adds its own balancing discipline:

	AVLTree    height balance, |h(l)-h(r)| <= 1 at every node
	RBTree     red-black coloring, height <= 2*log2(n+1)
	SplayTree  move-to-root on access, amortized O(log n)
	Treap      random priorities kept in min-heap order

Values must be of a cmp.Ordered type; a tree holds every value at most once.
The size type S holds subtree sizes and ranks, pick it wide enough for the
largest tree you intend to build.

Trees are not safe for concurrent use. A SplayTree restructures itself on
lookups, so even concurrent readers need external synchronization.

An optional value-to-node index (see Config) makes lookups O(1) on average;
the index is updated within the same call as every structural change.
*/
package Trees

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bstrees'
func tracer() tracing.Trace {
	return tracing.Select("bstrees")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
