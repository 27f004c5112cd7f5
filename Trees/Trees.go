package Trees

import (
	"cmp"
	"iter"

	"golang.org/x/exp/constraints"
)

// Tree is an ordered set of values supporting order statistics. Ranks are
// 0 based: the smallest value has rank 0.
// Methods returning an error fail before modifying the tree; the errors wrap
// one of the Err* sentinels of this package, test for them with errors.Is.
// Methods returning a bool as a second value report whether the first value
// is defined. Methods are implemented iteratively.
type Tree[T cmp.Ordered, S constraints.Unsigned] interface {
	// Insert v to the Tree. Fails with ErrDuplicateKey if v is already there,
	// with ErrSizeOverflow if Count() is the maximum value of S and with
	// ErrInvalidArgument if v is NaN.
	Insert(v T) error
	// Delete v from the Tree. Fails with ErrItemNotFound if v isn't there.
	Delete(v T) error
	// HasItem reports whether v is in the Tree.
	HasItem(v T) bool
	// Contains is HasItem.
	Contains(v T) bool
	// FindMin returns the smallest value. Fails with ErrEmptyTree.
	FindMin() (T, error)
	// FindMax returns the largest value. Fails with ErrEmptyTree.
	FindMax() (T, error)
	// IndexOf returns the rank of v. Fails with ErrItemNotFound.
	IndexOf(v T) (S, error)
	// ElementAt returns the value of rank k. Fails with ErrIndexOutOfRange
	// unless 0<=k<Count().
	ElementAt(k S) (T, error)
	// RemoveAt deletes and returns the value of rank k. Fails like ElementAt.
	RemoveAt(k S) (T, error)
	// NextLower returns the greatest value less than v, whether v is in the
	// tree or not.
	NextLower(v T) (T, bool)
	// NextHigher returns the smallest value greater than v, whether v is in
	// the tree or not.
	NextHigher(v T) (T, bool)
	// Count of values in the Tree.
	Count() S
	// Height of the Tree, -1 if it is empty.
	Height() int
	// Clear removes all values.
	Clear()
	// Ascend yields the values in ascending order.
	Ascend() iter.Seq[T]
	// Descend yields the values in descending order.
	Descend() iter.Seq[T]
	// InOrder returns a closure function f acting like an iterator. f
	// gives values in the in-order traversal of the tree: val, valid=f().
	// val is meaningful only if valid is true. valid can't turn true after
	// it first became false.
	InOrder() func() (T, bool)
	// Check returns an error wrapping ErrCorrupt if the structure violates
	// the properties of that specific implementation.
	Check() error
}

var (
	_ Tree[int, uint] = (*AVLTree[int, uint])(nil)
	_ Tree[int, uint] = (*RBTree[int, uint])(nil)
	_ Tree[int, uint] = (*SplayTree[int, uint])(nil)
	_ Tree[int, uint] = (*Treap[int, uint])(nil)
)
