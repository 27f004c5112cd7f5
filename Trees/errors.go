package Trees

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateKey signals an insertion of a value already in the tree.
	ErrDuplicateKey = errors.New("trees: duplicate key")
	// ErrItemNotFound signals an operation on a value not in the tree.
	ErrItemNotFound = errors.New("trees: item not found")
	// ErrEmptyTree signals a minimum or maximum query on an empty tree.
	ErrEmptyTree = errors.New("trees: empty tree")
	// ErrIndexOutOfRange signals a rank outside of [0, Count).
	ErrIndexOutOfRange = errors.New("trees: index out of range")
	// ErrInvalidArgument signals malformed input: an unsorted slice given to
	// a bulk constructor, or a NaN value.
	ErrInvalidArgument = errors.New("trees: invalid argument")
	// ErrSizeOverflow signals an insertion into a tree holding the maximum
	// value of its size type in values.
	ErrSizeOverflow = errors.New("trees: size type exhausted")
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("trees: invalid configuration")
	// ErrCorrupt is returned by Check when a tree invariant does not hold.
	ErrCorrupt = errors.New("trees: corrupt tree")
)

// InvalidSliceError is returned when building a tree from a slice that isn't
// strictly ascending. Prev and Next are the offending neighbors, Next is at
// position Index.
type InvalidSliceError[T any] struct {
	Index      int
	Prev, Next T
}

func (e *InvalidSliceError[T]) Error() string {
	return fmt.Sprintf("%v: slice not strictly ascending at %d (%v, %v)", ErrInvalidArgument, e.Index, e.Prev, e.Next)
}

func (e *InvalidSliceError[T]) Unwrap() error {
	return ErrInvalidArgument
}

func corrupt(format string, args ...any) error {
	err := fmt.Errorf("%w: "+format, append([]any{ErrCorrupt}, args...)...)
	tracer().Errorf("%v", err)
	return err
}

func itemNotFound[T any](v T) error {
	return fmt.Errorf("%w: %v", ErrItemNotFound, v)
}

// isNaN reports whether v is a floating point NaN, the only value of an
// ordered type not equal to itself.
func isNaN[T comparable](v T) bool {
	return v != v
}
