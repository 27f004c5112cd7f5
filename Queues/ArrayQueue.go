// Package Queues provides a FIFO queue over a circular array.
package Queues

import "errors"

// ErrEmptyQueue is returned by Pop on an empty queue.
var ErrEmptyQueue = errors.New("queues: pop from empty queue")

// ArrayQueue is a FIFO queue backed by a circular array that grows on demand.
// It is not safe for concurrent use.
type ArrayQueue[T any] interface {
	Push(item T)
	// Pop the oldest item. Fails with ErrEmptyQueue.
	Pop() (T, error)
	// Peek at the oldest item without removing it. ok is false if the queue
	// is empty.
	Peek() (item T, ok bool)
	Empty() bool
	// Shrink the backing array to the number of items held.
	Shrink()
	// Clear removes all items, keeping the backing array.
	Clear()
	Size() uint
}

// circArrQ holds sz items in content[head], content[head+1], ... wrapping
// around at len(content). tail is the slot of the next Push.
type circArrQ[T any] struct {
	sz, head, tail uint
	content        []T
}

// MakeArrayQueue with room for initCap items before the first resize.
func MakeArrayQueue[T any](initCap uint) ArrayQueue[T] {
	return &circArrQ[T]{content: make([]T, max(initCap, 1))}
}

func (u *circArrQ[T]) Empty() bool {
	return u.sz == 0
}

// resize moves the items to a new array of length newLen>=sz, starting at 0.
func (u *circArrQ[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if u.head < u.tail || u.sz == 0 {
		copy(nc, u.content[u.head:u.tail])
	} else {
		n := copy(nc, u.content[u.head:])
		copy(nc[n:], u.content[:u.tail])
	}
	u.content, u.head, u.tail = nc, 0, u.sz%newLen
}

func (u *circArrQ[T]) Shrink() {
	u.resize(max(u.sz, 1))
}

func (u *circArrQ[T]) Clear() {
	clear(u.content)
	u.tail, u.head, u.sz = 0, 0, 0
}

func (u *circArrQ[T]) Size() uint {
	return u.sz
}

// Push an item, growing the array by half when it is full.
// Time: amortized O(1)
func (u *circArrQ[T]) Push(item T) {
	if u.sz == uint(len(u.content)) {
		u.resize(u.sz + u.sz>>1 + 1)
	}
	u.content[u.tail] = item
	u.tail = (u.tail + 1) % uint(len(u.content))
	u.sz++
}

func (u *circArrQ[T]) Pop() (T, error) {
	if u.Empty() {
		return *new(T), ErrEmptyQueue
	}
	t := u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return t, nil
}

func (u *circArrQ[T]) Peek() (item T, ok bool) {
	if u.Empty() {
		return
	}
	return u.content[u.head], true
}
