// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package arrayqueue provides a FIFO queue backed by a growable circular
// array. It trades memory for speed: pushes and pops are integer arithmetic
// on a contiguous buffer, faster than a linked list at the cost of the
// buffer never shrinking. It is best suited to queues with a soft
// steady-state size.
//
// A [Queue] is not safe for concurrent use. Interleaved mutation is,
// however, detected by outstanding iterators; see [Queue.Iter].
package arrayqueue

import "errors"

// DefaultCapacity is the starting capacity used by [New] and by the first
// push into a zero-value [Queue].
const DefaultCapacity = 10

// ErrInvalidCapacity is returned by [NewWithCapacity] for a non-positive
// requested capacity.
var ErrInvalidCapacity = errors.New("arrayqueue: starting capacity must be positive")

// A Queue is a FIFO container backed by a circular array that doubles in
// capacity whenever it fills. The zero value is an empty queue.
type Queue[T any] struct {
	ring  []T // len(ring) MUST == cap(ring)
	front int // oldest element; 0 <= front < len(ring)
	back  int // newest element; back == mod(front+n-1) whenever n > 0
	n     int // 0 <= n <= len(ring)

	// version is incremented on every structural mutation and lets
	// iterators detect that their snapshot is stale.
	version uint64
}

// New returns an empty queue with [DefaultCapacity].
func New[T any]() *Queue[T] {
	return &Queue[T]{ring: make([]T, DefaultCapacity)}
}

// NewWithCapacity returns an empty queue with the given starting capacity,
// i.e. the number of elements it can hold before it first has to grow. It
// returns [ErrInvalidCapacity] if the capacity isn't positive.
func NewWithCapacity[T any](capacity int) (*Queue[T], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Queue[T]{ring: make([]T, capacity)}, nil
}

func zero[T any]() (z T) { return }

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int {
	return q.n
}

// Cap returns the queue's current capacity. Capacity never decreases over
// the lifetime of a queue.
func (q *Queue[T]) Cap() int {
	return len(q.ring)
}

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.n == 0
}

func (q *Queue[T]) mod(i int) int {
	return i % len(q.ring)
}

// offset maps the logical index `i` (0 = oldest) to an index in the ring.
// All positional access goes through here. It returns false iff `i` is
// outside [0, q.n).
func (q *Queue[T]) offset(i int) (int, bool) {
	if i < 0 || i >= q.n {
		return 0, false
	}
	return q.mod(q.front + i), true
}

// Push appends `x` to the back of the queue. It cannot fail: if the queue
// is full its capacity is doubled, or set to [DefaultCapacity] for a
// zero-value queue.
func (q *Queue[T]) Push(x T) {
	if q.n == len(q.ring) {
		grow := 2 * len(q.ring)
		if grow == 0 {
			grow = DefaultCapacity
		}
		q.growTo(grow)
	}

	if q.n == 0 {
		q.back = q.front
	} else {
		q.back = q.mod(q.back + 1)
	}
	q.ring[q.back] = x
	q.n++
	q.version++
}

// Peek returns the oldest element without removing it. The boolean is
// false iff the queue is empty, distinguishing an absent element from a
// zero-valued one.
func (q *Queue[T]) Peek() (T, bool) {
	i, ok := q.offset(0)
	if !ok {
		return zero[T](), false
	}
	return q.ring[i], true
}

// Pop removes and returns the oldest element. The boolean is false iff the
// queue is empty, which is a normal outcome and not an error. The vacated
// slot is zeroed so the queue doesn't retain the element.
func (q *Queue[T]) Pop() (T, bool) {
	i, ok := q.offset(0)
	if !ok {
		return zero[T](), false
	}

	x := q.ring[i]
	q.ring[i] = zero[T]()
	q.front = q.mod(q.front + 1)
	q.n--
	q.version++
	return x, true
}

// Clear removes all elements, zeroing their slots. Capacity is unchanged.
func (q *Queue[T]) Clear() {
	if q.n == 0 {
		return
	}
	for i := range q.n {
		q.ring[q.mod(q.front+i)] = zero[T]()
	}
	q.n = 0
	q.version++
}

// Grow increases the queue's capacity to hold up to `n` elements without
// reallocating. It never shrinks: if `n` is at most the current capacity it
// is a no-op. This does not place a limit on the size of the queue, but
// pre-allocates memory.
func (q *Queue[T]) Grow(n int) {
	q.growTo(n)
}

// growTo reallocates the ring with capacity `c`, unwrapping the live
// elements to the start of the new buffer. It is O(q.Cap()).
func (q *Queue[T]) growTo(c int) {
	if c <= len(q.ring) {
		return
	}
	b := make([]T, c)
	copy(b, q.ring[q.front:])
	copy(b[len(q.ring)-q.front:], q.ring[:q.front])

	q.ring = b
	q.front = 0
	q.back = q.n - 1
	q.version++
}

// Clone returns an independent copy of the queue. Mutating either queue has
// no effect on the other, nor on the other's iterators.
func (q *Queue[T]) Clone() *Queue[T] {
	c := *q
	c.ring = make([]T, len(q.ring))
	copy(c.ring, q.ring)
	return &c
}
