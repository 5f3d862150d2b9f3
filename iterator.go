// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package arrayqueue

import (
	"errors"
	"iter"
)

var (
	// ErrConcurrentModification is reported by [Iterator.Err] when the
	// queue was structurally modified after the iterator's creation.
	ErrConcurrentModification = errors.New("arrayqueue: queue modified during iteration")
	// ErrRemoveUnsupported is always returned by [Iterator.Remove].
	ErrRemoveUnsupported = errors.New("arrayqueue: removal via iterator is not supported")
)

// An Iterator is a read-only, forward-only traversal of a queue's elements
// in oldest-to-newest order. It snapshots the queue's version at creation
// and fails fast when the queue is mutated underneath it, rather than
// yielding stale or corrupted elements.
type Iterator[T any] struct {
	q       *Queue[T]
	version uint64
	size    int

	pos int
	cur T
	err error
}

// Iter returns an iterator over the queue's current elements. Creating an
// iterator has no effect on the queue; any number may be outstanding, but
// all of them are invalidated by the next structural mutation (push, pop,
// clear, or growth).
func (q *Queue[T]) Iter() *Iterator[T] {
	return &Iterator[T]{
		q:       q,
		version: q.version,
		size:    q.n,
	}
}

// Next advances to the next element, reporting whether one is available via
// [Iterator.Value]. It returns false at the end of the sequence, or when
// mutation of the queue is detected; the two are distinguished by
// [Iterator.Err].
func (it *Iterator[T]) Next() bool {
	if it.err != nil {
		return false
	}
	if it.q.version != it.version {
		it.err = ErrConcurrentModification
		it.cur = zero[T]()
		return false
	}
	if it.pos >= it.size {
		return false
	}

	i, ok := it.q.offset(it.pos)
	if !ok {
		// Unreachable while the version matches: pos < size implies a
		// valid logical index.
		panic("arrayqueue: iterator position outside live elements")
	}
	it.cur = it.q.ring[i]
	it.pos++
	return true
}

// Value returns the element produced by the last successful call to
// [Iterator.Next].
func (it *Iterator[T]) Value() T {
	return it.cur
}

// Err returns nil, or [ErrConcurrentModification] once the iterator has
// detected mutation of the queue. The fault is sticky: a new iterator must
// be created to resume traversal.
func (it *Iterator[T]) Err() error {
	return it.err
}

// Remove always returns [ErrRemoveUnsupported]. The method exists only to
// make the restriction explicit: elements leave the queue via [Queue.Pop],
// never via traversal.
func (it *Iterator[T]) Remove() error {
	return ErrRemoveUnsupported
}

// All returns an iter.Seq over the queue's elements in oldest-to-newest
// order. Because a range-over-func sequence has no error channel, All
// panics with [ErrConcurrentModification] if the queue is structurally
// modified mid-iteration; use [Queue.Iter] to handle the fault as a value.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := q.Iter()
		for it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
		if err := it.Err(); err != nil {
			panic(err)
		}
	}
}
