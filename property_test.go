// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package arrayqueue

import (
	"slices"
	"testing"

	"pgregory.net/rapid"
)

// TestQueueMatchesSliceModel drives a queue and a plain-slice model through
// random operation sequences and checks they never disagree.
func TestQueueMatchesSliceModel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		q, err := NewWithCapacity[int](rapid.IntRange(1, 8).Draw(t, "capacity"))
		if err != nil {
			t.Fatalf("NewWithCapacity: %v", err)
		}
		var model []int

		t.Repeat(map[string]func(*rapid.T){
			"push": func(t *rapid.T) {
				x := rapid.Int().Draw(t, "elem")
				q.Push(x)
				model = append(model, x)
			},
			"pop": func(t *rapid.T) {
				x, ok := q.Pop()
				if len(model) == 0 {
					if ok {
						t.Fatalf("Pop() of empty queue returned (%d, true)", x)
					}
					return
				}
				if !ok {
					t.Fatalf("Pop() returned !ok with %d elements queued", len(model))
				}
				if x != model[0] {
					t.Fatalf("Pop() = %d, want %d", x, model[0])
				}
				model = model[1:]
			},
			"peek": func(t *rapid.T) {
				x, ok := q.Peek()
				if len(model) == 0 {
					if ok {
						t.Fatalf("Peek() of empty queue returned (%d, true)", x)
					}
					return
				}
				if !ok || x != model[0] {
					t.Fatalf("Peek() = (%d, %t), want (%d, true)", x, ok, model[0])
				}
			},
			"clear": func(t *rapid.T) {
				q.Clear()
				model = model[:0]
			},
			"grow": func(t *rapid.T) {
				q.Grow(rapid.IntRange(0, 64).Draw(t, "cap"))
			},
			"": func(t *rapid.T) {
				if q.Len() != len(model) {
					t.Fatalf("Len() = %d, want %d", q.Len(), len(model))
				}
				if got := all(q.Clone()); !slices.Equal(got, model) {
					t.Fatalf("drained clone = %v, want %v", got, model)
				}
			},
		})
	})
}
