// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import (
	"iter"
	"slices"
)

// Binary is a single-ended priority queue over an implicit binary tree
// stored in a slice: the element at i sorts no later than its children at
// 2i+1 and 2i+2, so the element at 0 is always the minimum under the heap's
// ordering. Binary is not safe for concurrent use.
type Binary[T any] struct {
	less func(a, b T) bool
	data []T
}

// NewBinary creates a Binary heap ordered by less, which must be a strict
// weak ordering over T and is fixed for the lifetime of the heap. With
// WithData the heap is built over the supplied elements in O(n).
func NewBinary[T any](less func(a, b T) bool, opts ...Option[T]) *Binary[T] {
	var o options[T]
	for _, fn := range opts {
		fn(&o)
	}
	h := &Binary[T]{less: less}
	if o.data != nil {
		h.data = o.data
		h.heapify()
		return h
	}
	h.data = make([]T, 0, o.sliceCap)
	return h
}

// Len returns the number of elements in the heap.
func (h *Binary[T]) Len() int {
	return len(h.data)
}

// Empty returns true if the heap contains no elements.
func (h *Binary[T]) Empty() bool {
	return len(h.data) == 0
}

// Top returns the minimal element in the heap in O(1) without removing it.
// Top panics if the heap is empty.
func (h *Binary[T]) Top() T {
	if len(h.data) == 0 {
		panic("heap: Top called on an empty Binary heap")
	}
	return h.data[0]
}

// Min is an alias for Top.
func (h *Binary[T]) Min() T {
	return h.Top()
}

// Push inserts v into the heap in O(log n).
func (h *Binary[T]) Push(v T) {
	h.data = append(h.data, v)
	h.up(len(h.data) - 1)
}

// PushSeq inserts every element of seq into the heap. Inserting into an
// empty heap collects the sequence and rebuilds in O(n); otherwise each
// element costs O(log n).
func (h *Binary[T]) PushSeq(seq iter.Seq[T]) {
	if len(h.data) == 0 {
		for v := range seq {
			h.data = append(h.data, v)
		}
		h.heapify()
		return
	}
	for v := range seq {
		h.Push(v)
	}
}

// Pop removes and returns the minimal element in O(log n). It panics if the
// heap is empty.
//
// Rather than moving the last element to the root and bubbling it down
// (worst case two comparisons per level), Pop first sinks the hole left by
// the removed root to a leaf, promoting the smaller child at each level
// (one comparison per level), and only then moves the last element into the
// hole and bubbles it up. The last element rarely travels far up, so the
// expected comparison count is lower than for the textbook algorithm.
func (h *Binary[T]) Pop() T {
	if len(h.data) == 0 {
		panic("heap: Pop called on an empty Binary heap")
	}
	v := h.data[0]
	i := h.holeDown(0)
	n := len(h.data) - 1
	if i != n {
		h.data[i] = h.data[n]
	}
	var zero T
	h.data[n] = zero // don't pin the popped value
	h.data = h.data[:n]
	if i != n {
		h.up(i)
	}
	return v
}

// ReplaceTop replaces the minimal element with v in O(log n), returning the
// element it displaced. It is cheaper than a Pop followed by a Push. It
// panics if the heap is empty.
func (h *Binary[T]) ReplaceTop(v T) T {
	if len(h.data) == 0 {
		panic("heap: ReplaceTop called on an empty Binary heap")
	}
	old := h.data[0]
	h.data[0] = v
	h.down(0)
	return old
}

// ReplaceMin is an alias for ReplaceTop.
func (h *Binary[T]) ReplaceMin(v T) T {
	return h.ReplaceTop(v)
}

// Reserve grows the heap's storage, if necessary, so that the next n pushes
// proceed without reallocation.
func (h *Binary[T]) Reserve(n int) {
	h.data = slices.Grow(h.data, n)
}

// Swap exchanges the contents and orderings of h and other in O(1). Both
// heaps are fully valid afterwards.
func (h *Binary[T]) Swap(other *Binary[T]) {
	h.data, other.data = other.data, h.data
	h.less, other.less = other.less, h.less
}

// up bubbles the element at i towards the root. The element is held aside
// and parents are shifted down until its resting place is found, so each
// level costs one comparison and one move rather than a three move swap.
func (h *Binary[T]) up(i int) {
	v := h.data[i]
	for i > 0 {
		p := (i - 1) / 2
		if !h.less(v, h.data[p]) {
			break
		}
		h.data[i] = h.data[p]
		i = p
	}
	h.data[i] = v
}

// down bubbles the element at i towards the leaves, descending into the
// smaller child at each level.
func (h *Binary[T]) down(i int) {
	n := len(h.data)
	v := h.data[i]
	for {
		c := 2*i + 1
		if c >= n || c < 0 { // c < 0 after int overflow
			break
		}
		if r := c + 1; r < n && h.less(h.data[r], h.data[c]) {
			c = r
		}
		if !h.less(h.data[c], v) {
			break
		}
		h.data[i] = h.data[c]
		i = c
	}
	h.data[i] = v
}

// holeDown sinks a hole at i to a leaf, moving the smaller child up into
// the hole at each level, and returns the index the hole ends up at.
func (h *Binary[T]) holeDown(i int) int {
	n := len(h.data)
	for {
		c := 2*i + 1
		if c >= n || c < 0 {
			break
		}
		if r := c + 1; r < n && h.less(h.data[r], h.data[c]) {
			c = r
		}
		h.data[i] = h.data[c]
		i = c
	}
	return i
}

// heapify establishes the heap invariant over h.data in O(n).
func (h *Binary[T]) heapify() {
	for i := len(h.data)/2 - 1; i >= 0; i-- {
		h.down(i)
	}
}
