// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import (
	"iter"
	"slices"
)

// Interval is a double-ended priority queue implemented as an interval
// heap: elements are grouped into pairs occupying slots (2k, 2k+1), with
// the even slot holding the pair's minimum and the odd slot its maximum.
// Each pair's [min,max] interval contains the intervals of both its child
// pairs, so slot 0 always holds the global minimum and slot 1 the global
// maximum (for a single element, slot 0 serves as both). Interval is not
// safe for concurrent use.
type Interval[T any] struct {
	less func(a, b T) bool
	data []T
}

// NewInterval creates an Interval heap ordered by less, which must be a
// strict weak ordering over T and is fixed for the lifetime of the heap.
// With WithData the heap is built over the supplied elements in O(n).
func NewInterval[T any](less func(a, b T) bool, opts ...Option[T]) *Interval[T] {
	var o options[T]
	for _, fn := range opts {
		fn(&o)
	}
	h := &Interval[T]{less: less}
	if o.data != nil {
		h.data = o.data
		h.heapify()
		return h
	}
	h.data = make([]T, 0, o.sliceCap)
	return h
}

// parentPair returns the min slot of the parent pair of the pair containing
// slot i. Only meaningful for i > 1.
func parentPair(i int) int {
	return (i - 2) / 4 * 2
}

// leftPair returns the min slot of the left child pair of the pair whose
// min slot is i. The right child pair, when present, starts at leftPair(i)+2.
func leftPair(i int) int {
	return (i + 1) * 2
}

// Len returns the number of elements in the heap.
func (h *Interval[T]) Len() int {
	return len(h.data)
}

// Empty returns true if the heap contains no elements.
func (h *Interval[T]) Empty() bool {
	return len(h.data) == 0
}

// Min returns the minimal element in the heap in O(1) without removing it.
// Min panics if the heap is empty.
func (h *Interval[T]) Min() T {
	if len(h.data) == 0 {
		panic("heap: Min called on an empty Interval heap")
	}
	return h.data[0]
}

// Max returns the maximal element in the heap in O(1) without removing it.
// Max panics if the heap is empty.
func (h *Interval[T]) Max() T {
	if len(h.data) == 0 {
		panic("heap: Max called on an empty Interval heap")
	}
	if len(h.data) > 1 {
		return h.data[1]
	}
	return h.data[0]
}

// Push inserts v into the heap in O(log n).
func (h *Interval[T]) Push(v T) {
	h.data = append(h.data, v)
	h.up(len(h.data) - 1)
}

// PushSeq inserts every element of seq into the heap. Inserting into an
// empty heap collects the sequence and rebuilds in O(n); otherwise each
// element costs O(log n).
func (h *Interval[T]) PushSeq(seq iter.Seq[T]) {
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

// PopMin removes and returns the minimal element in O(log n). It panics if
// the heap is empty.
func (h *Interval[T]) PopMin() T {
	if len(h.data) == 0 {
		panic("heap: PopMin called on an empty Interval heap")
	}
	n := len(h.data)
	v := h.data[0]
	if n == 1 {
		h.truncate(0)
		return v
	}
	// Refill the root's min slot from the tail. When n is even the tail
	// element is its pair's max, so the unpaired min slot left behind by
	// the removal has to be refilled from it as well.
	if n%2 == 1 {
		h.data[0] = h.data[n-1]
	} else {
		h.data[0] = h.data[n-2]
		h.data[n-2] = h.data[n-1]
	}
	h.truncate(n - 1)
	h.downMin(0)
	return v
}

// PopMax removes and returns the maximal element in O(log n). It panics if
// the heap is empty.
func (h *Interval[T]) PopMax() T {
	if len(h.data) == 0 {
		panic("heap: PopMax called on an empty Interval heap")
	}
	n := len(h.data)
	if n == 1 {
		v := h.data[0]
		h.truncate(0)
		return v
	}
	v := h.data[1]
	h.data[1] = h.data[n-1]
	h.truncate(n - 1)
	if n > 2 {
		h.downMax(1)
	}
	return v
}

// ReplaceMin replaces the minimal element with v in O(log n), returning the
// element it displaced. It is cheaper than a PopMin followed by a Push. It
// panics if the heap is empty.
func (h *Interval[T]) ReplaceMin(v T) T {
	if len(h.data) == 0 {
		panic("heap: ReplaceMin called on an empty Interval heap")
	}
	old := h.data[0]
	h.data[0] = v
	if len(h.data) > 1 {
		h.balancePair(0)
	}
	h.downMin(0)
	return old
}

// ReplaceMax replaces the maximal element with v in O(log n), returning the
// element it displaced. It is cheaper than a PopMax followed by a Push. It
// panics if the heap is empty.
func (h *Interval[T]) ReplaceMax(v T) T {
	if len(h.data) == 0 {
		panic("heap: ReplaceMax called on an empty Interval heap")
	}
	if len(h.data) == 1 {
		old := h.data[0]
		h.data[0] = v
		return old
	}
	old := h.data[1]
	h.data[1] = v
	h.balancePair(0)
	h.downMax(1)
	return old
}

// Reserve grows the heap's storage, if necessary, so that the next n pushes
// proceed without reallocation.
func (h *Interval[T]) Reserve(n int) {
	h.data = slices.Grow(h.data, n)
}

// Swap exchanges the contents and orderings of h and other in O(1). Both
// heaps are fully valid afterwards.
func (h *Interval[T]) Swap(other *Interval[T]) {
	h.data, other.data = other.data, h.data
	h.less, other.less = other.less, h.less
}

func (h *Interval[T]) truncate(n int) {
	var zero T
	h.data[n] = zero // don't pin the popped value
	h.data = h.data[:n]
}

// up bubbles the element at idx towards the root. The element is held
// aside; after fixing the local pair ordering, a single comparison against
// the parent pair decides whether it ascends the chain of min slots, the
// chain of max slots, or stays put, so only one of the two chains is ever
// walked.
func (h *Interval[T]) up(idx int) {
	v := h.data[idx]
	// Landed in a max slot below its pair's min: the min slot is the real
	// insertion point.
	if idx%2 == 1 && h.less(v, h.data[idx-1]) {
		h.data[idx] = h.data[idx-1]
		idx--
	}
	if p := parentPair(idx); idx > 1 && h.less(v, h.data[p]) {
		// Below the parent pair's min: ascend the min slots.
		for idx > 1 && h.less(v, h.data[parentPair(idx)]) {
			p = parentPair(idx)
			h.data[idx] = h.data[p]
			idx = p
		}
	} else if idx > 1 && h.less(h.data[p+1], v) {
		// Above the parent pair's max: ascend the max slots.
		for idx > 1 && h.less(h.data[parentPair(idx)+1], v) {
			p = parentPair(idx) + 1
			h.data[idx] = h.data[p]
			idx = p
		}
	}
	h.data[idx] = v
}

// downMin bubbles the min slot idx towards the leaves, descending into the
// child pair with the smaller min. The pair at idx must already be ordered.
// Swapping across pairs can break the ordering of the pair descended into,
// so it is re-checked after every swap.
func (h *Interval[T]) downMin(idx int) {
	n := len(h.data)
	c := leftPair(idx)
	for c < n {
		if c2 := c + 2; c2 < n && h.less(h.data[c2], h.data[c]) {
			c = c2
		}
		if !h.less(h.data[c], h.data[idx]) {
			break
		}
		h.data[idx], h.data[c] = h.data[c], h.data[idx]
		if c+1 < n && h.less(h.data[c+1], h.data[c]) {
			h.data[c], h.data[c+1] = h.data[c+1], h.data[c]
		}
		idx = c
		c = leftPair(idx)
	}
}

// downMax bubbles the max slot idx towards the leaves, descending into the
// child pair with the larger max. A trailing pair may consist of a lone min
// slot whose element is still a candidate max, which is why the child max
// candidates fall back to min slots when the max slot doesn't exist.
func (h *Interval[T]) downMax(idx int) {
	n := len(h.data)
	idx-- // min slot of the pair, child arithmetic works off it
	c := leftPair(idx)
	for c < n {
		c1 := c
		if c+1 < n {
			c1 = c + 1
		}
		c2 := c + 2
		if c+3 < n {
			c2 = c + 3
		}
		if c2 < n && h.less(h.data[c1], h.data[c2]) {
			c += 2
			c1 = c2
		}
		// c is the min slot of the chosen child pair, c1 the slot its max
		// candidate actually occupies.
		if !h.less(h.data[idx+1], h.data[c1]) {
			break
		}
		h.data[idx+1], h.data[c1] = h.data[c1], h.data[idx+1]
		if c1%2 == 1 && h.less(h.data[c1], h.data[c1-1]) {
			h.data[c1-1], h.data[c1] = h.data[c1], h.data[c1-1]
		}
		idx = c
		c = leftPair(idx)
	}
	if idx+1 < n && h.less(h.data[idx+1], h.data[idx]) {
		h.data[idx], h.data[idx+1] = h.data[idx+1], h.data[idx]
	}
}

// balancePair restores min <= max within the pair whose min slot is idx.
func (h *Interval[T]) balancePair(idx int) {
	if h.less(h.data[idx+1], h.data[idx]) {
		h.data[idx], h.data[idx+1] = h.data[idx+1], h.data[idx]
	}
}

// heapify establishes the interval heap invariant over h.data in O(n):
// order every full pair locally, then bubble each internal pair down,
// deepest first, max chain before min chain.
func (h *Interval[T]) heapify() {
	n := len(h.data)
	if n <= 2 {
		if n == 2 {
			h.balancePair(0)
		}
		return
	}
	for i := 0; i+1 < n; i += 2 {
		h.balancePair(i)
	}
	for i := (n - 1) / 4 * 2; i >= 0; i -= 2 {
		h.downMax(i + 1)
		h.downMin(i)
	}
}
