// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package heap contains array-backed priority queue containers: Binary, a
// single-ended binary min-heap, and Interval, a double-ended interval heap
// providing O(1) access to both the minimum and the maximum. Both are generic
// over the element type, with the ordering supplied as a comparison function
// at construction time.
package heap

import "golang.org/x/exp/constraints"

type options[T any] struct {
	sliceCap int
	data     []T
}

// Option represents the options that can be passed to NewBinary and
// NewInterval.
type Option[T any] func(*options[T])

// WithSliceCap sets the initial capacity of the slice used to hold the
// heap's elements.
func WithSliceCap[T any](n int) Option[T] {
	return func(o *options[T]) {
		o.sliceCap = n
	}
}

// WithData sets the initial data for the heap. The heap takes ownership of
// the slice and reorders it in place in O(n); callers that need to retain
// the original ordering should pass a copy.
func WithData[T any](data []T) Option[T] {
	return func(o *options[T]) {
		o.data = data
	}
}

// NewMin returns a Binary heap ordered by the natural ordering of K, ie.
// its top is the smallest element.
func NewMin[K constraints.Ordered](opts ...Option[K]) *Binary[K] {
	return NewBinary(func(a, b K) bool { return a < b }, opts...)
}

// NewMax returns a Binary heap ordered by the reversed natural ordering of
// K, ie. its top is the largest element.
func NewMax[K constraints.Ordered](opts ...Option[K]) *Binary[K] {
	return NewBinary(func(a, b K) bool { return a > b }, opts...)
}

// NewMinMax returns an Interval heap ordered by the natural ordering of K.
func NewMinMax[K constraints.Ordered](opts ...Option[K]) *Interval[K] {
	return NewInterval(func(a, b K) bool { return a < b }, opts...)
}
