// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import "testing"

func (h *Binary[T]) Verify(t *testing.T) {
	t.Helper()
	h.verify(t, 0)
}

func (h *Binary[T]) verify(t *testing.T, p int) {
	t.Helper()
	n := len(h.data)
	l, r := (2*p)+1, (2*p)+2
	if l < n {
		if h.less(h.data[l], h.data[p]) {
			t.Errorf("heap inconsistent: left sub tree for %v (%v > [%v]: %v)", p, h.data[p], l, h.data[l])
			return
		}
		h.verify(t, l)
	}
	if r < n {
		if h.less(h.data[r], h.data[p]) {
			t.Errorf("heap inconsistent: right sub tree for %v (%v > [%v]: %v)", p, h.data[p], r, h.data[r])
			return
		}
		h.verify(t, r)
	}
}

func (h *Interval[T]) Verify(t *testing.T) {
	t.Helper()
	n := len(h.data)
	for i := 0; i+1 < n; i += 2 {
		if h.less(h.data[i+1], h.data[i]) {
			t.Errorf("interval heap inconsistent: pair (%v, %v): min %v > max %v", i, i+1, h.data[i], h.data[i+1])
			return
		}
	}
	for i := 2; i < n; i++ {
		p := parentPair(i)
		if h.less(h.data[i], h.data[p]) {
			t.Errorf("interval heap inconsistent: [%v] %v below parent min [%v] %v", i, h.data[i], p, h.data[p])
			return
		}
		if h.less(h.data[p+1], h.data[i]) {
			t.Errorf("interval heap inconsistent: [%v] %v above parent max [%v] %v", i, h.data[i], p+1, h.data[p+1])
			return
		}
	}
}
