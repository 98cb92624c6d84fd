// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package packed provides multi-slice buffers: several fixed-size slices of
// distinct element types laid out, at correctly aligned offsets, within a
// single allocation. Packing related arrays into one block improves memory
// locality and reduces allocator traffic compared with allocating each slice
// separately.
//
// Element types must be free of pointers (no pointers, maps, slices,
// strings, channels, functions or interfaces, directly or via embedded
// fields) since the shared block is untyped as far as the garbage collector
// is concerned.
package packed

import (
	"fmt"
	"reflect"
	"unsafe"

	"cloudeng.io/errors"
)

// Slices2 holds two typed slices packed into one allocation. The slices
// must not be appended to or re-sliced beyond their capacity; their
// contents may be read and written freely.
type Slices2[A, B any] struct {
	A []A
	B []B

	buf []byte
}

// Slices3 holds three typed slices packed into one allocation.
type Slices3[A, B, C any] struct {
	A []A
	B []B
	C []C

	buf []byte
}

// NewSlices2 creates a Slices2 with len(A) == na and len(B) == nb. It
// returns an error if a count is negative or an element type contains
// pointers. Counts may be zero, in which case the corresponding view is
// empty.
func NewSlices2[A, B any](na, nb int) (*Slices2[A, B], error) {
	errs := errors.M{}
	errs.Append(checkField[A]("A", na))
	errs.Append(checkField[B]("B", nb))
	if err := errs.Err(); err != nil {
		return nil, err
	}
	offA := uintptr(0)
	offB := alignUp(offA+sizeOf[A]()*uintptr(na), alignOf[B]())
	total := offB + sizeOf[B]()*uintptr(nb)
	buf := newBuffer(total)
	return &Slices2[A, B]{
		A:   view[A](buf, offA, na),
		B:   view[B](buf, offB, nb),
		buf: buf,
	}, nil
}

// NewSlices3 creates a Slices3 with len(A) == na, len(B) == nb and
// len(C) == nc. It returns an error if a count is negative or an element
// type contains pointers. Counts may be zero, in which case the
// corresponding view is empty.
func NewSlices3[A, B, C any](na, nb, nc int) (*Slices3[A, B, C], error) {
	errs := errors.M{}
	errs.Append(checkField[A]("A", na))
	errs.Append(checkField[B]("B", nb))
	errs.Append(checkField[C]("C", nc))
	if err := errs.Err(); err != nil {
		return nil, err
	}
	offA := uintptr(0)
	offB := alignUp(offA+sizeOf[A]()*uintptr(na), alignOf[B]())
	offC := alignUp(offB+sizeOf[B]()*uintptr(nb), alignOf[C]())
	total := offC + sizeOf[C]()*uintptr(nc)
	buf := newBuffer(total)
	return &Slices3[A, B, C]{
		A:   view[A](buf, offA, na),
		B:   view[B](buf, offB, nb),
		C:   view[C](buf, offC, nc),
		buf: buf,
	}, nil
}

// Size returns the size in bytes of the backing allocation.
func (s *Slices2[A, B]) Size() int {
	return len(s.buf)
}

// Swap exchanges the contents of s and other in O(1).
func (s *Slices2[A, B]) Swap(other *Slices2[A, B]) {
	s.A, other.A = other.A, s.A
	s.B, other.B = other.B, s.B
	s.buf, other.buf = other.buf, s.buf
}

// Reset releases the backing allocation and leaves s empty.
func (s *Slices2[A, B]) Reset() {
	s.A, s.B, s.buf = nil, nil, nil
}

// Size returns the size in bytes of the backing allocation.
func (s *Slices3[A, B, C]) Size() int {
	return len(s.buf)
}

// Swap exchanges the contents of s and other in O(1).
func (s *Slices3[A, B, C]) Swap(other *Slices3[A, B, C]) {
	s.A, other.A = other.A, s.A
	s.B, other.B = other.B, s.B
	s.C, other.C = other.C, s.C
	s.buf, other.buf = other.buf, s.buf
}

// Reset releases the backing allocation and leaves s empty.
func (s *Slices3[A, B, C]) Reset() {
	s.A, s.B, s.C, s.buf = nil, nil, nil, nil
}

func sizeOf[T any]() uintptr {
	var v T
	return unsafe.Sizeof(v)
}

func alignOf[T any]() uintptr {
	var v T
	return unsafe.Alignof(v)
}

// alignUp rounds off up to the next multiple of algn, which must be a
// power of two.
func alignUp(off, algn uintptr) uintptr {
	return (off + algn - 1) / algn * algn
}

// newBuffer allocates the backing block for a set of views. Aligned
// offsets only produce aligned views if the base of the block is itself
// aligned, and the runtime aligns small pointer-free allocations by size:
// a 5 byte block may land on an odd address. Padding the capacity (the
// length stays exact) to a multiple of 8 forces an allocation size the
// runtime aligns to 8 bytes, the largest alignment of any Go type.
func newBuffer(total uintptr) []byte {
	return make([]byte, total, alignUp(total, 8))
}

func checkField[T any](name string, n int) error {
	if n < 0 {
		return fmt.Errorf("packed: field %v: negative count %v", name, n)
	}
	if typ := reflect.TypeFor[T](); hasPointers(typ) {
		return fmt.Errorf("packed: field %v: type %v contains pointers", name, typ)
	}
	return nil
}

func hasPointers(typ reflect.Type) bool {
	switch typ.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return hasPointers(typ.Elem())
	case reflect.Struct:
		for i := 0; i < typ.NumField(); i++ {
			if hasPointers(typ.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// Pointers, slices, maps, strings, chans, funcs, interfaces and
		// unsafe pointers.
		return true
	}
}

func view[T any](buf []byte, off uintptr, n int) []T {
	if n == 0 {
		return nil
	}
	if sizeOf[T]() == 0 {
		// Zero-sized elements need no backing storage.
		return make([]T, n)
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&buf[off])), n)
}
