// Package vector implements a growable contiguous array with explicit
// ownership release. Typical usage: create a vector with an optional
// destructor, fill it, then Dispose() it when its elements are no longer
// needed so every live element is released exactly once.
package vector

import (
	"slices"
	"unsafe"
)

// Vector is a growable array of T. Not goroutine-safe by default.
// Use SafeVector for concurrent access.
type Vector[T any] struct {
	buf      []T      // backing storage, len(buf) is the capacity
	length   int      // number of live elements
	destroy  func(*T) // called on an element before it is discarded
	maxBytes int      // growth budget in bytes, 0 means unlimited
	reallocs int
	disposed bool
}

// New creates a vector able to hold initialCapacity elements before its
// first reallocation. destroy may be nil when elements own nothing.
// Capacity 0 is allowed; the first insertion establishes a buffer.
func New[T any](destroy func(*T), initialCapacity int) *Vector[T] {
	var zero T
	if unsafe.Sizeof(zero) == 0 {
		panic(ErrElemSize)
	}
	if initialCapacity < 0 {
		panic(ErrNegativeCapacity)
	}
	return &Vector[T]{
		buf:     make([]T, initialCapacity),
		destroy: destroy,
	}
}

// Dispose calls the destructor on every live element in index order and
// drops the buffer. The vector is unusable afterwards; any further call,
// including a second Dispose, panics.
func (v *Vector[T]) Dispose() {
	v.panicIfDisposed()
	if v.destroy != nil {
		for i := 0; i < v.length; i++ {
			v.destroy(&v.buf[i])
		}
	}
	v.buf = nil
	v.length = 0
	v.disposed = true
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	v.panicIfDisposed()
	return v.length
}

// Cap returns the number of elements the buffer holds without reallocating.
func (v *Vector[T]) Cap() int {
	v.panicIfDisposed()
	return len(v.buf)
}

// ElemSize returns the size in bytes of one element.
func (v *Vector[T]) ElemSize() int {
	v.panicIfDisposed()
	var zero T
	return int(unsafe.Sizeof(zero))
}

// SetMaxBytes limits the size of the buffer. A growth that would exceed
// the limit panics with ErrRealloc. Zero removes the limit.
func (v *Vector[T]) SetMaxBytes(n int) {
	v.panicIfDisposed()
	if n < 0 {
		n = 0
	}
	v.maxBytes = n
}

// At returns a pointer to the element at index i. The pointer stays valid
// until the next reallocation or shift of the vector.
func (v *Vector[T]) At(i int) *T {
	v.panicIfDisposed()
	checkIndex(i, v.length)
	return &v.buf[i]
}

// Replace overwrites the element at index i. The outgoing element is
// passed to the destructor first.
func (v *Vector[T]) Replace(elem T, i int) {
	v.panicIfDisposed()
	checkIndex(i, v.length)
	if v.destroy != nil {
		v.destroy(&v.buf[i])
	}
	v.buf[i] = elem
}

// Insert places elem at index i, shifting elements at and after i one slot
// to the right. i may equal Len(), which appends.
func (v *Vector[T]) Insert(elem T, i int) {
	v.panicIfDisposed()
	checkInsertIndex(i, v.length)
	if v.length == len(v.buf) {
		v.grow(grownCapacity(v.length))
	}
	copy(v.buf[i+1:v.length+1], v.buf[i:v.length])
	v.buf[i] = elem
	v.length++
}

// Append adds elem after the last live element.
func (v *Vector[T]) Append(elem T) {
	v.panicIfDisposed()
	if v.length == len(v.buf) {
		v.grow(grownCapacity(v.length))
	}
	v.buf[v.length] = elem
	v.length++
}

// Delete removes the element at index i after passing it to the
// destructor. Later elements shift one slot left; capacity is kept.
func (v *Vector[T]) Delete(i int) {
	v.panicIfDisposed()
	checkIndex(i, v.length)
	if v.destroy != nil {
		v.destroy(&v.buf[i])
	}
	copy(v.buf[i:v.length-1], v.buf[i+1:v.length])
	// Drop the stale tail copy so it does not pin memory.
	var zero T
	v.buf[v.length-1] = zero
	v.length--
}

// Map calls visit for every live element in index order, passing ctx
// through unchanged. visit may modify the element but must not change the
// vector's length.
func (v *Vector[T]) Map(visit func(elem *T, ctx any), ctx any) {
	v.panicIfDisposed()
	if visit == nil {
		panic(ErrNoVisitor)
	}
	for i := 0; i < v.length; i++ {
		visit(&v.buf[i], ctx)
	}
}

// Sort orders the live elements using a three-way comparator. The sort is
// not stable.
func (v *Vector[T]) Sort(cmp func(a, b T) int) {
	v.panicIfDisposed()
	if cmp == nil {
		panic(ErrNoSortCompare)
	}
	slices.SortFunc(v.buf[:v.length], cmp)
}

// Search returns the index of the first element for which cmp(elem, key)
// is zero, or NotFound.
//
// start must lie in [0, Len()) when the vector is non-empty, but the scan
// always covers the whole vector from index 0 and sorted is ignored. This
// mirrors the behaviour existing callers depend on; use SearchFrom for a
// scan that honours both arguments.
func (v *Vector[T]) Search(key T, cmp func(elem, key T) int, start int, sorted bool) int {
	v.panicIfDisposed()
	checkSearch(cmp != nil, start, v.length)
	for i := 0; i < v.length; i++ {
		if cmp(v.buf[i], key) == 0 {
			return i
		}
	}
	return NotFound
}

// SearchFrom looks for key in [start, Len()). When sorted is true the
// range is assumed ordered by cmp and binary search finds the first
// match; otherwise the range is scanned linearly.
func (v *Vector[T]) SearchFrom(key T, cmp func(elem, key T) int, start int, sorted bool) int {
	v.panicIfDisposed()
	checkSearch(cmp != nil, start, v.length)
	if v.length == 0 {
		return NotFound
	}
	if sorted {
		pos, found := slices.BinarySearchFunc(v.buf[start:v.length], key, cmp)
		if !found {
			return NotFound
		}
		return start + pos
	}
	for i := start; i < v.length; i++ {
		if cmp(v.buf[i], key) == 0 {
			return i
		}
	}
	return NotFound
}

// Reserve grows the buffer to hold at least n elements. It never shrinks
// the buffer and does not change Len().
func (v *Vector[T]) Reserve(n int) {
	v.panicIfDisposed()
	if n > len(v.buf) {
		v.grow(n)
	}
}

// Clear passes every live element to the destructor and empties the
// vector. The buffer is kept for reuse.
func (v *Vector[T]) Clear() {
	v.panicIfDisposed()
	if v.destroy != nil {
		for i := 0; i < v.length; i++ {
			v.destroy(&v.buf[i])
		}
	}
	clear(v.buf[:v.length])
	v.length = 0
}

// Slice returns the live elements. The slice aliases the vector's buffer
// and is invalidated by the next reallocation or shift.
func (v *Vector[T]) Slice() []T {
	v.panicIfDisposed()
	return v.buf[:v.length:v.length]
}

// grow reallocates the buffer to newCap elements, preserving contents.
func (v *Vector[T]) grow(newCap int) {
	checkBudget(newCap, v.ElemSize(), v.maxBytes)
	buf := make([]T, newCap)
	copy(buf, v.buf[:v.length])
	v.buf = buf
	v.reallocs++
}

// panicIfDisposed panics if the vector has been disposed.
func (v *Vector[T]) panicIfDisposed() {
	if v.disposed {
		panic(ErrDisposed)
	}
}
