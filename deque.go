// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cdeque

import (
	"iter"
	"slices"
)

// Deque is a fixed-capacity double-ended queue over a cyclic view of
// contiguous storage. Pushing and popping at either end is O(1): no
// element ever moves to make room, only the two window markers do.
//
// Capacity is fixed for the Deque's lifetime. The backing storage is
// either owned (allocated by [New], [NewSize] or [Of]) or borrowed from
// the caller ([Wrap], [WrapSize]); the cyclic engine is identical in
// both modes.
//
// The zero value is a usable deque of capacity 0, which is empty and
// full at the same time.
//
// Two operation surfaces are exposed:
//
//   - Unchecked ops (PushBack, PopFront, Get, ...) document their
//     preconditions and do not check them. Violations are programmer
//     errors; guard with Full(), Empty() and Available() beforehand,
//     or build with the cdebug tag to turn violations into panics.
//   - Checked ops (TryPushBack, TryPopFront, At, ...) report
//     [ErrWouldBlock] or [ErrOutOfRange] instead.
//
// Deque is not safe for concurrent use. Mutation from multiple
// goroutines, or mutation concurrent with iteration, requires external
// locking.
type Deque[T any] struct {
	cyc cycle[T]
}

// New creates a deque that owns a freshly allocated buffer of the given
// capacity, initially empty. Panics if capacity is negative.
func New[T any](capacity int) *Deque[T] {
	if capacity < 0 {
		panic("cdeque: capacity must be >= 0")
	}
	d := &Deque[T]{}
	d.cyc.reset(make([]T, capacity), 0)
	return d
}

// NewSize creates a deque that owns a freshly allocated buffer of the
// given capacity with the first n slots logically occupied by zero
// values. Panics if capacity is negative or n is outside [0...capacity].
func NewSize[T any](capacity, n int) *Deque[T] {
	if capacity < 0 {
		panic("cdeque: capacity must be >= 0")
	}
	if n < 0 || n > capacity {
		panic("cdeque: initial size out of range")
	}
	d := &Deque[T]{}
	d.cyc.reset(make([]T, capacity), n)
	return d
}

// Of creates a deque holding a copy of elems. Capacity equals the
// number of elements, so the deque starts full.
func Of[T any](elems ...T) *Deque[T] {
	d := &Deque[T]{}
	d.cyc.reset(slices.Clone(elems), len(elems))
	return d
}

// Wrap creates a deque over caller-owned storage with zero initial
// occupancy. The deque reads and writes buf in place; the caller must
// not resize buf or mutate it through other references while the deque
// is in use.
func Wrap[T any](buf []T) *Deque[T] {
	d := &Deque[T]{}
	d.cyc.reset(buf, 0)
	return d
}

// WrapSize creates a deque over caller-owned storage whose first n
// physical slots already hold valid elements; they become the logical
// contents [0...n). Panics if n is outside [0...len(buf)].
func WrapSize[T any](buf []T, n int) *Deque[T] {
	if n < 0 || n > len(buf) {
		panic("cdeque: initial size out of range")
	}
	d := &Deque[T]{}
	d.cyc.reset(buf, n)
	return d
}

// Cap returns the fixed capacity.
func (d *Deque[T]) Cap() int { return d.cyc.cap() }

// Len returns the number of logical elements.
func (d *Deque[T]) Len() int { return d.cyc.size }

// Available returns the unoccupied capacity, Cap() - Len().
func (d *Deque[T]) Available() int { return d.cyc.available() }

// Empty reports whether the deque holds no elements.
func (d *Deque[T]) Empty() bool { return d.cyc.empty() }

// Full reports whether the deque has no room left. A capacity-0 deque
// is empty and full simultaneously.
func (d *Deque[T]) Full() bool { return d.cyc.full() }

// Get returns the element at logical index i without bounds checking.
// Undefined if i is outside [0...Len()).
func (d *Deque[T]) Get(i int) T { return *d.cyc.at(i) }

// Set replaces the element at logical index i without bounds checking.
// Undefined if i is outside [0...Len()).
func (d *Deque[T]) Set(i int, v T) { *d.cyc.at(i) = v }

// At returns the element at logical index i, or ErrOutOfRange if i is
// outside [0...Len()).
func (d *Deque[T]) At(i int) (T, error) {
	if i < 0 || i >= d.cyc.size {
		var zero T
		return zero, ErrOutOfRange
	}
	return *d.cyc.at(i), nil
}

// Front returns the first logical element. Undefined if the deque is
// empty.
func (d *Deque[T]) Front() T { return *d.cyc.front() }

// Back returns the last logical element. Undefined if the deque is
// empty.
func (d *Deque[T]) Back() T { return *d.cyc.back() }

// PushBack appends v at the logical end. Undefined if the deque is
// full; check Full() first or use TryPushBack.
func (d *Deque[T]) PushBack(v T) { d.cyc.pushBack(v) }

// PushFront prepends v at the logical start. Undefined if the deque is
// full; check Full() first or use TryPushFront.
func (d *Deque[T]) PushFront(v T) { d.cyc.pushFront(v) }

// PopBack removes the last logical element. Pure marker adjustment: the
// slot's contents are left intact, so a later Resize can re-expose
// them. Undefined if the deque is empty.
func (d *Deque[T]) PopBack() { d.cyc.popBack() }

// PopFront removes the first logical element. See PopBack for slot
// semantics. Undefined if the deque is empty.
func (d *Deque[T]) PopFront() { d.cyc.popFront() }

// TryPushBack appends v at the logical end.
// Returns ErrWouldBlock if the deque is full.
func (d *Deque[T]) TryPushBack(v T) error {
	if d.cyc.full() {
		return ErrWouldBlock
	}
	d.cyc.pushBack(v)
	return nil
}

// TryPushFront prepends v at the logical start.
// Returns ErrWouldBlock if the deque is full.
func (d *Deque[T]) TryPushFront(v T) error {
	if d.cyc.full() {
		return ErrWouldBlock
	}
	d.cyc.pushFront(v)
	return nil
}

// TryPopBack removes and returns the last logical element.
// Returns (zero-value, ErrWouldBlock) if the deque is empty.
func (d *Deque[T]) TryPopBack() (T, error) {
	if d.cyc.empty() {
		var zero T
		return zero, ErrWouldBlock
	}
	v := *d.cyc.back()
	d.cyc.popBack()
	return v, nil
}

// TryPopFront removes and returns the first logical element.
// Returns (zero-value, ErrWouldBlock) if the deque is empty.
func (d *Deque[T]) TryPopFront() (T, error) {
	if d.cyc.empty() {
		var zero T
		return zero, ErrWouldBlock
	}
	v := *d.cyc.front()
	d.cyc.popFront()
	return v, nil
}

// AppendRange appends a copy of rg at the logical end, in order, using
// at most two contiguous copies. Markers and size move only after all
// copying completes. Undefined if len(rg) > Available(); use
// TryAppendRange for a checked variant.
func (d *Deque[T]) AppendRange(rg []T) { d.cyc.appendRange(rg) }

// PrependRange prepends a copy of rg at the logical start, preserving
// rg's order, using at most two contiguous copies. Undefined if
// len(rg) > Available(); use TryPrependRange for a checked variant.
func (d *Deque[T]) PrependRange(rg []T) { d.cyc.prependRange(rg) }

// TryAppendRange appends a copy of rg at the logical end.
// Returns ErrWouldBlock, leaving the deque unchanged, if rg does not
// fit in Available().
func (d *Deque[T]) TryAppendRange(rg []T) error {
	if len(rg) > d.cyc.available() {
		return ErrWouldBlock
	}
	d.cyc.appendRange(rg)
	return nil
}

// TryPrependRange prepends a copy of rg at the logical start.
// Returns ErrWouldBlock, leaving the deque unchanged, if rg does not
// fit in Available().
func (d *Deque[T]) TryPrependRange(rg []T) error {
	if len(rg) > d.cyc.available() {
		return ErrWouldBlock
	}
	d.cyc.prependRange(rg)
	return nil
}

// AppendSeq streams seq into the free slots at the logical end. Markers
// and size are committed only once seq is exhausted: if seq panics
// mid-stream, or yields more than Available() elements (ErrWouldBlock),
// the logical contents and Len() are unchanged. Free slots already
// written stay written; they are outside the logical window and never
// observable.
func (d *Deque[T]) AppendSeq(seq iter.Seq[T]) error {
	return d.cyc.appendSeq(seq)
}

// PrependSeq collects seq and prepends it at the logical start,
// preserving order. Returns ErrWouldBlock, leaving the deque unchanged,
// if the collected elements do not fit in Available(). A panic inside
// seq propagates before any slot is written.
func (d *Deque[T]) PrependSeq(seq iter.Seq[T]) error {
	return d.TryPrependRange(slices.Collect(seq))
}

// Resize reinterprets the deque as holding n logical elements, growing
// or shrinking from the back. Slot contents are untouched: growing
// re-exposes whatever the uncovered physical slots hold (their zero
// value for owned buffers never written, prior contents otherwise).
// Panics if n is outside [0...Cap()].
func (d *Deque[T]) Resize(n int) {
	if n < 0 || n > d.cyc.cap() {
		panic("cdeque: resize out of range")
	}
	d.cyc.resize(n)
}

// Clear removes all elements and resets the window to the physical
// start of the buffer. Slot contents are untouched.
func (d *Deque[T]) Clear() { d.cyc.clear() }

// All returns an index/value iterator over the logical contents in
// order, like [slices.All]. The deque must not be mutated during
// iteration.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < d.cyc.size; i++ {
			if !yield(i, *d.cyc.at(i)) {
				return
			}
		}
	}
}

// Values returns a value iterator over the logical contents in order,
// like [slices.Values].
func (d *Deque[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < d.cyc.size; i++ {
			if !yield(*d.cyc.at(i)) {
				return
			}
		}
	}
}

// Backward returns an index/value iterator over the logical contents in
// reverse order, like [slices.Backward].
func (d *Deque[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := d.cyc.size - 1; i >= 0; i-- {
			if !yield(i, *d.cyc.at(i)) {
				return
			}
		}
	}
}
