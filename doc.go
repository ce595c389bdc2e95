// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cdeque provides a fixed-capacity double-ended queue backed by
// a cyclic view over contiguous storage.
//
// A Deque tracks a logical window inside a physical buffer with two
// wrapping markers and a count. Pushing and popping at either end is
// O(1) index arithmetic; no element is ever moved to make room and the
// backing storage is never reallocated. Capacity is fixed for the
// deque's lifetime.
//
// # Quick Start
//
// Owning construction (the deque allocates its buffer):
//
//	d := cdeque.New[int](8)
//	d.PushBack(1)
//	d.PushBack(2)
//	d.PushFront(0)
//	fmt.Println(d.Front(), d.Back(), d.Len()) // 0 2 3
//
// View construction (the deque borrows caller-owned storage):
//
//	buf := make([]Sample, 64)
//	d := cdeque.Wrap(buf)
//
//	// Or treat already-initialized storage as logical contents:
//	d := cdeque.WrapSize(buf, 16)
//
// Both modes drive the same cyclic engine; they differ only in who
// owns the buffer.
//
// # Checked and Unchecked Operations
//
// The hot-path operations do not check their preconditions:
//
//	d.PushBack(v)  // undefined if d.Full()
//	d.PopFront()   // undefined if d.Empty()
//	v := d.Get(i)  // undefined if i >= d.Len()
//
// Callers that cannot guarantee the precondition use the checked
// surface, which reports [ErrWouldBlock] in the style of the lfq
// queues:
//
//	if err := d.TryPushBack(v); cdeque.IsWouldBlock(err) {
//	    // deque full - handle backpressure
//	}
//
//	v, err := d.TryPopFront()
//	if cdeque.IsWouldBlock(err) {
//	    // deque empty
//	}
//
//	v, err := d.At(i) // ErrOutOfRange if i >= d.Len()
//
// Builds with the cdebug tag turn unchecked-precondition violations
// into panics; release builds pay no branch for them.
//
// # Bulk Insertion
//
// AppendRange and PrependRange copy a slice at the chosen end with at
// most two contiguous copies, even when the free region wraps past the
// physical buffer boundary:
//
//	d.AppendRange([]int{1, 2, 3})
//	d.PrependRange([]int{-2, -1, 0})
//
// AppendSeq streams from an [iter.Seq] and commits the markers only
// after the input is exhausted, so a panic inside the producer, or an
// overflow, leaves the logical contents untouched:
//
//	if err := d.AppendSeq(maps.Keys(m)); cdeque.IsWouldBlock(err) {
//	    // more keys than available slots; d unchanged
//	}
//
// # Iteration
//
// Range-over-func iterators follow the slices package conventions:
//
//	for i, v := range d.All()      { ... }
//	for v := range d.Values()      { ... }
//	for i, v := range d.Backward() { ... }
//
// Random-access iterators expose the full coordinate algebra. An
// iterator is a logical index, re-resolved against the cyclic state on
// every access, so its meaning tracks the deque live:
//
//	it := d.Begin()
//	last := d.End().Prev()
//	fmt.Println(it.Value(), it.At(2), last.Distance(it))
//
// [Iterator] mutates through Set and Ptr; [ConstIterator] is the
// read-only variant reached by a one-way conversion. RBegin/REnd
// compose reverse iterators from the forward ones.
//
// # Resize and Clear
//
// Resize reinterprets the window as holding n logical elements without
// touching slot contents, growing or shrinking from the back. It is
// how pre-existing data in a wrapped buffer is exposed or hidden:
//
//	d := cdeque.Wrap(buf)
//	d.Resize(n) // first n physical slots become logical contents
//
// Clear resets the window to the physical origin, also leaving slot
// contents in place.
//
// # Thread Safety
//
// Deque is not internally synchronized. Concurrent mutation, or
// mutation concurrent with iteration, requires external locking; see
// the pipeline example for the mutex-plus-retry pattern.
//
// # Degenerate Capacity
//
// A capacity-0 deque (including the zero value) is simultaneously
// Empty and Full. Every checked operation on it reports ErrWouldBlock
// or ErrOutOfRange.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors. The
// examples and tests additionally use [code.hybscloud.com/atomix] for
// atomic counters and [code.hybscloud.com/spin] for CPU pause
// instructions in retry loops.
package cdeque
