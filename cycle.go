// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cdeque

import "iter"

// wrapIndex folds i from the doubled range [0...2n) back into [0...n),
// where n is the physical capacity. Input outside [0...2n) is undefined.
func wrapIndex(i, n int) int {
	if i >= n {
		return i - n
	}
	return i
}

// incIndex advances i by one within the cyclic range [0...n).
func incIndex(i, n int) int {
	i++
	if i == n {
		return 0
	}
	return i
}

// decIndex retreats i by one within the cyclic range [0...n).
func decIndex(i, n int) int {
	if i == 0 {
		return n - 1
	}
	return i - 1
}

// cycle is the invariant-holding core of a Deque: a logical window of
// size elements over the physical slots of buf, wrapping past the end.
//
// Invariants:
//   - 0 <= size <= len(buf)
//   - start and finish are valid slot indices in [0...len(buf)), or 0
//     when len(buf) == 0.
//   - The logical element at index i in [0...size) lives at physical
//     slot wrapIndex(start+i, len(buf)).
//   - finish is cyclic: it equals start both when the window is empty
//     and when it is full; size disambiguates.
//
// All methods assume their documented preconditions. The exported
// facade decides per call site whether to check them first.
type cycle[T any] struct {
	buf    []T
	start  int
	finish int
	size   int
}

// reset binds the window to buf with the first n physical slots treated
// as already occupied. Precondition: 0 <= n <= len(buf).
func (c *cycle[T]) reset(buf []T, n int) {
	c.buf = buf
	c.start = 0
	c.finish = wrapIndex(n, max(len(buf), 1))
	c.size = n
}

func (c *cycle[T]) cap() int       { return len(c.buf) }
func (c *cycle[T]) available() int { return len(c.buf) - c.size }
func (c *cycle[T]) empty() bool    { return c.size == 0 }
func (c *cycle[T]) full() bool     { return c.size == len(c.buf) }

// innerToOuter translates logical index i to its physical slot.
// Precondition: 0 <= start+i < 2*len(buf).
func (c *cycle[T]) innerToOuter(i int) int {
	return wrapIndex(c.start+i, len(c.buf))
}

func (c *cycle[T]) at(i int) *T {
	return &c.buf[c.innerToOuter(i)]
}

func (c *cycle[T]) front() *T { return &c.buf[c.start] }

func (c *cycle[T]) back() *T {
	return &c.buf[decIndex(c.finish, len(c.buf))]
}

// pushBack writes v into the slot past the logical end, then grows the
// window. The write happens before any marker moves. Precondition:
// !full().
func (c *cycle[T]) pushBack(v T) {
	if DebugChecks {
		assert(!c.full(), "cdeque: push into full deque")
	}
	c.buf[c.finish] = v
	c.finish = incIndex(c.finish, len(c.buf))
	c.size++
}

// pushFront writes v into the slot before the logical start, then grows
// the window. Precondition: !full().
func (c *cycle[T]) pushFront(v T) {
	if DebugChecks {
		assert(!c.full(), "cdeque: push into full deque")
	}
	s := decIndex(c.start, len(c.buf))
	c.buf[s] = v
	c.start = s
	c.size++
}

// popBack shrinks the window by one from the back. Pure index and
// counter adjustment; the slot's contents are left intact so a later
// resize can re-expose them. Precondition: !empty().
func (c *cycle[T]) popBack() {
	if DebugChecks {
		assert(!c.empty(), "cdeque: pop from empty deque")
	}
	c.finish = decIndex(c.finish, len(c.buf))
	c.size--
}

// popFront shrinks the window by one from the front. Precondition:
// !empty().
func (c *cycle[T]) popFront() {
	if DebugChecks {
		assert(!c.empty(), "cdeque: pop from empty deque")
	}
	c.start = incIndex(c.start, len(c.buf))
	c.size--
}

// appendRange copies rg into the free slots after the logical end,
// splitting into at most two contiguous copies when the free region
// wraps past the physical end. Markers and size move only after all
// copying is done. Precondition: len(rg) <= available().
func (c *cycle[T]) appendRange(rg []T) {
	if DebugChecks {
		assert(len(rg) <= c.available(), "cdeque: append exceeds available capacity")
	}
	n := len(rg)
	if n == 0 {
		return
	}
	// size1 is never 0: finish is a valid slot index, one short of the
	// physical end at worst.
	size1 := len(c.buf) - c.finish
	if n <= size1 {
		copy(c.buf[c.finish:], rg)
		c.finish = wrapIndex(c.finish+n, len(c.buf))
	} else {
		copy(c.buf[c.finish:], rg[:size1])
		copy(c.buf, rg[size1:])
		c.finish = n - size1
	}
	c.size += n
}

// prependRange copies rg into the free slots before the logical start,
// preserving rg's order, splitting into at most two contiguous copies
// when the free region wraps past the physical start. Precondition:
// len(rg) <= available().
func (c *cycle[T]) prependRange(rg []T) {
	if DebugChecks {
		assert(len(rg) <= c.available(), "cdeque: prepend exceeds available capacity")
	}
	n := len(rg)
	if n == 0 {
		return
	}
	// size2 is the length of the free run ending just before start,
	// measured from the physical origin. A start of 0 means that run
	// ends at the physical end, so treat it as len(buf) to avoid a
	// zero-length copy.
	size2 := c.start
	if size2 == 0 {
		size2 = len(c.buf)
	}
	if n <= size2 {
		s := size2 - n
		copy(c.buf[s:size2], rg)
		c.start = s
	} else {
		// The tail of rg lands at the physical origin, the head wraps
		// to the physical end.
		split := n - size2
		copy(c.buf[:size2], rg[split:])
		s := len(c.buf) - split
		copy(c.buf[s:], rg[:split])
		c.start = s
	}
	c.size += n
}

// appendSeq streams seq into the free slots after the logical end.
// Markers and size are committed only once seq is exhausted, so a
// panic inside seq, or an overflow, leaves the logical window exactly
// as it was; free slots already written stay written. Returns
// ErrWouldBlock if seq yields more than available() elements.
func (c *cycle[T]) appendSeq(seq iter.Seq[T]) error {
	cursor, n := c.finish, 0
	avail := c.available()
	for v := range seq {
		if n == avail {
			return ErrWouldBlock
		}
		c.buf[cursor] = v
		cursor = incIndex(cursor, len(c.buf))
		n++
	}
	c.finish = cursor
	c.size += n
	return nil
}

// resize reinterprets the window as holding n logical elements, growing
// or shrinking from the back without touching start or slot contents.
// Precondition: 0 <= n <= cap(), validated by the facade.
func (c *cycle[T]) resize(n int) {
	c.finish = c.innerToOuter(n)
	c.size = n
}

// clear resets the window to the physical origin.
func (c *cycle[T]) clear() {
	c.start = 0
	c.finish = 0
	c.size = 0
}
