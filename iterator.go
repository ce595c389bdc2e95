// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cdeque

import "cmp"

// Iterator is a random-access iterator over a Deque's logical sequence.
//
// An Iterator is a logical coordinate, not a cached address: it holds
// the deque's cyclic state plus a signed logical index, and resolves
// the physical slot on every access. Mutating the deque between
// accesses therefore shifts what an existing iterator refers to,
// exactly as plain indexing would (a PushFront moves logical index 0
// to the new element).
//
// Iterators are comparable with == and shareable by value; arithmetic
// returns new iterators. The index may leave [0...Len()) during
// arithmetic, but dereferencing is only defined while it resolves
// inside the logical window. Comparing or subtracting iterators from
// different deques is undefined.
//
// An Iterator is valid only while the Deque it came from exists and
// its backing storage is not mutated through other references.
type Iterator[T any] struct {
	data  *cycle[T]
	index int
}

// Value returns the element the iterator resolves to.
func (it Iterator[T]) Value() T { return *it.data.at(it.index) }

// Set replaces the element the iterator resolves to.
func (it Iterator[T]) Set(v T) { *it.data.at(it.index) = v }

// Ptr returns the address of the element the iterator resolves to.
// The pointer stays bound to the physical slot, not the logical
// position: a later PushFront does not re-aim it.
func (it Iterator[T]) Ptr() *T { return it.data.at(it.index) }

// At returns the element n positions away (n may be negative).
func (it Iterator[T]) At(n int) T { return *it.data.at(it.index + n) }

// Next returns the iterator advanced by one.
func (it Iterator[T]) Next() Iterator[T] { return it.Add(1) }

// Prev returns the iterator moved back by one.
func (it Iterator[T]) Prev() Iterator[T] { return it.Add(-1) }

// Add returns the iterator advanced by n positions (n may be negative).
func (it Iterator[T]) Add(n int) Iterator[T] {
	return Iterator[T]{data: it.data, index: it.index + n}
}

// Sub returns the iterator moved back by n positions.
func (it Iterator[T]) Sub(n int) Iterator[T] { return it.Add(-n) }

// Distance returns the signed logical distance it - other.
func (it Iterator[T]) Distance(other Iterator[T]) int {
	return it.index - other.index
}

// Compare orders two iterators over the same deque by logical index:
// -1 if it is before other, 0 if equal, +1 if after.
func (it Iterator[T]) Compare(other Iterator[T]) int {
	return cmp.Compare(it.index, other.index)
}

// Equal reports whether both iterators stand at the same logical
// position of the same deque. Iterators are also comparable with ==.
func (it Iterator[T]) Equal(other Iterator[T]) bool { return it == other }

// Index returns the logical index the iterator stands at.
func (it Iterator[T]) Index() int { return it.index }

// Const converts to the read-only iterator at the same position.
// There is no conversion back.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{data: it.data, index: it.index}
}

// ConstIterator is the read-only counterpart of [Iterator]: the same
// state-plus-logical-index representation without Set or Ptr. Obtain
// one from [Deque.CBegin], [Deque.CEnd], or [Iterator.Const].
type ConstIterator[T any] struct {
	data  *cycle[T]
	index int
}

// Value returns the element the iterator resolves to.
func (it ConstIterator[T]) Value() T { return *it.data.at(it.index) }

// At returns the element n positions away (n may be negative).
func (it ConstIterator[T]) At(n int) T { return *it.data.at(it.index + n) }

// Next returns the iterator advanced by one.
func (it ConstIterator[T]) Next() ConstIterator[T] { return it.Add(1) }

// Prev returns the iterator moved back by one.
func (it ConstIterator[T]) Prev() ConstIterator[T] { return it.Add(-1) }

// Add returns the iterator advanced by n positions (n may be negative).
func (it ConstIterator[T]) Add(n int) ConstIterator[T] {
	return ConstIterator[T]{data: it.data, index: it.index + n}
}

// Sub returns the iterator moved back by n positions.
func (it ConstIterator[T]) Sub(n int) ConstIterator[T] { return it.Add(-n) }

// Distance returns the signed logical distance it - other.
func (it ConstIterator[T]) Distance(other ConstIterator[T]) int {
	return it.index - other.index
}

// Compare orders two iterators over the same deque by logical index.
func (it ConstIterator[T]) Compare(other ConstIterator[T]) int {
	return cmp.Compare(it.index, other.index)
}

// Equal reports whether both iterators stand at the same logical
// position of the same deque. Iterators are also comparable with ==.
func (it ConstIterator[T]) Equal(other ConstIterator[T]) bool { return it == other }

// Index returns the logical index the iterator stands at.
func (it ConstIterator[T]) Index() int { return it.index }

// ReverseIterator walks the logical sequence back to front. It wraps a
// forward [Iterator] positioned one past the element it designates,
// mirroring the usual reverse-iterator composition.
type ReverseIterator[T any] struct {
	fwd Iterator[T]
}

// Base returns the underlying forward iterator, positioned one past the
// element this reverse iterator designates.
func (it ReverseIterator[T]) Base() Iterator[T] { return it.fwd }

// Value returns the element the iterator resolves to.
func (it ReverseIterator[T]) Value() T { return it.fwd.At(-1) }

// Set replaces the element the iterator resolves to.
func (it ReverseIterator[T]) Set(v T) { it.fwd.Prev().Set(v) }

// At returns the element n positions away in reverse direction.
func (it ReverseIterator[T]) At(n int) T { return it.fwd.At(-n - 1) }

// Next returns the iterator advanced by one (toward the logical front).
func (it ReverseIterator[T]) Next() ReverseIterator[T] { return it.Add(1) }

// Prev returns the iterator moved back by one (toward the logical back).
func (it ReverseIterator[T]) Prev() ReverseIterator[T] { return it.Add(-1) }

// Add returns the iterator advanced by n reverse positions.
func (it ReverseIterator[T]) Add(n int) ReverseIterator[T] {
	return ReverseIterator[T]{fwd: it.fwd.Sub(n)}
}

// Sub returns the iterator moved back by n reverse positions.
func (it ReverseIterator[T]) Sub(n int) ReverseIterator[T] { return it.Add(-n) }

// Distance returns the signed reverse distance it - other.
func (it ReverseIterator[T]) Distance(other ReverseIterator[T]) int {
	return other.fwd.Distance(it.fwd)
}

// Compare orders two reverse iterators by traversal order.
func (it ReverseIterator[T]) Compare(other ReverseIterator[T]) int {
	return other.fwd.Compare(it.fwd)
}

// Equal reports whether both iterators stand at the same position.
func (it ReverseIterator[T]) Equal(other ReverseIterator[T]) bool { return it == other }

// Const converts to the read-only reverse iterator at the same position.
func (it ReverseIterator[T]) Const() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{fwd: it.fwd.Const()}
}

// ConstReverseIterator is the read-only counterpart of
// [ReverseIterator], composed from a [ConstIterator].
type ConstReverseIterator[T any] struct {
	fwd ConstIterator[T]
}

// Base returns the underlying forward iterator, positioned one past the
// element this reverse iterator designates.
func (it ConstReverseIterator[T]) Base() ConstIterator[T] { return it.fwd }

// Value returns the element the iterator resolves to.
func (it ConstReverseIterator[T]) Value() T { return it.fwd.At(-1) }

// At returns the element n positions away in reverse direction.
func (it ConstReverseIterator[T]) At(n int) T { return it.fwd.At(-n - 1) }

// Next returns the iterator advanced by one (toward the logical front).
func (it ConstReverseIterator[T]) Next() ConstReverseIterator[T] { return it.Add(1) }

// Prev returns the iterator moved back by one (toward the logical back).
func (it ConstReverseIterator[T]) Prev() ConstReverseIterator[T] { return it.Add(-1) }

// Add returns the iterator advanced by n reverse positions.
func (it ConstReverseIterator[T]) Add(n int) ConstReverseIterator[T] {
	return ConstReverseIterator[T]{fwd: it.fwd.Sub(n)}
}

// Sub returns the iterator moved back by n reverse positions.
func (it ConstReverseIterator[T]) Sub(n int) ConstReverseIterator[T] { return it.Add(-n) }

// Distance returns the signed reverse distance it - other.
func (it ConstReverseIterator[T]) Distance(other ConstReverseIterator[T]) int {
	return other.fwd.Distance(it.fwd)
}

// Compare orders two reverse iterators by traversal order.
func (it ConstReverseIterator[T]) Compare(other ConstReverseIterator[T]) int {
	return other.fwd.Compare(it.fwd)
}

// Equal reports whether both iterators stand at the same position.
func (it ConstReverseIterator[T]) Equal(other ConstReverseIterator[T]) bool { return it == other }

// Begin returns an iterator at logical index 0.
func (d *Deque[T]) Begin() Iterator[T] {
	return Iterator[T]{data: &d.cyc, index: 0}
}

// End returns an iterator one past the last logical element.
func (d *Deque[T]) End() Iterator[T] {
	return Iterator[T]{data: &d.cyc, index: d.cyc.size}
}

// CBegin returns a read-only iterator at logical index 0.
func (d *Deque[T]) CBegin() ConstIterator[T] { return d.Begin().Const() }

// CEnd returns a read-only iterator one past the last logical element.
func (d *Deque[T]) CEnd() ConstIterator[T] { return d.End().Const() }

// RBegin returns a reverse iterator at the last logical element.
func (d *Deque[T]) RBegin() ReverseIterator[T] {
	return ReverseIterator[T]{fwd: d.End()}
}

// REnd returns a reverse iterator one before the first logical element.
func (d *Deque[T]) REnd() ReverseIterator[T] {
	return ReverseIterator[T]{fwd: d.Begin()}
}

// CRBegin returns a read-only reverse iterator at the last logical
// element.
func (d *Deque[T]) CRBegin() ConstReverseIterator[T] { return d.RBegin().Const() }

// CREnd returns a read-only reverse iterator one before the first
// logical element.
func (d *Deque[T]) CREnd() ConstReverseIterator[T] { return d.REnd().Const() }
