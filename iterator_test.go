// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cdeque_test

import (
	"slices"
	"testing"

	"code.hybscloud.com/cdeque"
)

// wrappedDeque builds a capacity-4 deque whose window straddles the
// physical boundary: contents 41, 42, 43, 44 with the front sitting in
// the upper half of the buffer.
func wrappedDeque() *cdeque.Deque[int] {
	d := cdeque.New[int](4)
	d.PushBack(39)
	d.PushBack(40)
	d.PushBack(41)
	d.PushBack(42)
	d.PopFront()
	d.PopFront()
	d.PushBack(43)
	d.PushBack(44)
	return d
}

// =============================================================================
// Forward / reverse traversal
// =============================================================================

func TestIteratorTraversal(t *testing.T) {
	d := wrappedDeque()

	fit := d.Begin()
	rit := d.RBegin()
	for i := 0; i < d.Len(); i++ {
		if fit.Value() != d.Get(i) {
			t.Fatalf("forward %d: got %d, want %d", i, fit.Value(), d.Get(i))
		}
		if rit.Value() != d.Get(d.Len()-i-1) {
			t.Fatalf("reverse %d: got %d, want %d", i, rit.Value(), d.Get(d.Len()-i-1))
		}
		fit = fit.Next()
		rit = rit.Next()
	}
	if !fit.Equal(d.End()) {
		t.Fatal("forward walk did not land on End")
	}
	if !rit.Equal(d.REnd()) {
		t.Fatal("reverse walk did not land on REnd")
	}
	if !d.RBegin().Base().Equal(d.End()) || !d.REnd().Base().Equal(d.Begin()) {
		t.Fatal("reverse iterators do not compose from the forward pair")
	}
}

func TestIteratorPositiveIndexing(t *testing.T) {
	d := wrappedDeque()

	it := d.Begin()
	for i := 0; i < d.Len(); i++ {
		if it.At(i) != d.Get(i) {
			t.Fatalf("At(%d): got %d, want %d", i, it.At(i), d.Get(i))
		}
		if it.Add(i).Value() != d.Get(i) {
			t.Fatalf("Add(%d): got %d, want %d", i, it.Add(i).Value(), d.Get(i))
		}
	}
}

func TestIteratorNegativeIndexing(t *testing.T) {
	d := wrappedDeque()

	it := d.End().Prev()
	for i := 0; i < d.Len(); i++ {
		want := d.Get(d.Len() - i - 1)
		if it.At(-i) != want {
			t.Fatalf("At(-%d): got %d, want %d", i, it.At(-i), want)
		}
		if it.Sub(i).Value() != want {
			t.Fatalf("Sub(%d): got %d, want %d", i, it.Sub(i).Value(), want)
		}
	}
}

// =============================================================================
// Iterator algebra
// =============================================================================

func TestIteratorAlgebra(t *testing.T) {
	d := wrappedDeque()
	begin, end := d.Begin(), d.End()

	if got := end.Distance(begin); got != d.Len() {
		t.Fatalf("End-Begin: got %d, want %d", got, d.Len())
	}
	if got := begin.Distance(end); got != -d.Len() {
		t.Fatalf("Begin-End: got %d, want %d", got, -d.Len())
	}
	if end.Compare(begin) <= 0 {
		t.Fatal("End > Begin violated")
	}
	if end.Compare(end) != 0 {
		t.Fatal("End == End violated")
	}
	if begin.Compare(end) >= 0 {
		t.Fatal("Begin < End violated")
	}
	if begin.Next().Prev() != begin {
		t.Fatal("Next then Prev is not identity")
	}
	if begin.Add(3).Sub(3) != begin {
		t.Fatal("Add(3) then Sub(3) is not identity")
	}
	if begin.Add(2).Index() != 2 {
		t.Fatalf("Index: got %d, want 2", begin.Add(2).Index())
	}

	// Reverse ordering follows traversal order, not logical order.
	if d.RBegin().Compare(d.REnd()) >= 0 {
		t.Fatal("RBegin < REnd violated")
	}
	if got := d.REnd().Distance(d.RBegin()); got != d.Len() {
		t.Fatalf("REnd-RBegin: got %d, want %d", got, d.Len())
	}
}

// =============================================================================
// Mutation through iterators, const conversion
// =============================================================================

func TestIteratorMutation(t *testing.T) {
	d := wrappedDeque()

	for it := d.Begin(); !it.Equal(d.End()); it = it.Next() {
		it.Set(0)
	}

	// One-way conversion to the read-only variant.
	cit := d.Begin().Const()
	for ; !cit.Equal(d.CEnd()); cit = cit.Next() {
		if cit.Value() != 0 {
			t.Fatalf("const iterator at %d: got %d, want 0", cit.Index(), cit.Value())
		}
	}

	// Ptr is bound to the physical slot.
	p := d.Begin().Ptr()
	*p = 77
	if d.Front() != 77 {
		t.Fatalf("Ptr write: Front = %d, want 77", d.Front())
	}

	// Reverse mutation.
	d.RBegin().Set(88)
	if d.Back() != 88 {
		t.Fatalf("reverse Set: Back = %d, want 88", d.Back())
	}
	if d.CRBegin().Value() != 88 {
		t.Fatalf("CRBegin: got %d, want 88", d.CRBegin().Value())
	}
}

// TestIteratorLiveResolution pins the re-resolution semantics: an
// iterator is a logical coordinate, so a PushFront between accesses
// shifts what the same iterator refers to.
func TestIteratorLiveResolution(t *testing.T) {
	d := cdeque.New[int](4)
	d.PushBack(10)
	d.PushBack(11)

	it := d.Begin()
	if it.Value() != 10 {
		t.Fatalf("before PushFront: got %d, want 10", it.Value())
	}

	d.PushFront(9)
	if it.Value() != 9 {
		t.Fatalf("after PushFront: got %d, want 9", it.Value())
	}
	if it.At(2) != 11 {
		t.Fatalf("after PushFront: At(2) = %d, want 11", it.At(2))
	}

	// End from before the push now sits one short of the new End.
	if got := d.End().Distance(it); got != 3 {
		t.Fatalf("End-Begin after PushFront: got %d, want 3", got)
	}
}

// =============================================================================
// Range-over-func adapters
// =============================================================================

func TestRangeIteration(t *testing.T) {
	d := wrappedDeque()
	want := []int{41, 42, 43, 44}

	if got := slices.Collect(d.Values()); !slices.Equal(got, want) {
		t.Fatalf("Values: got %v, want %v", got, want)
	}

	var idx []int
	var vals []int
	for i, v := range d.All() {
		idx = append(idx, i)
		vals = append(vals, v)
	}
	if !slices.Equal(idx, []int{0, 1, 2, 3}) || !slices.Equal(vals, want) {
		t.Fatalf("All: got %v %v", idx, vals)
	}

	vals = vals[:0]
	for _, v := range d.Backward() {
		vals = append(vals, v)
	}
	if !slices.Equal(vals, []int{44, 43, 42, 41}) {
		t.Fatalf("Backward: got %v", vals)
	}

	// Early break.
	n := 0
	for range d.Values() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Fatalf("early break: visited %d, want 2", n)
	}
}
