// Copyright 2025 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package bag is the chunked-sequence engine with the trivial measure,
// relaxed to allow an approximate split that partitions the elements into
// two halves of comparable size without preserving element order (a
// bag's order is not observable). The ordered, exact-index split_at
// contract is still available under its own name, so SplitAt and
// SplitApproximate stay two distinctly named operations rather than one
// conflated method.
//
// This package exposes ForEach rather than a general iterator, since a
// bag has no stable notion of "next element" to iterate by.
package bag

import (
	"github.com/dolthub/chunkedseq/measure"
	"github.com/dolthub/chunkedseq/seq"
	"github.com/dolthub/chunkedseq/seqerr"
	"github.com/dolthub/chunkedseq/spine"
)

// DefaultCap is the chunk capacity FromSlice uses; New takes K from the
// caller.
const DefaultCap = 512

// Bag[T] is an unordered multiset backed by the chunked-sequence engine,
// measured trivially.
type Bag[T any] struct {
	seq *seq.Sequence[T, measure.Unit]
}

// New constructs an empty bag with chunk capacity K.
func New[T any](capacity int) Bag[T] {
	return Bag[T]{seq.New[T, measure.Unit](capacity, measure.Trivial[T]{}, spine.NewTree23Spine[T, measure.Unit])}
}

// FromSlice builds a bag of the default capacity from xs.
func FromSlice[T any](xs []T) Bag[T] {
	return Bag[T]{seq.FromSlice[T, measure.Unit](DefaultCap, measure.Trivial[T]{}, spine.NewTree23Spine[T, measure.Unit], xs)}
}

// Len returns the number of elements in the bag.
func (b Bag[T]) Len() int { return b.seq.Len() }

// IsEmpty reports whether the bag holds zero elements.
func (b Bag[T]) IsEmpty() bool { return b.seq.IsEmpty() }

// Insert adds v to the bag; its eventual position is unspecified.
func (b Bag[T]) Insert(v T) { b.seq.PushBack(v) }

// Take removes and returns an arbitrary element, or seqerr.Empty if the
// bag is empty. Which element comes out is unspecified.
func (b Bag[T]) Take() (T, error) { return b.seq.PopBack() }

// ForEach visits every element in an unspecified order.
func (b Bag[T]) ForEach(f func(v T)) { b.seq.ForEach(f) }

// SplitAt splits the bag at the exact index k (0 <= k <= Len()),
// honoring the ordered, tight-split contract even though element order
// in a bag is not normally observable. Destructive: b must not be used
// afterward.
func (b Bag[T]) SplitAt(k int) (left, right Bag[T], err error) {
	l, r, err := b.seq.SplitAt(k)
	if err != nil {
		return Bag[T]{}, Bag[T]{}, err
	}
	return Bag[T]{l}, Bag[T]{r}, nil
}

// SplitApproximate partitions the bag into two bags of comparable size.
// Because a bag's element order is unobservable, this need not (and does
// not promise to) cut at exactly Len()/2 the way SplitAt(Len()/2) does —
// only that both halves end up a similar size. Destructive: b must not
// be used afterward. Returns seqerr.Empty if the bag has no elements to
// split.
func (b Bag[T]) SplitApproximate() (left, right Bag[T], err error) {
	if b.seq.IsEmpty() {
		return Bag[T]{}, Bag[T]{}, seqerr.Empty
	}
	l, r, splitErr := b.seq.SplitAt(b.seq.Len() / 2)
	if splitErr != nil {
		return Bag[T]{}, Bag[T]{}, splitErr
	}
	return Bag[T]{l}, Bag[T]{r}, nil
}

// Concat destructively merges b into a and returns the combined bag;
// a and b must not be used afterward.
func Concat[T any](a, b Bag[T]) Bag[T] {
	return Bag[T]{seq.Concat(a.seq, b.seq)}
}

// Clone deep-copies the bag.
func (b Bag[T]) Clone() Bag[T] { return Bag[T]{b.seq.Clone()} }
