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

// Package deque is the chunked-sequence engine exposed directly as a
// double-ended queue. It carries no policy of its own beyond fixing the
// measure to element count, so split-at-index and random access are
// always available.
package deque

import (
	"github.com/dolthub/chunkedseq/measure"
	"github.com/dolthub/chunkedseq/seq"
	"github.com/dolthub/chunkedseq/spine"
)

// DefaultCap is the chunk capacity FromSlice uses; New and NewFingerTree
// take K from the caller.
const DefaultCap = 512

// Deque[T] is a double-ended queue backed by the chunked-sequence engine,
// measured by element count.
type Deque[T any] struct {
	*seq.Sequence[T, int]
}

// New constructs an empty deque with chunk capacity K, using the
// bootstrapped (Tree23) spine flavor.
func New[T any](capacity int) Deque[T] {
	return Deque[T]{seq.New[T, int](capacity, measure.Size[T, int]{}, spine.NewTree23Spine[T, int])}
}

// NewFingerTree is New but backed by the finger-tree spine flavor; the
// two are interchangeable.
func NewFingerTree[T any](capacity int) Deque[T] {
	return Deque[T]{seq.New[T, int](capacity, measure.Size[T, int]{}, spine.NewFingerTreeSpine[T, int])}
}

// FromSlice builds a deque of the default capacity from xs, in order.
func FromSlice[T any](xs []T) Deque[T] {
	return Deque[T]{seq.FromSlice[T, int](DefaultCap, measure.Size[T, int]{}, spine.NewTree23Spine[T, int], xs)}
}

// SplitAt splits the deque at index k into two independent deques.
// Destructive: d must not be used afterward.
func (d Deque[T]) SplitAt(k int) (left, right Deque[T], err error) {
	l, r, err := d.Sequence.SplitAt(k)
	if err != nil {
		return Deque[T]{}, Deque[T]{}, err
	}
	return Deque[T]{l}, Deque[T]{r}, nil
}

// Concat destructively appends b after a and returns the merged
// deque; a and b must not be used afterward.
func Concat[T any](a, b Deque[T]) Deque[T] {
	return Deque[T]{seq.Concat(a.Sequence, b.Sequence)}
}

// Insert returns a new deque with v inserted at index i. Destructive,
// like SplitAt.
func (d Deque[T]) Insert(i int, v T) (Deque[T], error) {
	s, err := d.Sequence.Insert(i, v)
	if err != nil {
		return Deque[T]{}, err
	}
	return Deque[T]{s}, nil
}

// Erase returns a new deque with the half-open range [lo, hi) removed.
// Destructive, like SplitAt.
func (d Deque[T]) Erase(lo, hi int) (Deque[T], error) {
	s, err := d.Sequence.Erase(lo, hi)
	if err != nil {
		return Deque[T]{}, err
	}
	return Deque[T]{s}, nil
}

// Clone deep-copies the deque.
func (d Deque[T]) Clone() Deque[T] {
	return Deque[T]{d.Sequence.Clone()}
}

// Equal reports whether d and other hold the same elements in order.
func (d Deque[T]) Equal(other Deque[T], eq func(a, b T) bool) bool {
	return d.Sequence.Equal(other.Sequence, eq)
}
