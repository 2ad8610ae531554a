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

package seq

import (
	"github.com/dolthub/chunkedseq/chunk"
	"github.com/dolthub/chunkedseq/internal/d"
	"github.com/dolthub/chunkedseq/measure"
	"github.com/dolthub/chunkedseq/seqerr"
)

// Iterator is a random-access cursor over a Sequence: the leaf chunk
// currently in focus, the offset within it, and a global logical index.
// Consecutive +-1 Advance calls that stay inside the same leaf are O(1);
// crossing a leaf boundary costs O(log n).
//
// Any mutation of the underlying sequence invalidates every outstanding
// iterator: each iterator captures the sequence's mutation counter at
// creation and every method panics if that counter has since moved.
type Iterator[T any, M any] struct {
	seq      *Sequence[T, M]
	gen      uint64
	idx      int
	leaf     *chunk.Chunk[T, M]
	leafBase int
}

// Begin returns an iterator positioned at the first element (or at End,
// for an empty sequence).
func (s *Sequence[T, M]) Begin() *Iterator[T, M] {
	return &Iterator[T, M]{seq: s, gen: s.gen, idx: 0}
}

// End returns the sentinel iterator one past the last element; its
// cumulative index equals the sequence's size.
func (s *Sequence[T, M]) End() *Iterator[T, M] {
	return &Iterator[T, M]{seq: s, gen: s.gen, idx: s.size}
}

// IteratorAt returns an iterator positioned at logical index i. Returns
// seqerr.OutOfRange if i is not in [0, Len()].
func (s *Sequence[T, M]) IteratorAt(i int) (*Iterator[T, M], error) {
	if i < 0 || i > s.size {
		return nil, seqerr.OutOfRange
	}
	return &Iterator[T, M]{seq: s, gen: s.gen, idx: i}, nil
}

func (it *Iterator[T, M]) checkGen() {
	d.PanicIfFalse(it.gen == it.seq.gen, "seq: iterator used after sequence mutation")
}

// Index returns the iterator's current logical position.
func (it *Iterator[T, M]) Index() int {
	it.checkGen()
	return it.idx
}

// AtEnd reports whether the iterator is positioned at or past End().
func (it *Iterator[T, M]) AtEnd() bool {
	it.checkGen()
	return it.idx >= it.seq.size
}

func (it *Iterator[T, M]) relocate() {
	s := it.seq
	idx := it.idx
	switch {
	case idx < 0 || idx >= s.size:
		it.leaf = nil
		it.leafBase = s.size
	case idx < s.front.Len():
		it.leaf = s.front
		it.leafBase = 0
	default:
		rem := idx - s.front.Len()
		spineElems := s.s.ElemCount()
		if rem < spineElems {
			_, mid, offset, _, ok := s.s.SplitByCount(rem)
			d.PanicIfFalse(ok, "seq: iterator relocate inconsistent split")
			it.leaf = mid
			it.leafBase = idx - offset
			return
		}
		it.leaf = s.back
		it.leafBase = s.front.Len() + spineElems
	}
}

func (it *Iterator[T, M]) ensureLeaf() {
	if it.leaf != nil && it.idx >= it.leafBase && it.idx < it.leafBase+it.leaf.Len() {
		return
	}
	it.relocate()
}

// Deref returns the element at the iterator's current position. Returns
// seqerr.OutOfRange if the iterator is at or past End().
func (it *Iterator[T, M]) Deref() (T, error) {
	it.checkGen()
	var zero T
	if it.idx < 0 || it.idx >= it.seq.size {
		return zero, seqerr.OutOfRange
	}
	it.ensureLeaf()
	return it.leaf.At(it.idx - it.leafBase)
}

// Advance moves the iterator k positions forward (k may be negative).
// Worst case O(log n); O(1) while it stays within the current leaf.
func (it *Iterator[T, M]) Advance(k int) {
	it.checkGen()
	it.idx += k
}

// Retreat moves the iterator k positions backward; the mirror of
// Advance, for first-class reverse traversal.
func (it *Iterator[T, M]) Retreat(k int) {
	it.checkGen()
	it.idx -= k
}

// Distance returns other.Index() - it.Index().
func (it *Iterator[T, M]) Distance(other *Iterator[T, M]) int {
	it.checkGen()
	other.checkGen()
	return other.idx - it.idx
}

// Clone returns an independent copy of the iterator at the same position.
func (it *Iterator[T, M]) Clone() *Iterator[T, M] {
	it.checkGen()
	cp := *it
	return &cp
}

func scanChunkForMeasure[T any, M any](policy measure.Policy[T, M], c *chunk.Chunk[T, M], acc M, pred func(M) bool) (found bool, idx int, finalAcc M) {
	for i := 0; i < c.Len(); i++ {
		v, _ := c.At(i)
		next := policy.Combine(acc, policy.Lift(v))
		if pred(next) {
			return true, i, next
		}
		acc = next
	}
	return false, c.Len(), acc
}

// SeekToMeasure repositions the iterator to the first element at which
// pred, applied to the measure accumulated through that element, first
// becomes true. Returns false, leaving the iterator at End, if pred never
// becomes true.
func (it *Iterator[T, M]) SeekToMeasure(pred func(acc M) bool) bool {
	it.checkGen()
	s := it.seq
	acc := s.policy.Identity()

	if found, off, _ := scanChunkForMeasure(s.policy, s.front, acc, pred); found {
		it.idx, it.leaf, it.leafBase = off, s.front, 0
		return true
	}
	acc = s.policy.Combine(acc, s.front.Measure())
	frontElems := s.front.Len()

	spineTotal := s.s.TotalMeasure()
	if pred(s.policy.Combine(acc, spineTotal)) {
		offsetAcc := acc
		left, mid, _, accBeforeMidLocal, ok := s.s.SplitByMeasure(func(accThroughLeaf M) bool {
			return pred(s.policy.Combine(offsetAcc, accThroughLeaf))
		})
		if ok {
			elemsBeforeMid := frontElems + left.ElemCount()
			accBeforeMid := s.policy.Combine(offsetAcc, accBeforeMidLocal)
			_, off, _ := scanChunkForMeasure(s.policy, mid, accBeforeMid, pred)
			it.idx, it.leaf, it.leafBase = elemsBeforeMid+off, mid, elemsBeforeMid
			return true
		}
	}
	acc = s.policy.Combine(acc, spineTotal)
	spineElems := s.s.ElemCount()
	if found, off, _ := scanChunkForMeasure(s.policy, s.back, acc, pred); found {
		base := frontElems + spineElems
		it.idx, it.leaf, it.leafBase = base+off, s.back, base
		return true
	}
	it.idx = s.size
	it.leaf = nil
	return false
}
