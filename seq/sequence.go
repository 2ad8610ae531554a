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

// Package seq implements the public chunked-sequence engine: a front
// shortcut chunk, a back shortcut chunk, and a spine of fully-populated
// interior chunks, giving amortized O(1) push/pop at either end,
// logarithmic random access and split, and O(log n) concat.
//
// Sequence is parametrized over the element type T and the measure type M
// the caller's chosen measure.Policy produces; the derived containers
// (deque, stack, bag, seqmap) each fix these to a concrete policy.
package seq

import (
	"go.uber.org/zap"

	"github.com/dolthub/chunkedseq/chunk"
	"github.com/dolthub/chunkedseq/internal/d"
	"github.com/dolthub/chunkedseq/internal/seqlog"
	"github.com/dolthub/chunkedseq/measure"
	"github.com/dolthub/chunkedseq/seqerr"
	"github.com/dolthub/chunkedseq/spine"
)

// SpineFactory builds an empty spine of one of the two interchangeable
// flavors (spine.NewTree23Spine or spine.NewFingerTreeSpine); the engine never
// inspects which one it was given.
type SpineFactory[T any, M any] func(policy measure.Policy[T, M]) spine.Spine[T, M]

// Sequence is the chunked-sequence engine. The zero value is not usable;
// construct with New.
type Sequence[T any, M any] struct {
	policy   measure.Policy[T, M]
	cap      int
	newSpine SpineFactory[T, M]
	log      seqlog.Logger

	front *chunk.Chunk[T, M]
	back  *chunk.Chunk[T, M]
	s     spine.Spine[T, M]
	size  int

	// gen is bumped on every mutation; iterators capture it at creation
	// and refuse to operate once it has moved, so stale iterator use is
	// caught deterministically rather than left as undefined behavior.
	gen uint64
}

// New constructs an empty sequence with the given chunk capacity K,
// measure policy, and spine flavor (spine.NewTree23Spine or
// spine.NewFingerTreeSpine).
func New[T any, M any](capacity int, policy measure.Policy[T, M], newSpine SpineFactory[T, M]) *Sequence[T, M] {
	d.PanicIfFalse(capacity > 0, "seq: capacity must be positive")
	return &Sequence[T, M]{
		policy:   policy,
		cap:      capacity,
		newSpine: newSpine,
		log:      seqlog.Nop(),
		front:    chunk.New[T, M](capacity, policy),
		back:     chunk.New[T, M](capacity, policy),
		s:        newSpine(policy),
	}
}

// FromSlice builds a sequence in linear time by pushing each element onto
// the back in order.
func FromSlice[T any, M any](capacity int, policy measure.Policy[T, M], newSpine SpineFactory[T, M], xs []T) *Sequence[T, M] {
	s := New[T, M](capacity, policy, newSpine)
	for _, x := range xs {
		s.PushBack(x)
	}
	return s
}

// SetLogger attaches a structural trace logger. A nil z disables logging.
func (s *Sequence[T, M]) SetLogger(z *zap.Logger) { s.log = seqlog.New(z) }

func (s *Sequence[T, M]) raw() *Sequence[T, M] {
	return &Sequence[T, M]{policy: s.policy, cap: s.cap, newSpine: s.newSpine, log: s.log}
}

func (s *Sequence[T, M]) blank() *Sequence[T, M] {
	r := s.raw()
	r.front = chunk.New[T, M](s.cap, s.policy)
	r.back = chunk.New[T, M](s.cap, s.policy)
	r.s = s.newSpine(s.policy)
	return r
}

// Cap returns the chunk capacity K this sequence was constructed with.
func (s *Sequence[T, M]) Cap() int { return s.cap }

// Len returns the current element count.
func (s *Sequence[T, M]) Len() int { return s.size }

// IsEmpty reports whether the sequence holds zero elements.
func (s *Sequence[T, M]) IsEmpty() bool { return s.size == 0 }

// TotalMeasure returns the combined measure over every element, per the
// policy the sequence was constructed with.
func (s *Sequence[T, M]) TotalMeasure() M {
	m := s.front.Measure()
	m = s.policy.Combine(m, s.s.TotalMeasure())
	m = s.policy.Combine(m, s.back.Measure())
	return m
}

func (s *Sequence[T, M]) checkInvariants() {
	if !d.Debug {
		return
	}
	d.PanicIfFalse(s.front.Len() <= s.cap && s.back.Len() <= s.cap, "seq: shortcut chunk over capacity")
	d.PanicIfFalse(s.front.Len()+s.s.ElemCount()+s.back.Len() == s.size, "seq: size counter drifted")
	if s.size > 0 {
		d.PanicIfFalse(!s.front.IsEmpty() || !s.back.IsEmpty() || !s.s.Empty(), "seq: non-empty sequence with all parts empty")
	}
}

// PushFront inserts v at the front. Amortized O(1).
func (s *Sequence[T, M]) PushFront(v T) {
	if err := s.front.PushFront(v); err != nil {
		s.log.Trace("seq.promote_front", zap.Int("len", s.front.Len()), zap.String("chunk_id", s.front.ID().String()))
		s.s.PushFrontChunk(s.front)
		s.front = chunk.New[T, M](s.cap, s.policy)
		d.PanicIfError(s.front.PushFront(v))
	}
	s.size++
	s.gen++
	s.checkInvariants()
}

// PushBack inserts v at the back. Amortized O(1).
func (s *Sequence[T, M]) PushBack(v T) {
	if err := s.back.PushBack(v); err != nil {
		s.log.Trace("seq.promote_back", zap.Int("len", s.back.Len()), zap.String("chunk_id", s.back.ID().String()))
		s.s.PushBackChunk(s.back)
		s.back = chunk.New[T, M](s.cap, s.policy)
		d.PanicIfError(s.back.PushBack(v))
	}
	s.size++
	s.gen++
	s.checkInvariants()
}

// PopFront removes and returns the front element, or seqerr.Empty if the
// sequence has none.
func (s *Sequence[T, M]) PopFront() (T, error) {
	v, err := s.popFront()
	if err != nil {
		return v, err
	}
	s.size--
	s.gen++
	s.checkInvariants()
	return v, nil
}

func (s *Sequence[T, M]) popFront() (T, error) {
	if !s.front.IsEmpty() {
		return s.front.PopFront()
	}
	if c, ok := s.s.PopFrontChunk(); ok {
		s.log.Trace("seq.absorb_front", zap.String("chunk_id", c.ID().String()))
		s.front = c
		return s.front.PopFront()
	}
	if !s.back.IsEmpty() {
		return s.back.PopFront()
	}
	var zero T
	return zero, seqerr.Empty
}

// PopBack removes and returns the back element, or seqerr.Empty if the
// sequence has none.
func (s *Sequence[T, M]) PopBack() (T, error) {
	v, err := s.popBack()
	if err != nil {
		return v, err
	}
	s.size--
	s.gen++
	s.checkInvariants()
	return v, nil
}

func (s *Sequence[T, M]) popBack() (T, error) {
	if !s.back.IsEmpty() {
		return s.back.PopBack()
	}
	if c, ok := s.s.PopBackChunk(); ok {
		s.log.Trace("seq.absorb_back", zap.String("chunk_id", c.ID().String()))
		s.back = c
		return s.back.PopBack()
	}
	if !s.front.IsEmpty() {
		return s.front.PopBack()
	}
	var zero T
	return zero, seqerr.Empty
}

// Front returns the front element without removing it.
func (s *Sequence[T, M]) Front() (T, error) { return s.At(0) }

// Back returns the back element without removing it.
func (s *Sequence[T, M]) Back() (T, error) { return s.At(s.size - 1) }

// At returns the i-th element (0-indexed from the front). Returns
// seqerr.OutOfRange if i is not in [0, Len()).
func (s *Sequence[T, M]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= s.size {
		return zero, seqerr.OutOfRange
	}
	if i < s.front.Len() {
		return s.front.At(i)
	}
	i -= s.front.Len()
	spineElems := s.s.ElemCount()
	if i < spineElems {
		_, mid, offset, _, ok := s.s.SplitByCount(i)
		d.PanicIfFalse(ok, "seq: At inconsistent spine split")
		return mid.At(offset)
	}
	i -= spineElems
	return s.back.At(i)
}

// Equal reports whether s and other hold the same elements in the same
// order, regardless of how each is internally chunked. eq compares two
// elements.
func (s *Sequence[T, M]) Equal(other *Sequence[T, M], eq func(a, b T) bool) bool {
	if s.size != other.size {
		return false
	}
	ai, bi := s.Begin(), other.Begin()
	for !ai.AtEnd() {
		av, _ := ai.Deref()
		bv, _ := bi.Deref()
		if !eq(av, bv) {
			return false
		}
		ai.Advance(1)
		bi.Advance(1)
	}
	return true
}

// Clone deep-copies the sequence: every owned chunk is cloned so mutating
// the copy never affects the original.
func (s *Sequence[T, M]) Clone() *Sequence[T, M] {
	out := s.raw()
	out.front = s.front.Clone()
	out.back = s.back.Clone()
	out.s = s.newSpine(s.policy)
	s.s.Leaves(func(c *chunk.Chunk[T, M]) {
		out.s.PushBackChunk(c.Clone())
	})
	out.size = s.size
	return out
}
