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

// Package chunk implements the fixed-capacity circular buffer that is the
// unit of bulk storage for the chunked-sequence engine.
package chunk

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dolthub/chunkedseq/internal/d"
	"github.com/dolthub/chunkedseq/measure"
	"github.com/dolthub/chunkedseq/seqerr"
)

// Chunk is a fixed-capacity circular buffer of up to Cap elements of T,
// annotated with a cached measure of policy M. It never grows past the
// capacity it was created with; every mutating method keeps the cached
// measure consistent with the fold of policy over the current elements.
type Chunk[T any, M any] struct {
	policy measure.Policy[T, M]
	id     uuid.UUID
	buf    []T
	head   int
	count  int
	cap    int
	meas   M
}

// New allocates an empty chunk of the given capacity.
func New[T any, M any](capacity int, policy measure.Policy[T, M]) *Chunk[T, M] {
	d.PanicIfFalse(capacity > 0, "chunk: capacity must be positive")
	return &Chunk[T, M]{
		policy: policy,
		id:     uuid.New(),
		buf:    make([]T, capacity),
		cap:    capacity,
		meas:   policy.Identity(),
	}
}

// ID is a debug-only identity tag, logged at trace level and included in
// InvariantViolation panics so a corrupted spine can be diagnosed without
// relying on stable element addresses, which this library does not offer.
func (c *Chunk[T, M]) ID() uuid.UUID { return c.id }

// Cap returns the chunk's fixed capacity K.
func (c *Chunk[T, M]) Cap() int { return c.cap }

// Len returns the current element count.
func (c *Chunk[T, M]) Len() int { return c.count }

// IsEmpty reports whether the chunk holds zero elements.
func (c *Chunk[T, M]) IsEmpty() bool { return c.count == 0 }

// IsFull reports whether the chunk is at capacity.
func (c *Chunk[T, M]) IsFull() bool { return c.count == c.cap }

// Measure returns the cached measure over the chunk's current elements.
func (c *Chunk[T, M]) Measure() M { return c.meas }

func (c *Chunk[T, M]) physical(logical int) int {
	return (c.head + logical) % c.cap
}

// PushFront inserts v at the front. Returns seqerr.CapacityFull if the
// chunk is already at capacity.
func (c *Chunk[T, M]) PushFront(v T) error {
	if c.count == c.cap {
		return seqerr.CapacityFull
	}
	c.head = (c.head - 1 + c.cap) % c.cap
	c.buf[c.head] = v
	c.count++
	c.bumpOnInsert(v)
	c.checkInvariants()
	return nil
}

// PushBack inserts v at the back. Returns seqerr.CapacityFull if the
// chunk is already at capacity.
func (c *Chunk[T, M]) PushBack(v T) error {
	if c.count == c.cap {
		return seqerr.CapacityFull
	}
	c.buf[c.physical(c.count)] = v
	c.count++
	c.bumpOnInsert(v)
	c.checkInvariants()
	return nil
}

// PopFront removes and returns the front element. Returns seqerr.Empty if
// the chunk has no elements.
func (c *Chunk[T, M]) PopFront() (T, error) {
	var zero T
	if c.count == 0 {
		return zero, seqerr.Empty
	}
	v := c.buf[c.head]
	c.buf[c.head] = zero
	c.head = (c.head + 1) % c.cap
	c.count--
	c.bumpOnRemove(v)
	c.checkInvariants()
	return v, nil
}

// PopBack removes and returns the back element. Returns seqerr.Empty if
// the chunk has no elements.
func (c *Chunk[T, M]) PopBack() (T, error) {
	var zero T
	if c.count == 0 {
		return zero, seqerr.Empty
	}
	p := c.physical(c.count - 1)
	v := c.buf[p]
	c.buf[p] = zero
	c.count--
	c.bumpOnRemove(v)
	c.checkInvariants()
	return v, nil
}

// Front returns the front element without removing it.
func (c *Chunk[T, M]) Front() (T, error) { return c.At(0) }

// Back returns the back element without removing it.
func (c *Chunk[T, M]) Back() (T, error) { return c.At(c.count - 1) }

// At returns the i-th element (0-indexed from the front) without removing
// it. Returns seqerr.OutOfRange if i is not in [0, Len()).
func (c *Chunk[T, M]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= c.count {
		return zero, seqerr.OutOfRange
	}
	return c.buf[c.physical(i)], nil
}

// Set overwrites the i-th element in place and recomputes the cached
// measure. Returns seqerr.OutOfRange if i is not in [0, Len()).
func (c *Chunk[T, M]) Set(i int, v T) error {
	if i < 0 || i >= c.count {
		return seqerr.OutOfRange
	}
	c.buf[c.physical(i)] = v
	c.recompute()
	c.checkInvariants()
	return nil
}

func (c *Chunk[T, M]) bumpOnInsert(v T) {
	if c.policy.HasInverse() {
		c.meas = c.policy.Combine(c.meas, c.policy.Lift(v))
		return
	}
	c.recompute()
}

func (c *Chunk[T, M]) bumpOnRemove(v T) {
	if c.policy.HasInverse() {
		c.meas = c.policy.Uncombine(c.meas, c.policy.Lift(v))
		return
	}
	c.recompute()
}

func (c *Chunk[T, M]) recompute() {
	m := c.policy.Identity()
	for i := 0; i < c.count; i++ {
		m = c.policy.Combine(m, c.policy.Lift(c.buf[c.physical(i)]))
	}
	c.meas = m
}

func (c *Chunk[T, M]) checkInvariants() {
	if !d.Debug {
		return
	}
	d.PanicIfFalse(c.count >= 0 && c.count <= c.cap, fmt.Sprintf("chunk %s: count out of [0, K]", c.id))
}

// PushFrontN copies vs onto the front, preserving their relative order
// (vs[0] becomes the new front and vs[len(vs)-1] ends up adjacent to the
// chunk's previous front). Returns
// seqerr.CapacityFull, leaving the chunk unchanged, if there isn't room.
func (c *Chunk[T, M]) PushFrontN(vs []T) error {
	if len(vs) > c.cap-c.count {
		return seqerr.CapacityFull
	}
	for i := len(vs) - 1; i >= 0; i-- {
		// capacity already checked; PushFront cannot fail here.
		_ = c.PushFront(vs[i])
	}
	return nil
}

// PushBackN copies vs onto the back, preserving order. Returns
// seqerr.CapacityFull, leaving the chunk unchanged, if there isn't room.
func (c *Chunk[T, M]) PushBackN(vs []T) error {
	if len(vs) > c.cap-c.count {
		return seqerr.CapacityFull
	}
	for _, v := range vs {
		_ = c.PushBack(v)
	}
	return nil
}

// PopFrontN removes and returns the first n elements, in order. Returns
// seqerr.Underflow, leaving the chunk unchanged, if n > Len().
func (c *Chunk[T, M]) PopFrontN(n int) ([]T, error) {
	if n > c.count {
		return nil, seqerr.Underflow
	}
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i], _ = c.PopFront()
	}
	return out, nil
}

// PopBackN removes and returns the last n elements, in order (i.e.
// out[len(out)-1] was the chunk's back element). Returns seqerr.Underflow,
// leaving the chunk unchanged, if n > Len().
func (c *Chunk[T, M]) PopBackN(n int) ([]T, error) {
	if n > c.count {
		return nil, seqerr.Underflow
	}
	out := make([]T, n)
	for i := n - 1; i >= 0; i-- {
		out[i], _ = c.PopBack()
	}
	return out, nil
}

// FrontN reads (without removing) the first n elements. Returns
// seqerr.Underflow if n > Len().
func (c *Chunk[T, M]) FrontN(n int) ([]T, error) {
	if n > c.count {
		return nil, seqerr.Underflow
	}
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i], _ = c.At(i)
	}
	return out, nil
}

// BackN reads (without removing) the last n elements, in sequence order.
// Returns seqerr.Underflow if n > Len().
func (c *Chunk[T, M]) BackN(n int) ([]T, error) {
	if n > c.count {
		return nil, seqerr.Underflow
	}
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i], _ = c.At(c.count - n + i)
	}
	return out, nil
}

// TakePrefix detaches the first n elements into a freshly allocated
// sibling chunk of the same capacity; the receiver loses them. Returns
// seqerr.Underflow if n > Len().
func (c *Chunk[T, M]) TakePrefix(n int) (*Chunk[T, M], error) {
	if n > c.count {
		return nil, seqerr.Underflow
	}
	out := New[T, M](c.cap, c.policy)
	vs, _ := c.PopFrontN(n)
	_ = out.PushBackN(vs)
	return out, nil
}

// TakeSuffix detaches the last n elements into a freshly allocated
// sibling chunk of the same capacity; the receiver loses them. Returns
// seqerr.Underflow if n > Len().
func (c *Chunk[T, M]) TakeSuffix(n int) (*Chunk[T, M], error) {
	if n > c.count {
		return nil, seqerr.Underflow
	}
	out := New[T, M](c.cap, c.policy)
	vs, _ := c.PopBackN(n)
	_ = out.PushBackN(vs)
	return out, nil
}

// Concat appends all of other onto the receiver; other becomes empty.
// Precondition: c.Len()+other.Len() <= c.Cap(), violating it panics with
// InvariantViolation since the caller (engine or spine) is responsible
// for checking capacity before calling Concat.
func (c *Chunk[T, M]) Concat(other *Chunk[T, M]) {
	if c.count+other.count > c.cap {
		panic(&seqerr.InvariantViolation{Msg: fmt.Sprintf("chunk.Concat: combined count exceeds capacity (%s + %s)", c.id, other.id)})
	}
	for i := 0; i < other.count; i++ {
		v, _ := other.At(i)
		_ = c.PushBack(v)
	}
	other.clear()
}

func (c *Chunk[T, M]) clear() {
	c.head = 0
	c.count = 0
	c.meas = c.policy.Identity()
	for i := range c.buf {
		var zero T
		c.buf[i] = zero
	}
}

// Swap exchanges the entire contents (and identity) of c and other in
// O(1).
func (c *Chunk[T, M]) Swap(other *Chunk[T, M]) {
	*c, *other = *other, *c
}

// Clone deep-copies the chunk: a fresh buffer with the same elements,
// capacity, measure and a new debug identity.
func (c *Chunk[T, M]) Clone() *Chunk[T, M] {
	out := New[T, M](c.cap, c.policy)
	for i := 0; i < c.count; i++ {
		v, _ := c.At(i)
		_ = out.PushBack(v)
	}
	return out
}

// ForEach visits every element front-to-back.
func (c *Chunk[T, M]) ForEach(f func(v T)) {
	for i := 0; i < c.count; i++ {
		f(c.buf[c.physical(i)])
	}
}

// ForEachSegment calls f once for each maximal physically-contiguous run
// of the logical range [lo, hi) — up to two runs, because the circular
// layout may wrap. Each run is passed as a slice aliasing the chunk's
// backing array: f may mutate elements in place, but the slice's validity
// ends when f returns, and f must not call back into the chunk.
func (c *Chunk[T, M]) ForEachSegment(lo, hi int, f func(items []T)) {
	d.PanicIfFalse(lo >= 0 && hi <= c.count && lo <= hi, "chunk: segment range out of bounds")
	if lo == hi {
		return
	}
	start := c.physical(lo)
	n := hi - lo
	if start+n <= c.cap {
		f(c.buf[start : start+n])
		return
	}
	firstLen := c.cap - start
	f(c.buf[start:c.cap])
	f(c.buf[0 : n-firstLen])
}
