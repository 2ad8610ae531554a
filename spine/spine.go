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

// Package spine implements the balanced tree of leaf chunks that backs the
// chunked-sequence engine's middle section. Two interchangeable flavors
// are provided: Tree23, a conventional 2-3 tree realizing a "bootstrapped
// spine" as a tagged recursive sum, and FingerTree, a classic 2-3 finger
// tree with 1-4 item outer digits. The engine never observes which
// flavor it holds.
package spine

import (
	"github.com/dolthub/chunkedseq/chunk"
	"github.com/dolthub/chunkedseq/measure"
)

// Spine is the abstract contract both flavors implement. Every leaf chunk
// held in a Spine holds more than K/2 elements (the half-full invariant).
// Callers (the engine) are responsible for upholding that before
// calling PushFrontChunk/PushBackChunk, and for absorbing a chunk returned
// by PopFrontChunk/PopBackChunk immediately rather than leaving it
// orphaned.
type Spine[T any, M any] interface {
	// Empty reports whether the spine holds any leaf chunks.
	Empty() bool

	// PushFrontChunk inserts c as the new leftmost leaf.
	PushFrontChunk(c *chunk.Chunk[T, M])

	// PushBackChunk inserts c as the new rightmost leaf.
	PushBackChunk(c *chunk.Chunk[T, M])

	// PopFrontChunk removes and returns the leftmost leaf chunk. ok is
	// false iff the spine was empty.
	PopFrontChunk() (c *chunk.Chunk[T, M], ok bool)

	// PopBackChunk removes and returns the rightmost leaf chunk. ok is
	// false iff the spine was empty.
	PopBackChunk() (c *chunk.Chunk[T, M], ok bool)

	// PeekFrontChunk borrows the leftmost leaf without removing it.
	PeekFrontChunk() (c *chunk.Chunk[T, M], ok bool)

	// PeekBackChunk borrows the rightmost leaf without removing it.
	PeekBackChunk() (c *chunk.Chunk[T, M], ok bool)

	// TotalMeasure returns the combined measure of every leaf.
	TotalMeasure() M

	// SplitByMeasure finds the first leaf at which a monotone predicate
	// over accumulated measure (folded left to right, including the
	// candidate leaf's own measure) first becomes true, and splits the
	// spine there. pred must be monotone:
	// once true, it stays true for every later leaf. Returns the spine
	// left of the matching leaf, the matching leaf itself, the spine
	// right of it, and the measure accumulated strictly before the
	// matching leaf. ok is false if no leaf satisfies pred (pred is
	// false even after the last leaf).
	SplitByMeasure(pred func(acc M) bool) (left Spine[T, M], mid *chunk.Chunk[T, M], right Spine[T, M], accBefore M, ok bool)

	// Concat destructively appends other's leaves after the receiver's
	// and returns the merged spine; the receiver and other must not be
	// used afterward except through the returned value.
	Concat(other Spine[T, M]) Spine[T, M]

	// NumLeaves returns the number of leaf chunks in the spine.
	NumLeaves() int

	// ElemCount returns the total number of sequence elements held
	// across all leaves, independent of the measure policy. This is
	// what backs index-based operations (At, SplitAt, Insert, Erase)
	// even when the configured measure carries no size information at
	// all, as with a bag's Trivial measure.
	ElemCount() int

	// SplitByCount locates the leaf straddling logical element index k
	// (0-based) purely by element count and splits the spine there,
	// mirroring SplitByMeasure but without any dependency on the
	// measure policy. mid is returned whole (not yet cut); offsetInMid
	// is where the caller should cut it. ok is false if k does not
	// fall strictly inside the spine's element range.
	SplitByCount(k int) (left Spine[T, M], mid *chunk.Chunk[T, M], offsetInMid int, right Spine[T, M], ok bool)

	// Leaves visits every leaf chunk, front to back.
	Leaves(f func(c *chunk.Chunk[T, M]))
}

// NewTree23Spine returns an empty Tree23 spine through the abstract Spine
// interface, so it can be used directly wherever a factory function
// returning Spine[T, M] is expected (the concrete *Tree23 constructor's
// return type doesn't satisfy that function shape on its own, since Go
// requires exact result-type identity for function-value assignment).
func NewTree23Spine[T any, M any](policy measure.Policy[T, M]) Spine[T, M] {
	return NewTree23[T, M](policy)
}

// NewFingerTreeSpine is NewTree23Spine's FingerTree counterpart.
func NewFingerTreeSpine[T any, M any](policy measure.Policy[T, M]) Spine[T, M] {
	return NewFingerTree[T, M](policy)
}
