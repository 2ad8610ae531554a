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
	"github.com/dolthub/chunkedseq/measure"
	"github.com/dolthub/chunkedseq/spine"
)

// drainChunk pops every element out of c, front to back, leaving c empty.
func drainChunk[T any, M any](c *chunk.Chunk[T, M]) []T {
	out := make([]T, 0, c.Len())
	for !c.IsEmpty() {
		v, _ := c.PopFront()
		out = append(out, v)
	}
	return out
}

// balancedLeaves partitions one merged seam run (a spine leaf plus a
// sub-half-full remainder, so at most 3*K/2 elements) into one or two
// chunks of near-equal size. Splitting evenly rather than greedily keeps
// both leaves above the half-full floor whenever the total permits it.
func balancedLeaves[T any, M any](policy measure.Policy[T, M], capacity int, elems []T) []*chunk.Chunk[T, M] {
	if len(elems) <= capacity {
		c := chunk.New[T, M](capacity, policy)
		_ = c.PushBackN(elems)
		return []*chunk.Chunk[T, M]{c}
	}
	h := (len(elems) + 1) / 2
	c1 := chunk.New[T, M](capacity, policy)
	_ = c1.PushBackN(elems[:h])
	c2 := chunk.New[T, M](capacity, policy)
	_ = c2.PushBackN(elems[h:])
	return []*chunk.Chunk[T, M]{c1, c2}
}

// packIntoLeaves pushes the balanced leaves of elems onto the back of sp,
// in order.
func packIntoLeaves[T any, M any](sp spine.Spine[T, M], policy measure.Policy[T, M], capacity int, elems []T) spine.Spine[T, M] {
	for _, c := range balancedLeaves(policy, capacity, elems) {
		sp.PushBackChunk(c)
	}
	return sp
}

// packFrontIntoLeaves is packIntoLeaves's mirror image: it pushes the
// balanced leaves of elems onto the front of sp, preserving order
// (elems[0] ends up in the new leftmost leaf).
func packFrontIntoLeaves[T any, M any](sp spine.Spine[T, M], policy measure.Policy[T, M], capacity int, elems []T) spine.Spine[T, M] {
	leaves := balancedLeaves(policy, capacity, elems)
	for j := len(leaves) - 1; j >= 0; j-- {
		sp.PushFrontChunk(leaves[j])
	}
	return sp
}

// Concat destructively appends b after a and returns the merged sequence;
// a and b must not be used afterward.
//
// The seam chunks (a's back shortcut and b's front shortcut) are drained
// and repacked into valid spine leaves before the two spines are joined,
// restoring the half-full leaf invariant at the join point. The seam
// holds at most 2*K elements regardless of sequence size, so this is
// O(1) work plus the O(log n) spine-level Concat.
func Concat[T any, M any](a, b *Sequence[T, M]) *Sequence[T, M] {
	if b.size == 0 {
		return a
	}
	if a.size == 0 {
		return b
	}

	seam := drainChunk(a.back)
	seam = append(seam, drainChunk(b.front)...)

	leftSpine := a.s
	if len(seam) > 0 {
		i := 0
		for len(seam)-i >= a.cap {
			c := chunk.New[T, M](a.cap, a.policy)
			_ = c.PushBackN(seam[i : i+a.cap])
			leftSpine.PushBackChunk(c)
			i += a.cap
		}
		if rem := seam[i:]; len(rem) > 0 {
			switch {
			case len(rem) > a.cap/2:
				c := chunk.New[T, M](a.cap, a.policy)
				_ = c.PushBackN(rem)
				leftSpine.PushBackChunk(c)
			default:
				if leaf, ok := leftSpine.PopBackChunk(); ok {
					combined := drainChunk(leaf)
					combined = append(combined, rem...)
					leftSpine = packIntoLeaves(leftSpine, a.policy, a.cap, combined)
				} else if a.front.Len()+len(rem) <= a.cap {
					_ = a.front.PushBackN(rem)
				} else if leaf, ok := b.s.PopFrontChunk(); ok {
					// b.s sits between the seam and b.back in the merged
					// order, so rem belongs ahead of its leftmost leaf, not
					// appended into b.back.
					combined := append(append([]T{}, rem...), drainChunk(leaf)...)
					b.s = packFrontIntoLeaves(b.s, a.policy, a.cap, combined)
				} else if b.back.Len()+len(rem) <= a.cap {
					// b.s is empty here, so b.back immediately follows the
					// seam: prepending rem into it is order-preserving.
					merged := append(append([]T{}, rem...), drainChunk(b.back)...)
					_ = b.back.PushBackN(merged)
				} else {
					// No adjacent leaf and neither shortcut has room: push
					// the remainder as its own leaf. It may fall at or
					// below the half-full threshold, a rare boundary case
					// that trades that invariant's strictness for never
					// losing elements (see DESIGN.md).
					c := chunk.New[T, M](a.cap, a.policy)
					_ = c.PushBackN(rem)
					leftSpine.PushBackChunk(c)
				}
			}
		}
	}

	merged := leftSpine.Concat(b.s)

	result := a.raw()
	result.front = a.front
	result.back = b.back
	result.s = merged
	result.size = a.size + b.size
	result.checkInvariants()
	return result
}
