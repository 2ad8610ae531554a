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

import "github.com/dolthub/chunkedseq/chunk"

// ForEach visits every element front to back.
func (s *Sequence[T, M]) ForEach(f func(v T)) {
	s.front.ForEach(f)
	s.s.Leaves(func(c *chunk.Chunk[T, M]) { c.ForEach(f) })
	s.back.ForEach(f)
}

// ForEachSegment calls f once for each maximal physically-contiguous run
// of elements, front to back: up to two runs per chunk because of the
// circular layout. f may mutate element values in
// place but must not mutate the sequence's structure, and the slice it
// receives is only valid for the duration of the call.
func (s *Sequence[T, M]) ForEachSegment(f func(items []T)) {
	s.front.ForEachSegment(0, s.front.Len(), f)
	s.s.Leaves(func(c *chunk.Chunk[T, M]) { c.ForEachSegment(0, c.Len(), f) })
	s.back.ForEachSegment(0, s.back.Len(), f)
}

// ForEachSegmentInRange is ForEachSegment restricted to the half-open
// index range [lo, hi).
func (s *Sequence[T, M]) ForEachSegmentInRange(lo, hi int, f func(items []T)) {
	if lo >= hi {
		return
	}
	pos := 0

	step := func(chunkLen int, visit func(lo, hi int)) {
		segLo, segHi := lo-pos, hi-pos
		if segLo < 0 {
			segLo = 0
		}
		if segHi > chunkLen {
			segHi = chunkLen
		}
		if segLo < segHi {
			visit(segLo, segHi)
		}
		pos += chunkLen
	}

	step(s.front.Len(), func(l, h int) { s.front.ForEachSegment(l, h, f) })
	s.s.Leaves(func(c *chunk.Chunk[T, M]) {
		step(c.Len(), func(l, h int) { c.ForEachSegment(l, h, f) })
	})
	step(s.back.Len(), func(l, h int) { s.back.ForEachSegment(l, h, f) })
}
