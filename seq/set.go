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
	"github.com/dolthub/chunkedseq/internal/d"
	"github.com/dolthub/chunkedseq/seqerr"
)

// Set overwrites the element at logical index i in place. Unlike
// ForEachSegment's callback (whose in-place writes leave a chunk's cached
// measure as it was), Set keeps the cached measure consistent even when the
// target chunk sits inside the spine: it detaches the chunk, mutates it,
// and rejoins the spine through the same PushBackChunk/Concat path every
// other mutation uses, so ancestor measures are rebuilt rather than left
// stale. Used by the associative map to overwrite a value without
// disturbing key order. Returns seqerr.OutOfRange if i is not in
// [0, Len()).
func (s *Sequence[T, M]) Set(i int, v T) error {
	if i < 0 || i >= s.size {
		return seqerr.OutOfRange
	}
	s.gen++
	switch {
	case i < s.front.Len():
		return s.front.Set(i, v)
	case i >= s.front.Len()+s.s.ElemCount():
		return s.back.Set(i-s.front.Len()-s.s.ElemCount(), v)
	default:
		kk := i - s.front.Len()
		left, mid, offset, right, ok := s.s.SplitByCount(kk)
		d.PanicIfFalse(ok, "seq: Set inconsistent spine split")
		d.PanicIfError(mid.Set(offset, v))
		left.PushBackChunk(mid)
		s.s = left.Concat(right)
		return nil
	}
}
