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
	"github.com/dolthub/chunkedseq/seqerr"
)

// SplitAt splits the sequence at logical index k (0 <= k <= Len()) into
// two sequences L, R with Len(L) = k and L-then-R equal to the original.
// SplitAt is destructive: it repurposes the receiver's owned chunks into
// the two results, and the receiver must not be used afterward (this
// library has no persistent, structurally-immutable mode). Returns
// seqerr.OutOfRange, leaving the receiver untouched, if k is out of
// range.
func (s *Sequence[T, M]) SplitAt(k int) (left, right *Sequence[T, M], err error) {
	if k < 0 || k > s.size {
		return nil, nil, seqerr.OutOfRange
	}
	s.gen++

	switch {
	case k <= s.front.Len():
		fr, splitErr := s.front.TakeSuffix(s.front.Len() - k)
		d.PanicIfError(splitErr)
		left = s.raw()
		left.front = s.front
		left.back = chunk.New[T, M](s.cap, s.policy)
		left.s = s.newSpine(s.policy)
		left.size = k

		right = s.raw()
		right.front = fr
		right.back = s.back
		right.s = s.s
		right.size = s.size - k

	case k < s.front.Len()+s.s.ElemCount():
		kk := k - s.front.Len()
		leftSpine, mid, offset, rightSpine, ok := s.s.SplitByCount(kk)
		d.PanicIfFalse(ok, "seq: SplitAt inconsistent spine split")
		midRight, splitErr := mid.TakeSuffix(mid.Len() - offset)
		d.PanicIfError(splitErr)

		left = s.raw()
		left.front = s.front
		left.back = mid
		left.s = leftSpine
		left.size = k

		right = s.raw()
		right.front = midRight
		right.back = s.back
		right.s = rightSpine
		right.size = s.size - k

	default:
		kk := k - s.front.Len() - s.s.ElemCount()
		br, splitErr := s.back.TakeSuffix(s.back.Len() - kk)
		d.PanicIfError(splitErr)

		left = s.raw()
		left.front = s.front
		left.back = s.back
		left.s = s.s
		left.size = k

		right = s.raw()
		right.front = br
		right.back = chunk.New[T, M](s.cap, s.policy)
		right.s = s.newSpine(s.policy)
		right.size = s.size - k
	}

	left.checkInvariants()
	right.checkInvariants()
	return left, right, nil
}
