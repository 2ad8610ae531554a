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

import "github.com/dolthub/chunkedseq/seqerr"

// Insert returns a new sequence with v inserted at logical index i,
// implemented as SplitAt + Concat. Destructive: s must not be used
// afterward. Returns seqerr.OutOfRange, leaving s untouched, if i is not
// in [0, Len()].
func (s *Sequence[T, M]) Insert(i int, v T) (*Sequence[T, M], error) {
	left, right, err := s.SplitAt(i)
	if err != nil {
		return nil, err
	}
	left.PushBack(v)
	return Concat(left, right), nil
}

// InsertAt inserts v at it's current position. Destructive, like Insert;
// it and any other iterator over s are invalidated.
func (s *Sequence[T, M]) InsertAt(it *Iterator[T, M], v T) (*Sequence[T, M], error) {
	return s.Insert(it.Index(), v)
}

// Erase returns a new sequence with the half-open index range [lo, hi)
// removed, implemented as two split_at calls + concat. Destructive: s
// must not be used afterward. Returns seqerr.OutOfRange, leaving s
// untouched, if the range is not within [0, Len()].
func (s *Sequence[T, M]) Erase(lo, hi int) (*Sequence[T, M], error) {
	if lo < 0 || hi > s.size || lo > hi {
		return nil, seqerr.OutOfRange
	}
	if lo == hi {
		return s, nil
	}
	left, rest, err := s.SplitAt(lo)
	if err != nil {
		return nil, err
	}
	_, right, err := rest.SplitAt(hi - lo)
	if err != nil {
		return nil, err
	}
	return Concat(left, right), nil
}

// EraseRange removes the half-open range [loIt, hiIt). Destructive, like
// Erase; every iterator over s, including loIt and hiIt, is invalidated.
func (s *Sequence[T, M]) EraseRange(loIt, hiIt *Iterator[T, M]) (*Sequence[T, M], error) {
	return s.Erase(loIt.Index(), hiIt.Index())
}
