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

// PushNFront pushes vs onto the front in bulk, preserving order (vs[0]
// ends up frontmost). Equivalent to pushing each element individually,
// last element first.
func (s *Sequence[T, M]) PushNFront(vs []T) {
	for i := len(vs) - 1; i >= 0; i-- {
		s.PushFront(vs[i])
	}
}

// PushNBack pushes vs onto the back in bulk, preserving order.
func (s *Sequence[T, M]) PushNBack(vs []T) {
	for _, v := range vs {
		s.PushBack(v)
	}
}

// PopNFront removes and returns the first n elements, in order. Returns
// seqerr.Underflow, leaving the sequence unchanged, if n > Len().
func (s *Sequence[T, M]) PopNFront(n int) ([]T, error) {
	if n > s.size {
		return nil, seqerr.Underflow
	}
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i], _ = s.PopFront()
	}
	return out, nil
}

// PopNBack removes and returns the last n elements, in sequence order
// (out[len(out)-1] was the back element). Returns seqerr.Underflow,
// leaving the sequence unchanged, if n > Len().
func (s *Sequence[T, M]) PopNBack(n int) ([]T, error) {
	if n > s.size {
		return nil, seqerr.Underflow
	}
	out := make([]T, n)
	for i := n - 1; i >= 0; i-- {
		out[i], _ = s.PopBack()
	}
	return out, nil
}

// FrontN reads (without removing) the first n elements. Returns
// seqerr.Underflow if n > Len().
func (s *Sequence[T, M]) FrontN(n int) ([]T, error) {
	if n > s.size {
		return nil, seqerr.Underflow
	}
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i], _ = s.At(i)
	}
	return out, nil
}

// BackN reads (without removing) the last n elements, in sequence order.
// Returns seqerr.Underflow if n > Len().
func (s *Sequence[T, M]) BackN(n int) ([]T, error) {
	if n > s.size {
		return nil, seqerr.Underflow
	}
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i], _ = s.At(s.size - n + i)
	}
	return out, nil
}
