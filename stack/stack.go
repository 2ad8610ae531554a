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

// Package stack is the chunked-sequence engine restricted to back-oriented
// operations. It wraps the same engine deque uses but hides the
// front-side methods from its exported surface.
package stack

import (
	"github.com/dolthub/chunkedseq/measure"
	"github.com/dolthub/chunkedseq/seq"
	"github.com/dolthub/chunkedseq/seqerr"
	"github.com/dolthub/chunkedseq/spine"
)

// DefaultCap is the chunk capacity FromSlice uses; New takes K from the
// caller.
const DefaultCap = 512

// Stack[T] is a LIFO container backed by the chunked-sequence engine.
type Stack[T any] struct {
	seq *seq.Sequence[T, int]
}

// New constructs an empty stack with chunk capacity K.
func New[T any](capacity int) Stack[T] {
	return Stack[T]{seq.New[T, int](capacity, measure.Size[T, int]{}, spine.NewTree23Spine[T, int])}
}

// FromSlice builds a stack of the default capacity from xs, bottom to
// top (xs[len(xs)-1] ends up on top).
func FromSlice[T any](xs []T) Stack[T] {
	return Stack[T]{seq.FromSlice[T, int](DefaultCap, measure.Size[T, int]{}, spine.NewTree23Spine[T, int], xs)}
}

// Len returns the number of elements on the stack.
func (s Stack[T]) Len() int { return s.seq.Len() }

// IsEmpty reports whether the stack holds zero elements.
func (s Stack[T]) IsEmpty() bool { return s.seq.IsEmpty() }

// Push places v on top of the stack.
func (s Stack[T]) Push(v T) { s.seq.PushBack(v) }

// Pop removes and returns the top element, or seqerr.Empty if the stack
// is empty.
func (s Stack[T]) Pop() (T, error) { return s.seq.PopBack() }

// Peek returns the top element without removing it.
func (s Stack[T]) Peek() (T, error) {
	var zero T
	if s.seq.IsEmpty() {
		return zero, seqerr.Empty
	}
	return s.seq.Back()
}

// PushN pushes vs in order; vs[len(vs)-1] ends up on top.
func (s Stack[T]) PushN(vs []T) { s.seq.PushNBack(vs) }

// PopN removes and returns the top n elements, topmost first. Returns
// seqerr.Underflow if n exceeds Len().
func (s Stack[T]) PopN(n int) ([]T, error) {
	vs, err := s.seq.PopNBack(n)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(vs)-1; i < j; i, j = i+1, j-1 {
		vs[i], vs[j] = vs[j], vs[i]
	}
	return vs, nil
}

// ForEach visits every element bottom to top.
func (s Stack[T]) ForEach(f func(v T)) { s.seq.ForEach(f) }

// Clone deep-copies the stack.
func (s Stack[T]) Clone() Stack[T] { return Stack[T]{s.seq.Clone()} }
