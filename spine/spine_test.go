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

package spine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/chunkedseq/chunk"
	"github.com/dolthub/chunkedseq/measure"
)

const chunkCap = 4

func flavors() map[string]func() Spine[int, int] {
	return map[string]func() Spine[int, int]{
		"Tree23":     func() Spine[int, int] { return NewTree23[int, int](measure.Size[int, int]{}) },
		"FingerTree": func() Spine[int, int] { return NewFingerTree[int, int](measure.Size[int, int]{}) },
	}
}

func sizeChunk(vs ...int) *chunk.Chunk[int, int] {
	c := chunk.New[int, int](chunkCap, measure.Size[int, int]{})
	for _, v := range vs {
		_ = c.PushBack(v)
	}
	return c
}

func drainFront(t *testing.T, s Spine[int, int]) []int {
	var out []int
	for {
		c, ok := s.PopFrontChunk()
		if !ok {
			break
		}
		c.ForEach(func(v int) { out = append(out, v) })
	}
	return out
}

func TestSpineEmpty(t *testing.T) {
	for name, newSpine := range flavors() {
		t.Run(name, func(t *testing.T) {
			s := newSpine()
			assert.True(t, s.Empty())
			assert.Equal(t, 0, s.NumLeaves())
			_, ok := s.PopFrontChunk()
			assert.False(t, ok)
			_, ok = s.PopBackChunk()
			assert.False(t, ok)
		})
	}
}

func TestSpinePushPopFrontBack(t *testing.T) {
	for name, newSpine := range flavors() {
		t.Run(name, func(t *testing.T) {
			s := newSpine()
			for i := 0; i < 12; i++ {
				s.PushBackChunk(sizeChunk(i))
			}
			assert.Equal(t, 12, s.NumLeaves())
			assert.Equal(t, 12, s.TotalMeasure())

			front, ok := s.PeekFrontChunk()
			require.True(t, ok)
			v, _ := front.At(0)
			assert.Equal(t, 0, v)

			back, ok := s.PeekBackChunk()
			require.True(t, ok)
			v, _ = back.At(0)
			assert.Equal(t, 11, v)

			var popped []int
			for i := 0; i < 6; i++ {
				c, ok := s.PopFrontChunk()
				require.True(t, ok)
				v, _ := c.At(0)
				popped = append(popped, v)
			}
			assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, popped)
			assert.Equal(t, 6, s.NumLeaves())

			popped = nil
			for i := 0; i < 6; i++ {
				c, ok := s.PopBackChunk()
				require.True(t, ok)
				v, _ := c.At(0)
				popped = append(popped, v)
			}
			assert.Equal(t, []int{11, 10, 9, 8, 7, 6}, popped)
			assert.True(t, s.Empty())
		})
	}
}

func TestSpinePushFrontOrder(t *testing.T) {
	for name, newSpine := range flavors() {
		t.Run(name, func(t *testing.T) {
			s := newSpine()
			for i := 0; i < 10; i++ {
				s.PushFrontChunk(sizeChunk(i))
			}
			var out []int
			s.Leaves(func(c *chunk.Chunk[int, int]) {
				v, _ := c.At(0)
				out = append(out, v)
			})
			assert.Equal(t, []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0}, out)
		})
	}
}

func TestSpineConcat(t *testing.T) {
	for name, newSpine := range flavors() {
		t.Run(name, func(t *testing.T) {
			a := newSpine()
			b := newSpine()
			for i := 0; i < 7; i++ {
				a.PushBackChunk(sizeChunk(i))
			}
			for i := 7; i < 15; i++ {
				b.PushBackChunk(sizeChunk(i))
			}
			merged := a.Concat(b)
			assert.Equal(t, 15, merged.NumLeaves())
			var out []int
			merged.Leaves(func(c *chunk.Chunk[int, int]) {
				v, _ := c.At(0)
				out = append(out, v)
			})
			expect := make([]int, 15)
			for i := range expect {
				expect[i] = i
			}
			assert.Equal(t, expect, out)
		})
	}
}

func TestSpineSplitByMeasure(t *testing.T) {
	for name, newSpine := range flavors() {
		t.Run(name, func(t *testing.T) {
			s := newSpine()
			for i := 0; i < 10; i++ {
				s.PushBackChunk(sizeChunk(i))
			}
			left, mid, right, accBefore, ok := s.SplitByMeasure(func(acc int) bool { return acc >= 4 })
			require.True(t, ok)
			assert.Equal(t, 3, accBefore)
			v, _ := mid.At(0)
			assert.Equal(t, 3, v)
			assert.Equal(t, 3, left.NumLeaves())
			assert.Equal(t, 6, right.NumLeaves())

			var leftOut, rightOut []int
			left.Leaves(func(c *chunk.Chunk[int, int]) { v, _ := c.At(0); leftOut = append(leftOut, v) })
			right.Leaves(func(c *chunk.Chunk[int, int]) { v, _ := c.At(0); rightOut = append(rightOut, v) })
			assert.Equal(t, []int{0, 1, 2}, leftOut)
			assert.Equal(t, []int{4, 5, 6, 7, 8, 9}, rightOut)
		})
	}
}

func TestSpineSplitByMeasureNotFound(t *testing.T) {
	for name, newSpine := range flavors() {
		t.Run(name, func(t *testing.T) {
			s := newSpine()
			for i := 0; i < 5; i++ {
				s.PushBackChunk(sizeChunk(i))
			}
			_, mid, _, _, ok := s.SplitByMeasure(func(acc int) bool { return acc >= 100 })
			assert.False(t, ok)
			assert.Nil(t, mid)
		})
	}
}

func TestSpineLargeRoundTrip(t *testing.T) {
	for name, newSpine := range flavors() {
		t.Run(name, func(t *testing.T) {
			s := newSpine()
			const n = 200
			for i := 0; i < n; i++ {
				if i%2 == 0 {
					s.PushBackChunk(sizeChunk(i))
				} else {
					s.PushFrontChunk(sizeChunk(i))
				}
			}
			assert.Equal(t, n, s.NumLeaves())
			assert.Equal(t, n, s.TotalMeasure())

			out := drainFront(t, s)
			assert.Len(t, out, n)
		})
	}
}
