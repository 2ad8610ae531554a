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

package chunk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/chunkedseq/measure"
	"github.com/dolthub/chunkedseq/seqerr"
)

func newSizeChunk(cap int) *Chunk[int, int] {
	return New[int, int](cap, measure.Size[int, int]{})
}

func collect(c *Chunk[int, int]) []int {
	out := make([]int, 0, c.Len())
	c.ForEach(func(v int) { out = append(out, v) })
	return out
}

func TestPushPopBasic(t *testing.T) {
	c := newSizeChunk(4)
	require.NoError(t, c.PushBack(1))
	require.NoError(t, c.PushBack(2))
	require.NoError(t, c.PushFront(0))
	assert.Equal(t, []int{0, 1, 2}, collect(c))
	assert.Equal(t, 3, c.Measure())

	v, err := c.PopFront()
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	v, err = c.PopBack()
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	assert.Equal(t, []int{1}, collect(c))
	assert.Equal(t, 1, c.Measure())
}

func TestCapacityFull(t *testing.T) {
	c := newSizeChunk(2)
	require.NoError(t, c.PushBack(1))
	require.NoError(t, c.PushBack(2))
	assert.ErrorIs(t, c.PushBack(3), seqerr.CapacityFull)
	assert.ErrorIs(t, c.PushFront(3), seqerr.CapacityFull)
}

func TestEmptyPop(t *testing.T) {
	c := newSizeChunk(2)
	_, err := c.PopFront()
	assert.ErrorIs(t, err, seqerr.Empty)
	_, err = c.PopBack()
	assert.ErrorIs(t, err, seqerr.Empty)
}

func TestAtOutOfRange(t *testing.T) {
	c := newSizeChunk(2)
	_ = c.PushBack(1)
	_, err := c.At(-1)
	assert.ErrorIs(t, err, seqerr.OutOfRange)
	_, err = c.At(1)
	assert.ErrorIs(t, err, seqerr.OutOfRange)
}

func TestWraparoundSegments(t *testing.T) {
	c := newSizeChunk(4)
	// push/pop to walk head around the buffer so logical [0,count) wraps
	// physically.
	for i := 0; i < 3; i++ {
		require.NoError(t, c.PushBack(i))
	}
	_, _ = c.PopFront()
	_, _ = c.PopFront()
	require.NoError(t, c.PushBack(3))
	require.NoError(t, c.PushBack(4))
	assert.Equal(t, []int{2, 3, 4}, collect(c))

	var runs [][]int
	c.ForEachSegment(0, c.Len(), func(items []int) {
		cp := append([]int(nil), items...)
		runs = append(runs, cp)
	})
	flat := []int{}
	for _, r := range runs {
		flat = append(flat, r...)
	}
	assert.Equal(t, []int{2, 3, 4}, flat)
}

func TestBulkOps(t *testing.T) {
	c := newSizeChunk(8)
	require.NoError(t, c.PushBackN([]int{1, 2, 3}))
	assert.Equal(t, []int{1, 2, 3}, collect(c))

	require.NoError(t, c.PushFrontN([]int{-2, -1, 0}))
	assert.Equal(t, []int{-2, -1, 0, 1, 2, 3}, collect(c))

	front, err := c.FrontN(2)
	require.NoError(t, err)
	assert.Equal(t, []int{-2, -1}, front)

	back, err := c.BackN(2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, back)

	popped, err := c.PopFrontN(2)
	require.NoError(t, err)
	assert.Equal(t, []int{-2, -1}, popped)

	popped, err = c.PopBackN(2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, popped)

	assert.Equal(t, []int{0, 1}, collect(c))

	_, err = c.PopFrontN(10)
	assert.ErrorIs(t, err, seqerr.Underflow)
	_, err = c.BackN(10)
	assert.ErrorIs(t, err, seqerr.Underflow)
}

func TestTakePrefixSuffix(t *testing.T) {
	c := newSizeChunk(8)
	require.NoError(t, c.PushBackN([]int{1, 2, 3, 4, 5}))

	pre, err := c.TakePrefix(2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, collect(pre))
	assert.Equal(t, []int{3, 4, 5}, collect(c))

	suf, err := c.TakeSuffix(2)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5}, collect(suf))
	assert.Equal(t, []int{3}, collect(c))
}

func TestConcat(t *testing.T) {
	a := newSizeChunk(8)
	b := newSizeChunk(8)
	_ = a.PushBackN([]int{1, 2})
	_ = b.PushBackN([]int{3, 4})

	a.Concat(b)
	assert.Equal(t, []int{1, 2, 3, 4}, collect(a))
	assert.Equal(t, 0, b.Len())
	assert.True(t, b.IsEmpty())
}

func TestSwap(t *testing.T) {
	a := newSizeChunk(4)
	b := newSizeChunk(4)
	_ = a.PushBack(1)
	_ = b.PushBack(2)
	_ = b.PushBack(3)

	a.Swap(b)
	assert.Equal(t, []int{2, 3}, collect(a))
	assert.Equal(t, []int{1}, collect(b))
}

type testEntry struct {
	k int
	v string
}

func (e testEntry) Key() int { return e.k }

func TestMaxKeyRecomputesOnMutation(t *testing.T) {
	c := New[testEntry, measure.KeyOrBottom[int]](4, measure.MaxKey[int, testEntry]{})
	_ = c.PushBack(testEntry{k: 5})
	_ = c.PushBack(testEntry{k: 9})
	assert.Equal(t, 9, c.Measure().Key())

	_, _ = c.PopBack()
	assert.Equal(t, 5, c.Measure().Key())
}
