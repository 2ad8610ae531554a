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

package deque

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect[T any](d Deque[T]) []T {
	out := make([]T, 0, d.Len())
	d.ForEach(func(v T) { out = append(out, v) })
	return out
}

func TestDequeBasic(t *testing.T) {
	d := New[int](4)
	for i := 0; i < 20; i++ {
		d.PushBack(i)
	}
	for i := 20; i < 40; i++ {
		d.PushFront(i)
	}
	assert.Equal(t, 40, d.Len())

	v, err := d.Front()
	require.NoError(t, err)
	assert.Equal(t, 39, v)

	v, err = d.Back()
	require.NoError(t, err)
	assert.Equal(t, 19, v)
}

func TestDequeSplitConcat(t *testing.T) {
	d := FromSlice([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	left, right, err := d.SplitAt(4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, collect(left))
	assert.Equal(t, []int{4, 5, 6, 7, 8, 9}, collect(right))

	merged := Concat(left, right)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, collect(merged))
}

func TestDequeInsertErase(t *testing.T) {
	d := New[string](2)
	d, err := d.Insert(0, "b")
	require.NoError(t, err)
	d, err = d.Insert(0, "a")
	require.NoError(t, err)
	d, err = d.Insert(2, "c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, collect(d))

	d, err = d.Erase(1, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, collect(d))
}

func TestDequeFingerTreeFlavor(t *testing.T) {
	d := NewFingerTree[int](4)
	for i := 0; i < 50; i++ {
		d.PushBack(i)
	}
	want := make([]int, 50)
	for i := range want {
		want[i] = i
	}
	assert.Equal(t, want, collect(d))
}

func TestDequeCloneIndependent(t *testing.T) {
	d := FromSlice([]int{1, 2, 3})
	c := d.Clone()
	c.PushBack(4)
	assert.Equal(t, []int{1, 2, 3}, collect(d))
	assert.Equal(t, []int{1, 2, 3, 4}, collect(c))
}
