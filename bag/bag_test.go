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

package bag

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/chunkedseq/seqerr"
)

func collect(b Bag[int]) []int {
	var out []int
	b.ForEach(func(v int) { out = append(out, v) })
	sort.Ints(out)
	return out
}

func TestBagInsertTake(t *testing.T) {
	b := New[int](4)
	for i := 0; i < 20; i++ {
		b.Insert(i)
	}
	assert.Equal(t, 20, b.Len())

	want := make([]int, 20)
	for i := range want {
		want[i] = i
	}
	assert.Equal(t, want, collect(b))
}

func TestBagSplitApproximateCoversAllElements(t *testing.T) {
	b := FromSlice([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	left, right, err := b.SplitApproximate()
	require.NoError(t, err)

	all := append(collect(left), collect(right)...)
	sort.Ints(all)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, all)
	assert.InDelta(t, 5, left.Len(), 1)
	assert.InDelta(t, 5, right.Len(), 1)
}

func TestBagSplitApproximateEmpty(t *testing.T) {
	b := New[int](4)
	_, _, err := b.SplitApproximate()
	assert.ErrorIs(t, err, seqerr.Empty)
}

func TestBagSplitAtExact(t *testing.T) {
	b := FromSlice([]int{0, 1, 2, 3, 4, 5})
	left, right, err := b.SplitAt(2)
	require.NoError(t, err)
	assert.Equal(t, 2, left.Len())
	assert.Equal(t, 4, right.Len())
}

func TestBagConcat(t *testing.T) {
	a := FromSlice([]int{1, 2, 3})
	b := FromSlice([]int{4, 5, 6})
	merged := Concat(a, b)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, collect(merged))
}
