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

package seqmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScenarioInsertFindIterate(t *testing.T) {
	m := New[int, string](2)
	m = m.Insert(5, "a")
	m = m.Insert(2, "b")
	m = m.Insert(9, "c")
	m = m.Insert(5, "d")

	assert.Equal(t, 3, m.Len())

	var keys []int
	var vals []string
	m.ForEach(func(k int, v string) {
		keys = append(keys, k)
		vals = append(vals, v)
	})
	assert.Equal(t, []int{2, 5, 9}, keys)
	assert.Equal(t, []string{"b", "d", "c"}, vals)

	v, ok := m.Find(5)
	assert.True(t, ok)
	assert.Equal(t, "d", v)

	_, ok = m.Find(7)
	assert.False(t, ok)
}

func TestInsertKeepsAscendingOrder(t *testing.T) {
	m := New[int, int](4)
	order := []int{50, 10, 40, 20, 30, 10, 60}
	for _, k := range order {
		m = m.Insert(k, k*100)
	}
	assert.Equal(t, 6, m.Len())

	var keys []int
	m.ForEach(func(k int, v int) {
		keys = append(keys, k)
		assert.Equal(t, k*100, v)
	})
	assert.Equal(t, []int{10, 20, 30, 40, 50, 60}, keys)
}

func TestContainsAndErase(t *testing.T) {
	m := New[string, int](3)
	m = m.Insert("b", 2)
	m = m.Insert("a", 1)
	m = m.Insert("c", 3)

	assert.True(t, m.Contains("b"))
	assert.False(t, m.Contains("z"))

	m = m.Erase("b")
	assert.False(t, m.Contains("b"))
	assert.Equal(t, 2, m.Len())

	m = m.Erase("missing")
	assert.Equal(t, 2, m.Len())

	var keys []string
	m.ForEach(func(k string, v int) { keys = append(keys, k) })
	assert.Equal(t, []string{"a", "c"}, keys)
}

func TestOverwriteDoesNotDuplicate(t *testing.T) {
	m := New[int, string](4)
	m = m.Insert(1, "x")
	m = m.Insert(1, "y")
	m = m.Insert(1, "z")
	assert.Equal(t, 1, m.Len())
	v, ok := m.Find(1)
	assert.True(t, ok)
	assert.Equal(t, "z", v)
}

func TestManyEntriesAcrossChunkBoundaries(t *testing.T) {
	const n = 2000
	m := New[int, int](8)
	for i := n - 1; i >= 0; i-- {
		m = m.Insert(i, i*2)
	}
	assert.Equal(t, n, m.Len())

	for i := 0; i < n; i += 137 {
		v, ok := m.Find(i)
		assert.True(t, ok)
		assert.Equal(t, i*2, v)
	}

	var last = -1
	count := 0
	m.ForEach(func(k, v int) {
		assert.Greater(t, k, last)
		last = k
		count++
	})
	assert.Equal(t, n, count)
}

func TestCloneIsIndependent(t *testing.T) {
	m := New[int, int](4)
	m = m.Insert(1, 1)
	m = m.Insert(2, 2)
	cp := m.Clone()
	cp = cp.Insert(3, 3)

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, 3, cp.Len())
	assert.False(t, m.Contains(3))
}
