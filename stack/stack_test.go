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

package stack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/chunkedseq/seqerr"
)

func TestStackPushPopOrder(t *testing.T) {
	s := New[int](4)
	for i := 0; i < 10; i++ {
		s.Push(i)
	}
	assert.Equal(t, 10, s.Len())

	for i := 9; i >= 0; i-- {
		v, err := s.Pop()
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}
	assert.True(t, s.IsEmpty())
	_, err := s.Pop()
	assert.ErrorIs(t, err, seqerr.Empty)
}

func TestStackPeek(t *testing.T) {
	s := New[string](4)
	s.Push("a")
	s.Push("b")
	v, err := s.Peek()
	require.NoError(t, err)
	assert.Equal(t, "b", v)
	assert.Equal(t, 2, s.Len())
}

func TestStackPushNPopN(t *testing.T) {
	s := FromSlice([]int{1, 2, 3})
	s.PushN([]int{4, 5})
	popped, err := s.PopN(3)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 4, 3}, popped)
	assert.Equal(t, 2, s.Len())

	_, err = s.PopN(100)
	assert.ErrorIs(t, err, seqerr.Underflow)
}
