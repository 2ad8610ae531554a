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

package measure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrivial(t *testing.T) {
	var p Trivial[int]
	assert.Equal(t, Unit{}, p.Identity())
	assert.Equal(t, Unit{}, p.Lift(42))
	assert.Equal(t, Unit{}, p.Combine(p.Lift(1), p.Lift(2)))
	assert.True(t, p.HasInverse())
}

func TestSize(t *testing.T) {
	var p Size[string, int]
	assert.Equal(t, 0, p.Identity())
	assert.Equal(t, 1, p.Lift("x"))

	total := p.Identity()
	for _, v := range []string{"a", "b", "c"} {
		total = p.Combine(total, p.Lift(v))
	}
	assert.Equal(t, 3, total)
	assert.Equal(t, 2, p.Uncombine(total, 1))
}

func TestWeight(t *testing.T) {
	p := Weight[string, int]{W: func(s string) int { return len(s) }}
	assert.Equal(t, 0, p.Identity())
	assert.Equal(t, 3, p.Lift("abc"))

	total := p.Combine(p.Lift("ab"), p.Lift("cde"))
	assert.Equal(t, 5, total)
	assert.Equal(t, 3, p.Uncombine(total, 2))
}

type entry struct {
	k int
	v string
}

func (e entry) Key() int { return e.k }

func TestMaxKey(t *testing.T) {
	var p MaxKey[int, entry]

	id := p.Identity()
	assert.False(t, id.HasKey())

	m1 := p.Lift(entry{k: 5, v: "a"})
	m2 := p.Lift(entry{k: 9, v: "b"})
	m3 := p.Lift(entry{k: 2, v: "c"})

	combined := p.Combine(p.Combine(m1, m2), m3)
	assert.True(t, combined.HasKey())
	assert.Equal(t, 9, combined.Key())

	// identity is absorbed on either side
	assert.Equal(t, m1, p.Combine(id, m1))
	assert.Equal(t, m1, p.Combine(m1, id))

	assert.False(t, p.HasInverse())
}
