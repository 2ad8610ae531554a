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

// Package seqmap is the ordered associative container derived from the
// chunked-sequence engine: entries are kept sorted by
// key inside the same chunked spine as the other containers, annotated
// with the MaxKey measure so that locating a key is a single
// split-by-measure instead of a scan.
//
// find(k) is split_by_measure(acc -> acc >= k): because entries are kept
// in ascending key order, the running maximum through any prefix equals
// that prefix's last key, so the first position where the accumulated
// maximum reaches k is the first entry whose key is >= k. insert(k, v)
// locates the same way and either overwrites the entry found at that
// position (key already present) or inserts a fresh one immediately
// before it (key absent). erase(k) locates and removes the one entry
// whose key matches.
package seqmap

import (
	"golang.org/x/exp/constraints"

	"github.com/dolthub/chunkedseq/internal/d"
	"github.com/dolthub/chunkedseq/measure"
	"github.com/dolthub/chunkedseq/seq"
	"github.com/dolthub/chunkedseq/spine"
)

// DefaultCap is a general-purpose chunk capacity a caller can pass to
// New; New itself always takes K from the caller.
const DefaultCap = 512

type entry[K constraints.Ordered, V any] struct {
	key K
	val V
}

func (e entry[K, V]) Key() K { return e.key }

// Map[K, V] is an ordered associative container with unique keys, backed
// by the chunked-sequence engine under the MaxKey measure.
type Map[K constraints.Ordered, V any] struct {
	seq *seq.Sequence[entry[K, V], measure.KeyOrBottom[K]]
}

// New constructs an empty map with chunk capacity K.
func New[K constraints.Ordered, V any](capacity int) Map[K, V] {
	policy := measure.MaxKey[K, entry[K, V]]{}
	return Map[K, V]{seq.New[entry[K, V], measure.KeyOrBottom[K]](capacity, policy, spine.NewTree23Spine[entry[K, V], measure.KeyOrBottom[K]])}
}

func atLeast[K constraints.Ordered](k K) func(acc measure.KeyOrBottom[K]) bool {
	return func(acc measure.KeyOrBottom[K]) bool {
		return acc.HasKey() && !(acc.Key() < k)
	}
}

// locate returns the index of the first entry whose key is >= k, and
// whether an entry with that exact key was found at that index. If no
// such entry exists, the returned index equals Len() (the append
// position) and found is false.
func (m Map[K, V]) locate(k K) (idx int, found bool) {
	it := m.seq.Begin()
	ok := it.SeekToMeasure(atLeast(k))
	idx = it.Index()
	if !ok {
		return idx, false
	}
	e, err := it.Deref()
	d.PanicIfError(err)
	return idx, e.key == k
}

// Len returns the number of entries in the map.
func (m Map[K, V]) Len() int { return m.seq.Len() }

// IsEmpty reports whether the map holds zero entries.
func (m Map[K, V]) IsEmpty() bool { return m.seq.IsEmpty() }

// Find returns the value stored under k and true, or the zero value and
// false if k is absent.
func (m Map[K, V]) Find(k K) (V, bool) {
	idx, found := m.locate(k)
	if !found {
		var zero V
		return zero, false
	}
	e, err := m.seq.At(idx)
	d.PanicIfError(err)
	return e.val, true
}

// Contains reports whether k is present.
func (m Map[K, V]) Contains(k K) bool {
	_, found := m.locate(k)
	return found
}

// Insert sets the value for k, overwriting any existing entry, and
// returns the resulting map. Callers must use the returned value; m
// itself must not be used afterward if a fresh entry was inserted.
func (m Map[K, V]) Insert(k K, v V) Map[K, V] {
	idx, found := m.locate(k)
	if found {
		d.PanicIfError(m.seq.Set(idx, entry[K, V]{key: k, val: v}))
		return m
	}
	newSeq, err := m.seq.Insert(idx, entry[K, V]{key: k, val: v})
	d.PanicIfError(err)
	return Map[K, V]{newSeq}
}

// Erase removes k if present and returns the resulting map. Erasing an
// absent key is a no-op. Callers must use the returned value.
func (m Map[K, V]) Erase(k K) Map[K, V] {
	idx, found := m.locate(k)
	if !found {
		return m
	}
	newSeq, err := m.seq.Erase(idx, idx+1)
	d.PanicIfError(err)
	return Map[K, V]{newSeq}
}

// ForEach visits every entry in ascending key order.
func (m Map[K, V]) ForEach(f func(k K, v V)) {
	m.seq.ForEach(func(e entry[K, V]) { f(e.key, e.val) })
}

// Clone deep-copies the map.
func (m Map[K, V]) Clone() Map[K, V] { return Map[K, V]{m.seq.Clone()} }
