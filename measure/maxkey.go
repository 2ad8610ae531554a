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

import "golang.org/x/exp/constraints"

// Keyed is implemented by the element type the MaxKey policy measures —
// typically an associative-map entry.
type Keyed[K constraints.Ordered] interface {
	Key() K
}

// KeyOrBottom is the measure value for MaxKey: either a real key, or the
// monoid identity "-infinity" used for the empty combine.
type KeyOrBottom[K constraints.Ordered] struct {
	hasKey bool
	key    K
}

// Bottom is the identity element, representing -infinity.
func Bottom[K constraints.Ordered]() KeyOrBottom[K] {
	return KeyOrBottom[K]{}
}

// HasKey reports whether this measure carries a real key rather than
// being the -infinity identity.
func (k KeyOrBottom[K]) HasKey() bool { return k.hasKey }

// Key returns the carried key. Callers must check HasKey first.
func (k KeyOrBottom[K]) Key() K { return k.key }

// MaxKey lifts an entry to its key and combines by max, using -infinity
// as identity. It is the ordering measure behind the associative map:
// split_by_measure(acc >= k) finds the first entry whose key is >= k.
//
// combine has no inverse — removing the maximum of a set from a combined
// maximum can't be done without rescanning — so HasInverse is false and
// every mutation recomputes the cached measure by folding over the
// chunk's current elements, a scan bounded by the chunk capacity K.
type MaxKey[K constraints.Ordered, T Keyed[K]] struct{}

func (MaxKey[K, T]) Identity() KeyOrBottom[K] { return Bottom[K]() }

func (MaxKey[K, T]) Lift(v T) KeyOrBottom[K] {
	return KeyOrBottom[K]{hasKey: true, key: v.Key()}
}

func (MaxKey[K, T]) Combine(a, b KeyOrBottom[K]) KeyOrBottom[K] {
	switch {
	case !a.hasKey:
		return b
	case !b.hasKey:
		return a
	case a.key < b.key:
		return b
	default:
		return a
	}
}

func (MaxKey[K, T]) HasInverse() bool { return false }

func (MaxKey[K, T]) Uncombine(whole, part KeyOrBottom[K]) KeyOrBottom[K] {
	panic("chunkedseq: MaxKey measure has no inverse")
}
