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

// genericConcat joins two spines of different concrete flavors (which
// should not normally happen inside one sequence engine, but the
// interface permits it) by draining other's chunks onto the back of t.
// Used only as a fallback; same-flavor Concat has an O(log n) fast path.
func genericConcat[T any, M any](t Spine[T, M], other Spine[T, M]) Spine[T, M] {
	for {
		c, ok := other.PopFrontChunk()
		if !ok {
			break
		}
		t.PushBackChunk(c)
	}
	return t
}
