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

// Size counts elements: lift is always 1, combine is addition. It is the
// measure that enables split-at-index and random access. N is generic
// over any integer type so callers can pick a narrower counter (e.g.
// int32 frontier sizes) without the policy forcing int on them.
type Size[T any, N constraints.Integer] struct{}

func (Size[T, N]) Identity() N          { return 0 }
func (Size[T, N]) Lift(T) N             { return 1 }
func (Size[T, N]) Combine(a, b N) N     { return a + b }
func (Size[T, N]) HasInverse() bool     { return true }
func (Size[T, N]) Uncombine(whole, part N) N { return whole - part }
