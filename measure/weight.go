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

// Weight lifts each element through a caller-supplied weight function and
// combines by addition. It generalizes Size to weights that depend on the
// element, e.g. counting out-edges per frontier vertex when a chunked
// sequence holds graph vertices.
type Weight[T any, N constraints.Integer] struct {
	W func(T) N
}

func (w Weight[T, N]) Identity() N          { return 0 }
func (w Weight[T, N]) Lift(v T) N           { return w.W(v) }
func (w Weight[T, N]) Combine(a, b N) N     { return a + b }
func (w Weight[T, N]) HasInverse() bool     { return true }
func (w Weight[T, N]) Uncombine(whole, part N) N { return whole - part }
