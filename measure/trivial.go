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

// Trivial is the unit measure: every element lifts to the same value and
// combine is a no-op. Used by bags, where element order — and hence
// position — is not observable.
type Trivial[T any] struct{}

func (Trivial[T]) Identity() Unit              { return Unit{} }
func (Trivial[T]) Lift(T) Unit                 { return Unit{} }
func (Trivial[T]) Combine(Unit, Unit) Unit     { return Unit{} }
func (Trivial[T]) HasInverse() bool            { return true }
func (Trivial[T]) Uncombine(Unit, Unit) Unit   { return Unit{} }
