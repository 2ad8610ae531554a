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

// Package measure defines the monoidal annotation policy that chunks and
// spine nodes carry, and four concrete policies built on it: trivial,
// size, weight, and max-key.
package measure

// Policy is the collaborator contract a chunked sequence is parametrized
// over: lift an element to a measure, combine two measures, and — when
// the monoid is invertible — remove one measure's contribution from
// another. combine must be associative; the engine never assumes it is
// commutative, even though every concrete policy below happens to be.
type Policy[T any, M any] interface {
	// Identity returns the monoid's identity element e.
	Identity() M

	// Lift maps a single element to its measure.
	Lift(v T) M

	// Combine folds two measures, left-to-right.
	Combine(a, b M) M

	// HasInverse reports whether Uncombine is meaningful for this
	// policy. When false, a chunk recomputes its cached measure by
	// rescanning its elements rather than calling Uncombine.
	HasInverse() bool

	// Uncombine removes part's contribution from whole, where whole was
	// produced by combining part with some other measure. Only called
	// when HasInverse is true.
	Uncombine(whole, part M) M
}

// Unit is the measure type used by the Trivial policy.
type Unit struct{}
