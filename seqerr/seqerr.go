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

// Package seqerr defines the sentinel error values that cross the public
// boundary of the chunked-sequence library, plus a panic type for detected
// invariant breaches.
//
// Empty, OutOfRange and Underflow are ordinary values: callers compare
// against them with errors.Is. CapacityFull is internal-only (the engine
// always promotes a full chunk, or panics, before such an error could
// reach a caller) but is exported so chunk-level code
// outside this module's own packages can still be written against it.
package seqerr

import "errors"

var (
	// Empty is returned by a pop or peek on an empty sequence or chunk.
	Empty = errors.New("chunkedseq: empty")

	// OutOfRange is returned when an index or split position is not in
	// [0, size], or an iterator is dereferenced past the end.
	OutOfRange = errors.New("chunkedseq: index out of range")

	// Underflow is returned by a bulk pop or peek asking for more
	// elements than are available; no partial removal occurs.
	Underflow = errors.New("chunkedseq: bulk operation underflow")

	// CapacityFull is returned by a chunk-level push into an already
	// full fixed-capacity buffer. Internal only: the engine always
	// promotes the chunk to the spine (or panics if that isn't
	// possible) before this can surface to a caller.
	CapacityFull = errors.New("chunkedseq: chunk capacity full")
)

// InvariantViolation reports a detected breach of a structural invariant
// the library maintains internally. It is raised as a panic value by
// chunk.Chunk.Concat, in every build, when the combined count would exceed
// the chunk's capacity. The debug-mode checks gated by d.Debug (chunk
// count bounds, shortcut capacity, the size counter, and non-emptiness of
// a non-empty sequence) panic with a plain message instead; cached-measure
// consistency and the half-full leaf bound are not checked. It always
// indicates a library bug, never caller error; code that observes one
// should panic, not return it.
type InvariantViolation struct {
	Msg string
}

func (e *InvariantViolation) Error() string {
	return "chunkedseq: invariant violation: " + e.Msg
}
