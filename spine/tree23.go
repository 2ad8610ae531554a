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

import (
	"github.com/dolthub/chunkedseq/chunk"
	"github.com/dolthub/chunkedseq/measure"
)

// Tree23 is the "bootstrapped spine" flavor: a plain 2-3 tree of leaf
// chunks, recursive and self-similar, with no special-cased outer digits.
type Tree23[T any, M any] struct {
	policy measure.Policy[T, M]
	root   *node23[T, M]
}

// NewTree23 allocates an empty Tree23 spine using policy to combine leaf
// measures.
func NewTree23[T any, M any](policy measure.Policy[T, M]) *Tree23[T, M] {
	return &Tree23[T, M]{policy: policy}
}

func (t *Tree23[T, M]) Empty() bool { return t.root == nil }

func (t *Tree23[T, M]) PushFrontChunk(c *chunk.Chunk[T, M]) {
	leaf := leafNode(c)
	if t.root == nil {
		t.root = leaf
		return
	}
	if t.root.height == 0 {
		t.root = newBranch(t.policy, leaf, t.root)
		return
	}
	newRoot, overflow := insertLeftmost(t.policy, t.root, 0, leaf)
	if overflow != nil {
		t.root = newBranch(t.policy, overflow, newRoot)
		return
	}
	t.root = newRoot
}

func (t *Tree23[T, M]) PushBackChunk(c *chunk.Chunk[T, M]) {
	leaf := leafNode(c)
	if t.root == nil {
		t.root = leaf
		return
	}
	if t.root.height == 0 {
		t.root = newBranch(t.policy, t.root, leaf)
		return
	}
	newRoot, overflow := insertRightmost(t.policy, t.root, 0, leaf)
	if overflow != nil {
		t.root = newBranch(t.policy, newRoot, overflow)
		return
	}
	t.root = newRoot
}

func (t *Tree23[T, M]) PopFrontChunk() (*chunk.Chunk[T, M], bool) {
	if t.root == nil {
		return nil, false
	}
	rest, extracted := extractLeftmostAtHeight(t.policy, t.root, 0)
	t.root = rest
	return extracted.leaf, true
}

func (t *Tree23[T, M]) PopBackChunk() (*chunk.Chunk[T, M], bool) {
	if t.root == nil {
		return nil, false
	}
	rest, extracted := extractRightmostAtHeight(t.policy, t.root, 0)
	t.root = rest
	return extracted.leaf, true
}

func (t *Tree23[T, M]) PeekFrontChunk() (*chunk.Chunk[T, M], bool) {
	if t.root == nil {
		return nil, false
	}
	return peekLeftmostLeaf(t.root), true
}

func (t *Tree23[T, M]) PeekBackChunk() (*chunk.Chunk[T, M], bool) {
	if t.root == nil {
		return nil, false
	}
	return peekRightmostLeaf(t.root), true
}

func (t *Tree23[T, M]) TotalMeasure() M { return measureOf(t.policy, t.root) }

func (t *Tree23[T, M]) SplitByMeasure(pred func(M) bool) (Spine[T, M], *chunk.Chunk[T, M], Spine[T, M], M, bool) {
	if t.root == nil {
		return &Tree23[T, M]{policy: t.policy}, nil, &Tree23[T, M]{policy: t.policy}, t.policy.Identity(), false
	}
	left, mid, right, accBeforeMid, ok := splitNode(t.policy, t.root, pred, t.policy.Identity())
	if !ok {
		return &Tree23[T, M]{policy: t.policy, root: t.root}, nil, &Tree23[T, M]{policy: t.policy}, accBeforeMid, false
	}
	return &Tree23[T, M]{policy: t.policy, root: left}, mid.leaf, &Tree23[T, M]{policy: t.policy, root: right}, accBeforeMid, true
}

func (t *Tree23[T, M]) Concat(other Spine[T, M]) Spine[T, M] {
	o, ok := other.(*Tree23[T, M])
	if !ok {
		return genericConcat[T, M](t, other)
	}
	t.root = concatNodes(t.policy, t.root, o.root)
	o.root = nil
	return t
}

func (t *Tree23[T, M]) NumLeaves() int { return numLeaves(t.root) }

func (t *Tree23[T, M]) ElemCount() int { return elemCountOf(t.root) }

func (t *Tree23[T, M]) SplitByCount(k int) (Spine[T, M], *chunk.Chunk[T, M], int, Spine[T, M], bool) {
	if t.root == nil {
		return &Tree23[T, M]{policy: t.policy}, nil, 0, &Tree23[T, M]{policy: t.policy}, false
	}
	left, mid, right, offset, ok := splitNodeByCount(t.policy, t.root, k)
	if !ok {
		return &Tree23[T, M]{policy: t.policy, root: t.root}, nil, 0, &Tree23[T, M]{policy: t.policy}, false
	}
	return &Tree23[T, M]{policy: t.policy, root: left}, mid.leaf, offset, &Tree23[T, M]{policy: t.policy, root: right}, true
}

func (t *Tree23[T, M]) Leaves(f func(c *chunk.Chunk[T, M])) { forEachLeaf(t.root, f) }
