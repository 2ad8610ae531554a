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

// FingerTree is the finger-tree spine flavor: explicit 1-4 item
// front/back digits give O(1) access to the chunks nearest each end
// beyond what the engine's own F/B shortcut chunks already provide, with
// everything further in held by a recursive middle built from the same
// node23 join/split machinery as Tree23. When a digit would overflow past
// 4 items, the 3 items furthest from that end are grouped into one node
// and pushed into the middle (the standard finger-tree digit-overflow
// move); refilling a digit that has run dry does the reverse.
type FingerTree[T any, M any] struct {
	policy measure.Policy[T, M]
	prefix []*chunk.Chunk[T, M] // prefix[0] is frontmost
	middle *node23[T, M]
	suffix []*chunk.Chunk[T, M] // suffix[len-1] is backmost
}

// NewFingerTree allocates an empty FingerTree spine using policy to
// combine leaf measures.
func NewFingerTree[T any, M any](policy measure.Policy[T, M]) *FingerTree[T, M] {
	return &FingerTree[T, M]{policy: policy}
}

func (ft *FingerTree[T, M]) Empty() bool {
	return len(ft.prefix) == 0 && len(ft.suffix) == 0 && ft.middle == nil
}

func (ft *FingerTree[T, M]) PushFrontChunk(c *chunk.Chunk[T, M]) {
	newPrefix := append([]*chunk.Chunk[T, M]{c}, ft.prefix...)
	if len(newPrefix) <= 4 {
		ft.prefix = newPrefix
		return
	}
	group := newBranch(ft.policy, leafNode(newPrefix[2]), leafNode(newPrefix[3]), leafNode(newPrefix[4]))
	ft.middle = prependGroup(ft.policy, ft.middle, group)
	ft.prefix = newPrefix[0:2]
}

func (ft *FingerTree[T, M]) PushBackChunk(c *chunk.Chunk[T, M]) {
	newSuffix := append(append([]*chunk.Chunk[T, M]{}, ft.suffix...), c)
	if len(newSuffix) <= 4 {
		ft.suffix = newSuffix
		return
	}
	group := newBranch(ft.policy, leafNode(newSuffix[0]), leafNode(newSuffix[1]), leafNode(newSuffix[2]))
	ft.middle = appendGroup(ft.policy, ft.middle, group)
	ft.suffix = newSuffix[3:5]
}

func prependGroup[T any, M any](policy measure.Policy[T, M], middle *node23[T, M], group *node23[T, M]) *node23[T, M] {
	return concatNodes(policy, group, middle)
}

func appendGroup[T any, M any](policy measure.Policy[T, M], middle *node23[T, M], group *node23[T, M]) *node23[T, M] {
	return concatNodes(policy, middle, group)
}

func (ft *FingerTree[T, M]) ensurePrefix() bool {
	if len(ft.prefix) > 0 {
		return true
	}
	if ft.middle != nil {
		// middle's root is height 0 only when it holds a single bare
		// chunk (concat can leave a lone boundary leaf unattached to
		// any group); every other shape descends to a height-1 group.
		targetHeight := 1
		if ft.middle.height == 0 {
			targetHeight = 0
		}
		rest, extracted := extractLeftmostAtHeight(ft.policy, ft.middle, targetHeight)
		ft.middle = rest
		ft.prefix = digitOf(extracted)
		return true
	}
	if len(ft.suffix) > 0 {
		ft.prefix = ft.suffix
		ft.suffix = nil
		return true
	}
	return false
}

func (ft *FingerTree[T, M]) ensureSuffix() bool {
	if len(ft.suffix) > 0 {
		return true
	}
	if ft.middle != nil {
		targetHeight := 1
		if ft.middle.height == 0 {
			targetHeight = 0
		}
		rest, extracted := extractRightmostAtHeight(ft.policy, ft.middle, targetHeight)
		ft.middle = rest
		ft.suffix = digitOf(extracted)
		return true
	}
	if len(ft.prefix) > 0 {
		ft.suffix = ft.prefix
		ft.prefix = nil
		return true
	}
	return false
}

// digitOf converts an extracted node's leaf-level chunks into a slice in
// left-to-right order. The node is either a height-1 group (its direct
// children are the chunks) or a single bare height-0 leaf.
func digitOf[T any, M any](extracted *node23[T, M]) []*chunk.Chunk[T, M] {
	if extracted.height == 0 {
		return []*chunk.Chunk[T, M]{extracted.leaf}
	}
	out := make([]*chunk.Chunk[T, M], len(extracted.children))
	for i, c := range extracted.children {
		out[i] = c.leaf
	}
	return out
}

func (ft *FingerTree[T, M]) PopFrontChunk() (*chunk.Chunk[T, M], bool) {
	if !ft.ensurePrefix() {
		return nil, false
	}
	c := ft.prefix[0]
	ft.prefix = ft.prefix[1:]
	return c, true
}

func (ft *FingerTree[T, M]) PopBackChunk() (*chunk.Chunk[T, M], bool) {
	if !ft.ensureSuffix() {
		return nil, false
	}
	n := len(ft.suffix)
	c := ft.suffix[n-1]
	ft.suffix = ft.suffix[:n-1]
	return c, true
}

func (ft *FingerTree[T, M]) PeekFrontChunk() (*chunk.Chunk[T, M], bool) {
	if len(ft.prefix) > 0 {
		return ft.prefix[0], true
	}
	if ft.middle != nil {
		return peekLeftmostLeaf(ft.middle), true
	}
	if len(ft.suffix) > 0 {
		return ft.suffix[0], true
	}
	return nil, false
}

func (ft *FingerTree[T, M]) PeekBackChunk() (*chunk.Chunk[T, M], bool) {
	if len(ft.suffix) > 0 {
		return ft.suffix[len(ft.suffix)-1], true
	}
	if ft.middle != nil {
		return peekRightmostLeaf(ft.middle), true
	}
	if len(ft.prefix) > 0 {
		return ft.prefix[len(ft.prefix)-1], true
	}
	return nil, false
}

func (ft *FingerTree[T, M]) measureOfDigit(digit []*chunk.Chunk[T, M]) M {
	m := ft.policy.Identity()
	for _, c := range digit {
		m = ft.policy.Combine(m, c.Measure())
	}
	return m
}

func (ft *FingerTree[T, M]) TotalMeasure() M {
	m := ft.measureOfDigit(ft.prefix)
	m = ft.policy.Combine(m, measureOf(ft.policy, ft.middle))
	m = ft.policy.Combine(m, ft.measureOfDigit(ft.suffix))
	return m
}

func (ft *FingerTree[T, M]) SplitByMeasure(pred func(M) bool) (Spine[T, M], *chunk.Chunk[T, M], Spine[T, M], M, bool) {
	acc := ft.policy.Identity()
	for i, c := range ft.prefix {
		next := ft.policy.Combine(acc, c.Measure())
		if pred(next) {
			left := &FingerTree[T, M]{policy: ft.policy, prefix: ft.prefix[:i]}
			right := &FingerTree[T, M]{policy: ft.policy, prefix: append([]*chunk.Chunk[T, M]{}, ft.prefix[i+1:]...), middle: ft.middle, suffix: ft.suffix}
			return left, c, right, acc, true
		}
		acc = next
	}
	if ft.middle != nil {
		midTotal := ft.policy.Combine(acc, ft.middle.measure)
		if pred(midTotal) {
			ml, mmid, mr, accBeforeMid, ok := splitNode(ft.policy, ft.middle, pred, acc)
			if ok {
				left := &FingerTree[T, M]{policy: ft.policy, prefix: append([]*chunk.Chunk[T, M]{}, ft.prefix...), middle: ml}
				right := &FingerTree[T, M]{policy: ft.policy, middle: mr, suffix: ft.suffix}
				return left, mmid.leaf, right, accBeforeMid, true
			}
		}
		acc = midTotal
	}
	for i, c := range ft.suffix {
		next := ft.policy.Combine(acc, c.Measure())
		if pred(next) {
			left := &FingerTree[T, M]{policy: ft.policy, prefix: append([]*chunk.Chunk[T, M]{}, ft.prefix...), middle: ft.middle, suffix: ft.suffix[:i]}
			right := &FingerTree[T, M]{policy: ft.policy, prefix: append([]*chunk.Chunk[T, M]{}, ft.suffix[i+1:]...)}
			return left, c, right, acc, true
		}
		acc = next
	}
	whole := &FingerTree[T, M]{policy: ft.policy, prefix: ft.prefix, middle: ft.middle, suffix: ft.suffix}
	return whole, nil, &FingerTree[T, M]{policy: ft.policy}, acc, false
}

func (ft *FingerTree[T, M]) Concat(other Spine[T, M]) Spine[T, M] {
	o, ok := other.(*FingerTree[T, M])
	if !ok {
		return genericConcat[T, M](ft, other)
	}
	middle := ft.middle
	for _, c := range ft.suffix {
		middle = appendGroup(ft.policy, middle, leafNode(c))
	}
	for _, c := range o.prefix {
		middle = appendGroup(ft.policy, middle, leafNode(c))
	}
	middle = concatNodes(ft.policy, middle, o.middle)
	ft.middle = middle
	ft.suffix = o.suffix
	o.prefix, o.middle, o.suffix = nil, nil, nil
	return ft
}

func (ft *FingerTree[T, M]) NumLeaves() int {
	return len(ft.prefix) + numLeaves(ft.middle) + len(ft.suffix)
}

func (ft *FingerTree[T, M]) ElemCount() int {
	n := 0
	for _, c := range ft.prefix {
		n += c.Len()
	}
	n += elemCountOf(ft.middle)
	for _, c := range ft.suffix {
		n += c.Len()
	}
	return n
}

func (ft *FingerTree[T, M]) SplitByCount(k int) (Spine[T, M], *chunk.Chunk[T, M], int, Spine[T, M], bool) {
	acc := 0
	for i, c := range ft.prefix {
		next := acc + c.Len()
		if k < next {
			left := &FingerTree[T, M]{policy: ft.policy, prefix: append([]*chunk.Chunk[T, M]{}, ft.prefix[:i]...)}
			right := &FingerTree[T, M]{policy: ft.policy, prefix: append([]*chunk.Chunk[T, M]{}, ft.prefix[i+1:]...), middle: ft.middle, suffix: ft.suffix}
			return left, c, k - acc, right, true
		}
		acc = next
	}
	if ft.middle != nil {
		midCount := elemCountOf(ft.middle)
		if k < acc+midCount {
			ml, mmid, mr, offset, ok := splitNodeByCount(ft.policy, ft.middle, k-acc)
			if ok {
				left := &FingerTree[T, M]{policy: ft.policy, prefix: append([]*chunk.Chunk[T, M]{}, ft.prefix...), middle: ml}
				right := &FingerTree[T, M]{policy: ft.policy, middle: mr, suffix: ft.suffix}
				return left, mmid.leaf, offset, right, true
			}
		}
		acc += midCount
	}
	for i, c := range ft.suffix {
		next := acc + c.Len()
		if k < next {
			left := &FingerTree[T, M]{policy: ft.policy, prefix: append([]*chunk.Chunk[T, M]{}, ft.prefix...), middle: ft.middle, suffix: append([]*chunk.Chunk[T, M]{}, ft.suffix[:i]...)}
			right := &FingerTree[T, M]{policy: ft.policy, prefix: append([]*chunk.Chunk[T, M]{}, ft.suffix[i+1:]...)}
			return left, c, k - acc, right, true
		}
		acc = next
	}
	whole := &FingerTree[T, M]{policy: ft.policy, prefix: ft.prefix, middle: ft.middle, suffix: ft.suffix}
	return whole, nil, 0, &FingerTree[T, M]{policy: ft.policy}, false
}

func (ft *FingerTree[T, M]) Leaves(f func(c *chunk.Chunk[T, M])) {
	for _, c := range ft.prefix {
		f(c)
	}
	forEachLeaf(ft.middle, f)
	for _, c := range ft.suffix {
		f(c)
	}
}
