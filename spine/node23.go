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
	"github.com/dolthub/chunkedseq/internal/d"
	"github.com/dolthub/chunkedseq/measure"
)

// node23 is a node of a 2-3 tree: height 0 is a leaf wrapping a single
// chunk; height >= 1 is a branch of 2 or 3 children, one height lower,
// recursively. The type is self-similar by containment, not by pointer
// cycles, and its depth is bounded by the element count.
//
// Both spine flavors (Tree23 and FingerTree's recursive middle) are built
// from this same node and the join/split primitives below; the flavors
// differ in what sits at the very top (Tree23 is just a node23 root;
// FingerTree wraps a node23 middle with explicit 1-4-item front/back
// digits).
type node23[T any, M any] struct {
	height    int
	count     int // number of leaf chunks in this subtree
	elemCount int // number of sequence elements in this subtree (policy-independent)
	measure   M
	leaf      *chunk.Chunk[T, M]
	children  []*node23[T, M]
}

func leafNode[T any, M any](c *chunk.Chunk[T, M]) *node23[T, M] {
	return &node23[T, M]{height: 0, count: 1, elemCount: c.Len(), measure: c.Measure(), leaf: c}
}

func measureOf[T any, M any](policy measure.Policy[T, M], n *node23[T, M]) M {
	if n == nil {
		return policy.Identity()
	}
	return n.measure
}

func newBranch[T any, M any](policy measure.Policy[T, M], children ...*node23[T, M]) *node23[T, M] {
	d.PanicIfFalse(len(children) == 2 || len(children) == 3, "spine: branch must have 2 or 3 children")
	m := policy.Identity()
	cnt, elems := 0, 0
	h := children[0].height
	for _, c := range children {
		d.PanicIfFalse(c.height == h, "spine: sibling height mismatch")
		m = policy.Combine(m, c.measure)
		cnt += c.count
		elems += c.elemCount
	}
	return &node23[T, M]{height: h + 1, count: cnt, elemCount: elems, measure: m, children: children}
}

// insertLeftmost inserts newNode (of height targetHeight) as the new
// leftmost descendant of n at that height, splitting nodes that would
// otherwise exceed 3 children and propagating the split up. overflow, if
// non-nil, must become a new LEFT sibling of result at the parent level.
func insertLeftmost[T any, M any](policy measure.Policy[T, M], n *node23[T, M], targetHeight int, newNode *node23[T, M]) (result, overflow *node23[T, M]) {
	if n.height == targetHeight+1 {
		children := append([]*node23[T, M]{newNode}, n.children...)
		return splitIfOverflowing(policy, children)
	}
	d.PanicIfFalse(n.height > targetHeight+1, "spine: insertLeftmost height mismatch")
	newFirst, childOverflow := insertLeftmost(policy, n.children[0], targetHeight, newNode)
	if childOverflow == nil {
		children := append([]*node23[T, M]{newFirst}, n.children[1:]...)
		return newBranch(policy, children...), nil
	}
	children := append([]*node23[T, M]{childOverflow, newFirst}, n.children[1:]...)
	return splitIfOverflowing(policy, children)
}

// insertRightmost is the mirror of insertLeftmost: overflow, if non-nil,
// must become a new RIGHT sibling of result at the parent level.
func insertRightmost[T any, M any](policy measure.Policy[T, M], n *node23[T, M], targetHeight int, newNode *node23[T, M]) (result, overflow *node23[T, M]) {
	if n.height == targetHeight+1 {
		children := append(append([]*node23[T, M]{}, n.children...), newNode)
		return splitIfOverflowingRight(policy, children)
	}
	d.PanicIfFalse(n.height > targetHeight+1, "spine: insertRightmost height mismatch")
	last := len(n.children) - 1
	newLast, childOverflow := insertRightmost(policy, n.children[last], targetHeight, newNode)
	if childOverflow == nil {
		children := append(append([]*node23[T, M]{}, n.children[:last]...), newLast)
		return newBranch(policy, children...), nil
	}
	children := append(append([]*node23[T, M]{}, n.children[:last]...), newLast, childOverflow)
	return splitIfOverflowingRight(policy, children)
}

// splitIfOverflowing takes a candidate children list of length 2..4 and
// returns either a single valid node (2 or 3 children, no overflow) or
// two 2-child nodes when the list has grown to 4.
func splitIfOverflowing[T any, M any](policy measure.Policy[T, M], children []*node23[T, M]) (result, overflow *node23[T, M]) {
	switch len(children) {
	case 2, 3:
		return newBranch(policy, children...), nil
	case 4:
		left := newBranch(policy, children[0], children[1])
		right := newBranch(policy, children[2], children[3])
		return right, left
	default:
		panic("spine: unreachable children count")
	}
}

// splitIfOverflowingRight mirrors splitIfOverflowing for right-side
// inserts: overflow, when non-nil, is the RIGHT half and must become a
// new right sibling of result at the parent level.
func splitIfOverflowingRight[T any, M any](policy measure.Policy[T, M], children []*node23[T, M]) (result, overflow *node23[T, M]) {
	switch len(children) {
	case 2, 3:
		return newBranch(policy, children...), nil
	case 4:
		left := newBranch(policy, children[0], children[1])
		right := newBranch(policy, children[2], children[3])
		return left, right
	default:
		panic("spine: unreachable children count")
	}
}

// concatNodes joins two whole subtrees of possibly different heights
// into one valid 2-3 tree. Either argument may be nil (the empty tree).
func concatNodes[T any, M any](policy measure.Policy[T, M], left, right *node23[T, M]) *node23[T, M] {
	if left == nil {
		return right
	}
	if right == nil {
		return left
	}
	if left.height == right.height {
		return newBranch(policy, left, right)
	}
	if left.height > right.height {
		newRoot, overflow := insertRightmost(policy, left, right.height, right)
		if overflow != nil {
			return newBranch(policy, newRoot, overflow)
		}
		return newRoot
	}
	newRoot, overflow := insertLeftmost(policy, right, left.height, left)
	if overflow != nil {
		return newBranch(policy, overflow, newRoot)
	}
	return newRoot
}

// extractLeftmostAtHeight pulls the leftmost descendant of n at the given
// height out of the tree, returning what remains (nil if n was exactly
// that single descendant) and the extracted subtree.
func extractLeftmostAtHeight[T any, M any](policy measure.Policy[T, M], n *node23[T, M], targetHeight int) (rest, extracted *node23[T, M]) {
	if n.height == targetHeight {
		return nil, n
	}
	restFirst, extracted := extractLeftmostAtHeight(policy, n.children[0], targetHeight)
	result := restFirst
	for _, sib := range n.children[1:] {
		result = concatNodes(policy, result, sib)
	}
	return result, extracted
}

// extractRightmostAtHeight is the mirror of extractLeftmostAtHeight.
func extractRightmostAtHeight[T any, M any](policy measure.Policy[T, M], n *node23[T, M], targetHeight int) (rest, extracted *node23[T, M]) {
	if n.height == targetHeight {
		return nil, n
	}
	last := len(n.children) - 1
	restLast, extracted := extractRightmostAtHeight(policy, n.children[last], targetHeight)
	result := restLast
	for i := last - 1; i >= 0; i-- {
		result = concatNodes(policy, n.children[i], result)
	}
	return result, extracted
}

// peekLeftmostLeaf returns the leftmost chunk in n without modifying the
// tree.
func peekLeftmostLeaf[T any, M any](n *node23[T, M]) *chunk.Chunk[T, M] {
	for n.height > 0 {
		n = n.children[0]
	}
	return n.leaf
}

// peekRightmostLeaf returns the rightmost chunk in n without modifying
// the tree.
func peekRightmostLeaf[T any, M any](n *node23[T, M]) *chunk.Chunk[T, M] {
	for n.height > 0 {
		n = n.children[len(n.children)-1]
	}
	return n.leaf
}

// splitNode performs the recursive descent behind Spine.SplitByMeasure:
// it finds the first leaf at which pred over the accumulated measure
// (including that leaf's own) becomes true, and splits the tree there.
// accBefore is the measure accumulated to the left of n already.
func splitNode[T any, M any](policy measure.Policy[T, M], n *node23[T, M], pred func(M) bool, accBefore M) (left, mid, right *node23[T, M], accBeforeMid M, ok bool) {
	if n.height == 0 {
		if pred(policy.Combine(accBefore, n.measure)) {
			return nil, n, nil, accBefore, true
		}
		return n, nil, nil, accBefore, false
	}
	acc := accBefore
	for i, child := range n.children {
		next := policy.Combine(acc, child.measure)
		if pred(next) {
			cl, cmid, cr, accBeforeMid, ok := splitNode(policy, child, pred, acc)
			if !ok {
				return n, nil, nil, accBefore, false
			}
			left := cl
			for j := i - 1; j >= 0; j-- {
				left = concatNodes(policy, n.children[j], left)
			}
			right := cr
			for j := i + 1; j < len(n.children); j++ {
				right = concatNodes(policy, right, n.children[j])
			}
			return left, cmid, right, accBeforeMid, true
		}
		acc = next
	}
	return n, nil, nil, accBefore, false
}

// forEachLeaf visits every leaf chunk in n, front to back.
func forEachLeaf[T any, M any](n *node23[T, M], f func(c *chunk.Chunk[T, M])) {
	if n == nil {
		return
	}
	if n.height == 0 {
		f(n.leaf)
		return
	}
	for _, c := range n.children {
		forEachLeaf(c, f)
	}
}

func numLeaves[T any, M any](n *node23[T, M]) int {
	if n == nil {
		return 0
	}
	return n.count
}

func elemCountOf[T any, M any](n *node23[T, M]) int {
	if n == nil {
		return 0
	}
	return n.elemCount
}

// splitNodeByCount locates the leaf straddling logical element index k
// (0-based, relative to the start of n) without reference to the policy
// measure: it walks cached element counts instead. This is how At,
// SplitAt, Insert and Erase stay well-defined even for Trivial-measured
// bags, where the policy carries no size information at all. Returns
// ok=false if k does not fall strictly within n's element range.
func splitNodeByCount[T any, M any](policy measure.Policy[T, M], n *node23[T, M], k int) (left, mid, right *node23[T, M], offsetInMid int, ok bool) {
	if n.height == 0 {
		if k >= 0 && k < n.leaf.Len() {
			return nil, n, nil, k, true
		}
		return n, nil, nil, 0, false
	}
	remaining := k
	for i, child := range n.children {
		if remaining < child.elemCount {
			cl, cmid, cr, offset, ok := splitNodeByCount(policy, child, remaining)
			if !ok {
				return n, nil, nil, 0, false
			}
			left := cl
			for j := i - 1; j >= 0; j-- {
				left = concatNodes(policy, n.children[j], left)
			}
			right := cr
			for j := i + 1; j < len(n.children); j++ {
				right = concatNodes(policy, right, n.children[j])
			}
			return left, cmid, right, offset, true
		}
		remaining -= child.elemCount
	}
	return n, nil, nil, 0, false
}
