// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/containers/fault"
)

// Check - verify up pointers, ordering and the node count
func (tree *Tree[T]) Check() error {
	if nil != tree.root && nil != tree.root.up {
		return fault.ErrInconsistentLinks
	}

	// up pointers and count, bounded so a cycle cannot loop forever
	n := 0
	stack := []*node[T]{}
	if nil != tree.root {
		stack = append(stack, tree.root)
	}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n += 1
		if n > tree.count {
			return fault.ErrCountMismatch
		}
		if nil != p.left {
			if p.left.up != p {
				return fault.ErrInconsistentLinks
			}
			stack = append(stack, p.left)
		}
		if nil != p.right {
			if p.right.up != p {
				return fault.ErrInconsistentLinks
			}
			stack = append(stack, p.right)
		}
	}
	if n != tree.count {
		return fault.ErrCountMismatch
	}

	// in-order the sequence must not decrease, and a node must be
	// strictly greater than its predecessor when that predecessor
	// came from its own left sub-tree (equal values go right)
	var previous *node[T]
	for p := tree.root.first(); nil != p; p = p.next() {
		if nil != previous {
			c := tree.compare(previous.value, p.value)
			if c > 0 || (nil != p.left && 0 == c) {
				return fault.ErrOrderViolation
			}
		}
		previous = p
	}
	return nil
}

// Height - number of nodes on the longest root to leaf path
func (tree *Tree[T]) Height() int {
	type entry struct {
		p     *node[T]
		depth int
	}

	height := 0
	if nil == tree.root {
		return height
	}
	stack := []entry{{p: tree.root, depth: 1}}
	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if e.depth > height {
			height = e.depth
		}
		if nil != e.p.left {
			stack = append(stack, entry{p: e.p.left, depth: e.depth + 1})
		}
		if nil != e.p.right {
			stack = append(stack, entry{p: e.p.right, depth: e.depth + 1})
		}
	}
	return height
}
