// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/containers/fault"
)

// Insert - add a value as a new leaf at its ordered position
//
// if keepUnique is set and an equal value is already present nothing
// is added and the cursor refers to the existing node.  Otherwise
// equal values go to the right so a later duplicate is visited after
// earlier ones.
//
// returns a cursor to the new or existing node and true if a node was
// added
func (tree *Tree[T]) Insert(value T, keepUnique bool) (Iterator[T], bool) {
	if nil == tree.root {
		tree.root = tree.pool.newNode(value)
		tree.count = 1
		return tree.cursor(tree.root), true
	}

	p := tree.root
	for {
		c := tree.compare(value, p.value)
		if keepUnique && 0 == c {
			return tree.cursor(p), false
		}
		if c < 0 {
			if nil == p.left {
				p.attachLeft(tree.pool.newNode(value))
				p = p.left
				break
			}
			p = p.left
		} else {
			if nil == p.right {
				p.attachRight(tree.pool.newNode(value))
				p = p.right
				break
			}
			p = p.right
		}
	}
	tree.count += 1
	return tree.cursor(p), true
}

// Replace - overwrite the value a cursor refers to
//
// the new value must compare equal to the old one so the node keeps
// its place, as when a map entry's data part is updated
func (tree *Tree[T]) Replace(it Iterator[T], value T) error {
	if it.tree != tree || !it.live() {
		return fault.ErrInvalidCursor
	}
	if 0 != tree.compare(value, it.node.value) {
		return fault.ErrOrderViolation
	}
	it.node.value = value
	return nil
}
