// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Erase - remove the node a cursor refers to
//
// returns a cursor to the in-order successor of the removed value or
// End() if it was the highest.  A cursor that does not refer to a live
// node of this tree (end, before first, stale or from another tree)
// removes nothing and End() is returned.
//
// after this the erased cursor is stale
func (tree *Tree[T]) Erase(it Iterator[T]) Iterator[T] {
	if it.tree != tree || !it.live() {
		return tree.End()
	}

	d := it.node
	next := it

	switch {
	case nil == d.left: // no children or only a right child
		next.moveTo(d.next())
		tree.replace(d, d.right)

	case nil == d.right: // only a left child
		next.moveTo(d.next())
		tree.replace(d, d.left)

	default:
		// the successor is the lowest node of the right sub-tree
		// so it has no left child and can take the place of d
		s := d.right.first()
		s.attachLeft(d.left)

		if s != d.right {
			s.up.attachLeft(s.right)
			s.attachRight(d.right)
		}
		tree.replace(d, s)
		next = tree.cursor(s)
	}

	tree.count -= 1
	tree.pool.freeNode(d) // d must not be used after this
	return next
}

// Remove - erase the first node found equal to value
func (tree *Tree[T]) Remove(value T) bool {
	it := tree.Find(value)
	if !it.live() {
		return false
	}
	tree.Erase(it)
	return true
}
