// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Find - cursor to the first node on the path from the root that
// compares equal to value, or End() if there is none
func (tree *Tree[T]) Find(value T) Iterator[T] {
	p := tree.root
	for nil != p {
		c := tree.compare(value, p.value)
		switch {
		case 0 == c:
			return tree.cursor(p)
		case c < 0:
			p = p.left
		default:
			p = p.right
		}
	}
	return tree.End()
}

// Contains - true if a value equal to value is present
func (tree *Tree[T]) Contains(value T) bool {
	return tree.Find(value).live()
}
