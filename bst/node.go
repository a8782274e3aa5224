// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// attach a sub-tree as the left child, keeping its up pointer consistent
func (p *node[T]) attachLeft(child *node[T]) {
	if nil != child {
		child.up = p
	}
	p.left = child
}

// attach a sub-tree as the right child, keeping its up pointer consistent
func (p *node[T]) attachRight(child *node[T]) {
	if nil != child {
		child.up = p
	}
	p.right = child
}

func (p *node[T]) isLeftChild() bool {
	return nil != p.up && p.up.left == p
}

func (p *node[T]) isRightChild() bool {
	return nil != p.up && p.up.right == p
}

// internal: lowest node in a sub-tree
func (p *node[T]) first() *node[T] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// internal: highest node in a sub-tree
func (p *node[T]) last() *node[T] {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}

// internal: in-order successor or nil after the highest node
//
// climbs by structure, values are never compared, so runs of
// equal values are visited correctly
func (p *node[T]) next() *node[T] {
	if nil != p.right {
		return p.right.first()
	}
	for p.isRightChild() {
		p = p.up
	}
	return p.up
}

// internal: in-order predecessor or nil before the lowest node
func (p *node[T]) prev() *node[T] {
	if nil != p.left {
		return p.left.last()
	}
	for p.isLeftChild() {
		p = p.up
	}
	return p.up
}

// replace node d in its parent's slot (or as root) by sub-tree c
func (tree *Tree[T]) replace(d *node[T], c *node[T]) {
	switch {
	case nil == d.up:
		tree.root = c
		if nil != c {
			c.up = nil
		}
	case d.isLeftChild():
		d.up.attachLeft(c)
	default:
		d.up.attachRight(c)
	}
}
