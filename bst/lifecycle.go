// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Clear - remove all nodes, children before their parent
//
// walks down using the child links and back up using the parent links
// so no stack is needed however deep the tree is
func (tree *Tree[T]) Clear() {
	p := tree.root
	for nil != p {
		switch {
		case nil != p.left:
			p = p.left
		case nil != p.right:
			p = p.right
		default:
			up := p.up
			if nil != up {
				if up.left == p {
					up.left = nil
				} else {
					up.right = nil
				}
			}
			tree.pool.freeNode(p)
			p = up
		}
	}
	tree.root = nil
	tree.count = 0
}

// Clone - an independent copy with the same shape and values
func (tree *Tree[T]) Clone() *Tree[T] {
	c := New(tree.compare)
	c.pool.limit = tree.pool.limit
	c.Assign(tree)
	return c
}

// Assign - replace the contents with a copy of src
//
// the current nodes are released first and reused for the copy
func (tree *Tree[T]) Assign(src *Tree[T]) {
	if tree == src {
		return
	}
	tree.Clear()
	tree.compare = src.compare
	tree.root = tree.copyTree(src.root)
	tree.count = src.count
}

// AssignValues - replace the contents with the values in sequence
// order, duplicates are kept
func (tree *Tree[T]) AssignValues(values ...T) {
	tree.Clear()
	for _, v := range values {
		tree.Insert(v, false)
	}
}

// internal: pre-order copy of a sub-tree using an explicit stack
func (tree *Tree[T]) copyTree(src *node[T]) *node[T] {
	if nil == src {
		return nil
	}

	type pair struct {
		from *node[T]
		to   *node[T]
	}

	root := tree.pool.newNode(src.value)
	stack := []pair{{from: src, to: root}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// push right first so the left sub-tree is copied first
		if r := top.from.right; nil != r {
			n := tree.pool.newNode(r.value)
			top.to.attachRight(n)
			stack = append(stack, pair{from: r, to: n})
		}
		if l := top.from.left; nil != l {
			n := tree.pool.newNode(l.value)
			top.to.attachLeft(n)
			stack = append(stack, pair{from: l, to: n})
		}
	}
	return root
}

// Take - create a tree holding all of src's nodes, src becomes empty
func Take[T any](src *Tree[T]) *Tree[T] {
	tree := New(src.compare)
	tree.MoveFrom(src)
	return tree
}

// MoveFrom - release the current nodes and take over those of src,
// src becomes empty
func (tree *Tree[T]) MoveFrom(src *Tree[T]) {
	if tree == src {
		return
	}
	tree.Clear()
	tree.Swap(src)
}

// Swap - exchange the contents of two trees
func (tree *Tree[T]) Swap(other *Tree[T]) {
	tree.root, other.root = other.root, tree.root
	tree.count, other.count = other.count, tree.count
	tree.compare, other.compare = other.compare, tree.compare
	tree.pool, other.pool = other.pool, tree.pool
}
