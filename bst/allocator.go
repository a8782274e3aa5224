// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/logger"
)

// DefaultPoolLimit - number of reclaimed nodes a tree will hold for reuse
const DefaultPoolLimit = 256

// a node in the tree
type node[T any] struct {
	left       *node[T] // left sub-tree, values less than this one
	right      *node[T] // right sub-tree, values not less than this one
	up         *node[T] // points to parent node
	value      T        // the stored data
	pool       *pool[T] // allocator this node was taken from
	generation uint64   // incremented each time the node is reclaimed
}

// per-tree allocator data
type pool[T any] struct {
	free       *node[T] // linked list of reclaimed nodes
	limit      int      // maximum length of free list
	totalNodes int      // total nodes created
	freeNodes  int      // number of nodes in the pool
}

// PoolStats - allocator counters for a tree
type PoolStats struct {
	Created int // nodes created by the allocator
	Free    int // reclaimed nodes waiting for reuse
}

func newPool[T any]() *pool[T] {
	return &pool[T]{
		limit: DefaultPoolLimit,
	}
}

// allocate a new node, reuses reclaimed nodes if any are available
func (p *pool[T]) newNode(value T) *node[T] {
	if nil == p.free {
		if 0 != p.freeNodes {
			logger.Panicf("bst: pool corrupt: %d free nodes but empty list", p.freeNodes)
		}
		p.totalNodes += 1
		return &node[T]{
			value: value,
			pool:  p,
		}
	}
	n := p.free
	p.free = n.up
	n.up = nil // ensure freelist pointer is cleared
	n.left = nil
	n.right = nil
	n.value = value
	n.pool = p
	p.freeNodes -= 1
	return n
}

// reclaim a node and keep it in the pool if there is room
//
// the generation change is what makes any cursor still holding
// this node stale
func (p *pool[T]) freeNode(n *node[T]) {
	var zero T

	n.left = nil
	n.right = nil
	n.value = zero
	n.generation += 1

	if p.freeNodes >= p.limit {
		n.up = nil
		n.pool = nil
		return
	}

	n.up = p.free // use as free list pointer
	p.free = n
	p.freeNodes += 1
}

// drop reclaimed nodes beyond the limit
func (p *pool[T]) trim() {
	for p.freeNodes > p.limit {
		n := p.free
		p.free = n.up
		n.up = nil
		n.pool = nil
		p.freeNodes -= 1
	}
}

// SetPoolLimit - change the number of reclaimed nodes kept for reuse
func (tree *Tree[T]) SetPoolLimit(limit int) {
	if limit < 0 {
		limit = 0
	}
	tree.pool.limit = limit
	tree.pool.trim()
}

// Stats - allocator counters
func (tree *Tree[T]) Stats() PoolStats {
	return PoolStats{
		Created: tree.pool.totalNodes,
		Free:    tree.pool.freeNodes,
	}
}
