// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/containers/fault"
)

// where a cursor stands
type position int

const (
	atEnd       position = iota // one past the highest value, also "not found"
	atNode      position = iota // refers to a node
	beforeFirst position = iota // one before the lowest value
)

// Iterator - a cursor into a tree
//
// the zero value is an end cursor that belongs to no tree
type Iterator[T any] struct {
	tree       *Tree[T]
	node       *node[T]
	generation uint64
	position   position
}

// Begin - cursor to the lowest value or End() if the tree is empty
func (tree *Tree[T]) Begin() Iterator[T] {
	return tree.cursor(tree.root.first())
}

// Last - cursor to the highest value or End() if the tree is empty
func (tree *Tree[T]) Last() Iterator[T] {
	return tree.cursor(tree.root.last())
}

// End - cursor one past the highest value
func (tree *Tree[T]) End() Iterator[T] {
	return Iterator[T]{
		tree:     tree,
		position: atEnd,
	}
}

// internal: cursor for a node, nil gives End()
func (tree *Tree[T]) cursor(p *node[T]) Iterator[T] {
	it := tree.End()
	it.moveTo(p)
	return it
}

func (it *Iterator[T]) moveTo(p *node[T]) {
	if nil == p {
		it.node = nil
		it.generation = 0
		it.position = atEnd
		return
	}
	it.node = p
	it.generation = p.generation
	it.position = atNode
}

// true if the cursor refers to a node that is still in its tree
func (it Iterator[T]) live() bool {
	return atNode == it.position &&
		nil != it.tree &&
		nil != it.node &&
		it.node.pool == it.tree.pool &&
		it.node.generation == it.generation
}

// Valid - true if the cursor can be dereferenced
func (it Iterator[T]) Valid() bool {
	return it.live()
}

// IsEnd - true for the one past the highest value cursor
func (it Iterator[T]) IsEnd() bool {
	return atEnd == it.position
}

// Value - the value the cursor refers to
func (it Iterator[T]) Value() (T, error) {
	var zero T
	switch it.position {
	case atEnd:
		return zero, fault.ErrEndOfSequence
	case beforeFirst:
		return zero, fault.ErrPastBegin
	}
	if !it.live() {
		return zero, fault.ErrInvalidCursor
	}
	return it.node.value, nil
}

// Equal - true if both cursors refer to the same node, or are both at
// the same end
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.position == other.position && it.node == other.node
}

// Next - advance to the in-order successor
//
// stepping from the highest value gives the end cursor, stepping from
// the end is an error
func (it *Iterator[T]) Next() error {
	switch it.position {
	case atEnd:
		return fault.ErrPastEnd
	case beforeFirst:
		it.moveTo(it.tree.root.first())
		return nil
	}
	if !it.live() {
		return fault.ErrInvalidCursor
	}
	it.moveTo(it.node.next())
	return nil
}

// Prev - move back to the in-order predecessor
//
// stepping back from the end gives the highest value, stepping back
// from the lowest value gives a before first cursor which is an error
// to step back from again
func (it *Iterator[T]) Prev() error {
	switch it.position {
	case beforeFirst:
		return fault.ErrPastBegin
	case atEnd:
		if nil == it.tree {
			return fault.ErrInvalidCursor
		}
		if p := it.tree.root.last(); nil != p {
			it.moveTo(p)
			return nil
		}
		it.setBeforeFirst()
		return nil
	}
	if !it.live() {
		return fault.ErrInvalidCursor
	}
	if p := it.node.prev(); nil != p {
		it.moveTo(p)
		return nil
	}
	it.setBeforeFirst()
	return nil
}

func (it *Iterator[T]) setBeforeFirst() {
	it.node = nil
	it.generation = 0
	it.position = beforeFirst
}

// Ascend - call fn for each value in increasing order until it
// returns false
func (tree *Tree[T]) Ascend(fn func(value T) bool) {
	for p := tree.root.first(); nil != p; p = p.next() {
		if !fn(p.value) {
			return
		}
	}
}

// Descend - call fn for each value in decreasing order until it
// returns false
func (tree *Tree[T]) Descend(fn func(value T) bool) {
	for p := tree.root.last(); nil != p; p = p.prev() {
		if !fn(p.value) {
			return
		}
	}
}

// Values - all values in increasing order
func (tree *Tree[T]) Values() []T {
	values := make([]T, 0, tree.count)
	tree.Ascend(func(value T) bool {
		values = append(values, value)
		return true
	})
	return values
}
