// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"cmp"

	"github.com/bitmark-inc/logger"
)

// Compare - ordering function: negative if a < b, zero if a == b,
// positive if a > b
type Compare[T any] func(a T, b T) int

// Tree - type to hold the root node of a tree
type Tree[T any] struct {
	root    *node[T]
	count   int
	compare Compare[T]
	pool    *pool[T]
}

// New - create an initially empty tree
func New[T any](compare Compare[T]) *Tree[T] {
	if nil == compare {
		logger.Panic("bst: nil compare function")
	}
	return &Tree[T]{
		root:    nil,
		count:   0,
		compare: compare,
		pool:    newPool[T](),
	}
}

// NewOrdered - create an empty tree for a type with a natural order
func NewOrdered[T cmp.Ordered]() *Tree[T] {
	return New[T](cmp.Compare[T])
}

// NewFrom - create a tree holding the values in sequence order,
// duplicates are kept
func NewFrom[T any](compare Compare[T], values ...T) *Tree[T] {
	tree := New(compare)
	for _, v := range values {
		tree.Insert(v, false)
	}
	return tree
}

// Of - NewFrom for naturally ordered types
func Of[T cmp.Ordered](values ...T) *Tree[T] {
	return NewFrom[T](cmp.Compare[T], values...)
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	return 0 == tree.count
}

// Count - number of nodes currently in the tree
func (tree *Tree[T]) Count() int {
	return tree.count
}

// Compare - the ordering function of this tree
func (tree *Tree[T]) Compare() Compare[T] {
	return tree.compare
}
