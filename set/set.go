// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package set - ordered set of unique values stored in a binary
// search tree
package set

import (
	"cmp"

	"github.com/bitmark-inc/containers/bst"
)

// Set - ordered collection without duplicates
type Set[T any] struct {
	tree *bst.Tree[T]
}

// New - create an empty set
func New[T any](compare bst.Compare[T]) *Set[T] {
	return &Set[T]{
		tree: bst.New(compare),
	}
}

// NewOrdered - create an empty set for a type with a natural order
func NewOrdered[T cmp.Ordered]() *Set[T] {
	return &Set[T]{
		tree: bst.NewOrdered[T](),
	}
}

// Of - create a set from values, repeated values are stored once
func Of[T cmp.Ordered](values ...T) *Set[T] {
	s := NewOrdered[T]()
	for _, v := range values {
		s.Insert(v)
	}
	return s
}

// Insert - add a value, false if it was already present
func (s *Set[T]) Insert(value T) bool {
	_, inserted := s.tree.Insert(value, true)
	return inserted
}

// Contains - true if the value is present
func (s *Set[T]) Contains(value T) bool {
	return s.tree.Contains(value)
}

// Find - cursor to the value or End()
func (s *Set[T]) Find(value T) bst.Iterator[T] {
	return s.tree.Find(value)
}

// Remove - delete a value, false if it was not present
func (s *Set[T]) Remove(value T) bool {
	return s.tree.Remove(value)
}

// Erase - delete at a cursor returning a cursor to the next value
func (s *Set[T]) Erase(it bst.Iterator[T]) bst.Iterator[T] {
	return s.tree.Erase(it)
}

// Len - number of values
func (s *Set[T]) Len() int {
	return s.tree.Count()
}

// IsEmpty - true if there are no values
func (s *Set[T]) IsEmpty() bool {
	return s.tree.IsEmpty()
}

// Clear - remove all values
func (s *Set[T]) Clear() {
	s.tree.Clear()
}

// Clone - independent copy
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{
		tree: s.tree.Clone(),
	}
}

// Swap - exchange contents with another set
func (s *Set[T]) Swap(other *Set[T]) {
	s.tree.Swap(other.tree)
}

// Begin - cursor to the lowest value
func (s *Set[T]) Begin() bst.Iterator[T] {
	return s.tree.Begin()
}

// End - cursor one past the highest value
func (s *Set[T]) End() bst.Iterator[T] {
	return s.tree.End()
}

// Values - all values in increasing order
func (s *Set[T]) Values() []T {
	return s.tree.Values()
}
