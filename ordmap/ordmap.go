// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ordmap - key ordered map stored in a binary search tree
//
// only the key part takes part in ordering, the value part can be
// overwritten in place
package ordmap

import (
	"cmp"

	"github.com/bitmark-inc/containers/bst"
)

// Pair - one map entry
type Pair[K any, V any] struct {
	Key   K
	Value V
}

// Map - ordered map with unique keys
type Map[K any, V any] struct {
	tree *bst.Tree[Pair[K, V]]
}

// New - create an empty map ordered by a key compare function
func New[K any, V any](compare bst.Compare[K]) *Map[K, V] {
	byKey := func(a Pair[K, V], b Pair[K, V]) int {
		return compare(a.Key, b.Key)
	}
	return &Map[K, V]{
		tree: bst.New[Pair[K, V]](byKey),
	}
}

// NewOrdered - create an empty map for a key type with a natural order
func NewOrdered[K cmp.Ordered, V any]() *Map[K, V] {
	return New[K, V](cmp.Compare[K])
}

// Set - store a value for key, overwriting any previous value
//
// returns true if the key was not already present
func (m *Map[K, V]) Set(key K, value V) bool {
	p := Pair[K, V]{Key: key, Value: value}
	it, inserted := m.tree.Insert(p, true)
	if !inserted {
		// same key so the order cannot change
		_ = m.tree.Replace(it, p)
	}
	return inserted
}

// Get - value for key
func (m *Map[K, V]) Get(key K) (V, bool) {
	p, err := m.tree.Find(Pair[K, V]{Key: key}).Value()
	if nil != err {
		var zero V
		return zero, false
	}
	return p.Value, true
}

// Delete - remove key, false if it was not present
func (m *Map[K, V]) Delete(key K) bool {
	return m.tree.Remove(Pair[K, V]{Key: key})
}

// Find - cursor to the entry for key or End()
func (m *Map[K, V]) Find(key K) bst.Iterator[Pair[K, V]] {
	return m.tree.Find(Pair[K, V]{Key: key})
}

// Erase - delete at a cursor returning a cursor to the next entry
func (m *Map[K, V]) Erase(it bst.Iterator[Pair[K, V]]) bst.Iterator[Pair[K, V]] {
	return m.tree.Erase(it)
}

// Len - number of entries
func (m *Map[K, V]) Len() int {
	return m.tree.Count()
}

// IsEmpty - true if there are no entries
func (m *Map[K, V]) IsEmpty() bool {
	return m.tree.IsEmpty()
}

// Clear - remove all entries
func (m *Map[K, V]) Clear() {
	m.tree.Clear()
}

// Clone - independent copy, values are copied by assignment
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{
		tree: m.tree.Clone(),
	}
}

// Swap - exchange contents with another map
func (m *Map[K, V]) Swap(other *Map[K, V]) {
	m.tree.Swap(other.tree)
}

// Begin - cursor to the lowest key
func (m *Map[K, V]) Begin() bst.Iterator[Pair[K, V]] {
	return m.tree.Begin()
}

// End - cursor one past the highest key
func (m *Map[K, V]) End() bst.Iterator[Pair[K, V]] {
	return m.tree.End()
}

// Keys - all keys in increasing order
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.tree.Count())
	m.tree.Ascend(func(p Pair[K, V]) bool {
		keys = append(keys, p.Key)
		return true
	})
	return keys
}

// Pairs - all entries in increasing key order
func (m *Map[K, V]) Pairs() []Pair[K, V] {
	return m.tree.Values()
}
