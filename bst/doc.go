// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bst - an ordered binary search tree with parent pointers to
// allow iteration through the nodes in both directions
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The tree is deliberately unbalanced: values are placed as leaves
// at their ordered position and nothing is ever rotated, so inserting
// sorted data produces a list shaped tree.  Equal values may be kept
// (they are placed in the right sub-tree) or rejected on insert.
//
// Delete does not copy values around: the in-order successor node is
// spliced into the place of the removed node so that cursors to all
// other nodes remain usable.  Cursors to removed nodes are detected
// and report fault.ErrInvalidCursor.
package bst
