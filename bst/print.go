// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	rootBranch  branch = iota
	leftBranch  branch = iota
	rightBranch branch = iota
)

// Print - display an ASCII graphic representation of the tree, right
// sub-trees above and left sub-trees below their parent
//
// returns the maximum depth of the tree
func (tree *Tree[T]) Print(w io.Writer, printUp bool) int {
	return printTree(w, tree.root, "", rootBranch, printUp)
}

// internal print - returns the maximum depth of the sub-tree
func printTree[T any](w io.Writer, p *node[T], prefix string, br branch, printUp bool) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := "       "
		if leftBranch == br {
			t = "|      "
		}
		rd = printTree(w, p.right, prefix+t, rightBranch, printUp)
	}
	switch br {
	case rootBranch:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case leftBranch:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case rightBranch:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if printUp && nil != p.up {
		fmt.Fprintf(w, "%v ^%v\n", p.value, p.up.value)
	} else {
		fmt.Fprintf(w, "%v\n", p.value)
	}
	if nil != p.left {
		t := "       "
		if rightBranch == br {
			t = "|      "
		}
		ld = printTree(w, p.left, prefix+t, leftBranch, printUp)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
