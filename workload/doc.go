// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package workload - run configured sequences of tree operations
//
// each scenario builds a fresh tree, inserts its values, looks up its
// find values and erases its erase values; every step is passed to a
// Recorder and the tree is checked for consistency after each one.
package workload
