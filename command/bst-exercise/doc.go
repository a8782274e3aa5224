// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Exercise the ordered tree with scenarios read from a Lua
// configuration file
//
// e.g. run two of the configured scenarios, then list the rest:
//
//   bst-exercise --config-file=bst-exercise.conf run small duplicates
//   bst-exercise -c bst-exercise.conf list
//
// "watch" re-runs the scenarios each time the configuration file is
// written and "demo" needs no configuration at all.
package main
