// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ordmap_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/containers/ordmap"
)

func TestMapSetGet(t *testing.T) {
	m := ordmap.NewOrdered[string, int]()

	assert.True(t, m.Set("b", 2), "new key")
	assert.True(t, m.Set("a", 1), "new key")
	assert.False(t, m.Set("b", 20), "overwrite")

	v, ok := m.Get("b")
	assert.True(t, ok, "get b")
	assert.Equal(t, 20, v, "overwritten value")

	_, ok = m.Get("z")
	assert.False(t, ok, "missing key")

	assert.Equal(t, []string{"a", "b"}, m.Keys(), "keys")
	assert.Equal(t, 2, m.Len(), "length")
}

func TestMapDeleteAndErase(t *testing.T) {
	m := ordmap.New[string, string](strings.Compare)
	m.Set("one", "1")
	m.Set("two", "2")
	m.Set("three", "3")

	assert.True(t, m.Delete("two"), "delete")
	assert.False(t, m.Delete("two"), "delete again")

	next := m.Erase(m.Find("one"))
	p, err := next.Value()
	require.NoError(t, err, "successor")
	assert.Equal(t, "three", p.Key, "successor key")

	assert.Equal(t, []ordmap.Pair[string, string]{{Key: "three", Value: "3"}}, m.Pairs(), "pairs")
}

func TestMapCloneSwap(t *testing.T) {
	a := ordmap.NewOrdered[int, string]()
	a.Set(1, "x")
	b := a.Clone()
	b.Set(1, "y")

	v, _ := a.Get(1)
	assert.Equal(t, "x", v, "original unchanged")

	c := ordmap.NewOrdered[int, string]()
	c.Swap(b)
	assert.True(t, b.IsEmpty(), "swapped out")
	v, _ = c.Get(1)
	assert.Equal(t, "y", v, "swapped in")

	it := c.Begin()
	assert.True(t, it.Valid(), "begin")
	c.Clear()
	assert.True(t, c.IsEmpty(), "cleared")
	assert.True(t, c.Begin().Equal(c.End()), "empty map")
}
