// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/require"
)

const (
	testingDirName = "testing"
)

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func teardownTestLogger() {
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

const testConfig = `
local M = {}

M.data_directory = "."

M.logging = {
    directory = "logs",
    file = "exercise.log",
}

M.scenarios = {
    {
        name = "example",
        insert = { 5, 3, 8, 1, 4, 7, 9 },
        find = { 4, 6 },
        erase = { 5 },
    },
    {
        name = "unique",
        unique = true,
        insert = { 2, 2, 1 },
    },
}

return M
`

// write a configuration file into a fresh directory
func writeTestConfig(t *testing.T, dir string, text string) string {
	fileName := filepath.Join(dir, "bst-exercise.conf")
	require.NoError(t, os.WriteFile(fileName, []byte(text), 0600), "write config")
	return fileName
}
