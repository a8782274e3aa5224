// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/containers/fault"
)

const (
	eventTimeout = 5 * time.Second
)

func newTestChannel() watcherChannel {
	return watcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
}

func TestFileWatcherMissingFile(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	_, err := newFileWatcher(filepath.Join(t.TempDir(), "none"), logger.New("test"), newTestChannel())
	assert.Equal(t, fault.ErrNotFoundConfigFile, err, "wrong error")
}

func TestFileWatcherEvents(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	dir := t.TempDir()
	fileName := filepath.Join(dir, "watched")
	require.NoError(t, os.WriteFile(fileName, []byte("one"), 0600), "create file")

	channel := newTestChannel()
	w, err := newFileWatcher(fileName, logger.New("test"), channel)
	require.NoError(t, err, "new watcher")
	require.NoError(t, w.Start(), "start watcher")
	defer w.Stop()

	// other files in the directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other"), []byte("x"), 0600), "write other")

	require.NoError(t, os.WriteFile(fileName, []byte("two"), 0600), "write file")
	select {
	case <-channel.change:
	case <-time.After(eventTimeout):
		t.Fatal("watcher did not receive change event")
	}

	require.NoError(t, os.Remove(fileName), "remove file")
	select {
	case <-channel.remove:
	case <-time.After(eventTimeout):
		t.Fatal("watcher did not receive remove event")
	}
}

func TestWatchLoop(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	dir := t.TempDir()
	fileName := writeTestConfig(t, dir, testConfig)
	config, err := getConfiguration(fileName)
	require.NoError(t, err, "configuration")

	w := &safeBuffer{}
	m := &metadata{
		file:   fileName,
		config: config,
		w:      w,
		e:      w,
	}

	channel := newTestChannel()
	signals := make(chan os.Signal, 1)
	done := make(chan error, 1)
	go func() {
		done <- watchLoop(m, []string{"unique"}, channel, signals, logger.New("test"))
	}()

	writeTestConfig(t, dir, `return { scenarios = { { name = "unique", unique = true, insert = { 9, 8 } } } }`)
	channel.change <- struct{}{}

	deadline := time.Now().Add(eventTimeout)
	for !w.contains("unique: [8 9]\n") {
		if time.Now().After(deadline) {
			t.Fatal("reloaded scenario did not run")
		}
		time.Sleep(10 * time.Millisecond)
	}

	signals <- syscall.SIGTERM
	select {
	case err := <-done:
		assert.Nil(t, err, "wrong signal result")
	case <-time.After(eventTimeout):
		t.Fatal("watch loop did not stop")
	}
	assert.True(t, w.contains("unique: [1 2]\n"), "first run missing")
}

func TestWatchLoopRemoved(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	dir := t.TempDir()
	fileName := writeTestConfig(t, dir, testConfig)
	config, err := getConfiguration(fileName)
	require.NoError(t, err, "configuration")

	w := &safeBuffer{}
	m := &metadata{
		file:   fileName,
		config: config,
		w:      w,
		e:      w,
	}

	require.NoError(t, os.Remove(fileName), "remove file")

	channel := newTestChannel()
	channel.remove <- struct{}{}
	err = watchLoop(m, nil, channel, make(chan os.Signal), logger.New("test"))
	assert.Error(t, err, "removal not reported")
}
