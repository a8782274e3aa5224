// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/containers/fault"
)

type watcherChannel struct {
	change chan struct{}
	remove chan struct{}
}

// fileWatcher - signals writes to and removal of a single file
//
// the directory is watched so that editors which replace the file
// are still seen
type fileWatcher struct {
	log      *logger.L
	channel  watcherChannel
	watcher  *fsnotify.Watcher
	filePath string
	done     chan struct{}
}

func newFileWatcher(targetFile string, log *logger.L, channel watcherChannel) (*fileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		log.Errorf("parse file %s error: %s", targetFile, err)
		return nil, err
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fault.ErrNotFoundConfigFile
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &fileWatcher{
		log:      log,
		channel:  channel,
		watcher:  watcher,
		filePath: filePath,
		done:     make(chan struct{}),
	}, nil
}

// Start - begin delivering events
func (w *fileWatcher) Start() error {
	err := w.watcher.Add(filepath.Dir(w.filePath))
	if nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		_ = w.watcher.Close()
		return err
	}

	go w.loop()
	return nil
}

// Stop - release the watcher, the event loop exits
func (w *fileWatcher) Stop() {
	_ = w.watcher.Close()
	<-w.done
}

func (w *fileWatcher) loop() {
	defer close(w.done)

	base := filepath.Base(w.filePath)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			w.log.Debugf("file event: %v", event)

			switch {
			case watcherEventFileRemove(event):
				w.log.Warnf("file %s removed", w.filePath)
				w.sendEvent(w.channel.remove, "remove")
			case watcherEventFileChange(event):
				w.log.Info("sending config change event…")
				w.sendEvent(w.channel.change, "change")
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}
}

// a full channel already holds an undelivered event
func (w *fileWatcher) sendEvent(ch chan<- struct{}, name string) {
	select {
	case ch <- struct{}{}:
	default:
		w.log.Debugf("event channel %s full, discard event", name)
	}
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Chmod == fsnotify.Chmod
}
