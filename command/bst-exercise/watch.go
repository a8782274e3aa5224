// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"
)

func runWatch(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	names := []string(c.Args())

	log := logger.New(mainLoggerPrefix)

	channel := watcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
	watcher, err := newFileWatcher(m.file, logger.New(watcherLoggerPrefix), channel)
	if nil != err {
		return err
	}
	if err := watcher.Start(); nil != err {
		return err
	}
	defer watcher.Stop()

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(ch)

	return watchLoop(m, names, channel, ch, log)
}

// run once, then again for every change until removal or a signal
func watchLoop(m *metadata, names []string, channel watcherChannel, signals <-chan os.Signal, log *logger.L) error {
	rerun := func() {
		if err := runScenarios(m, m.config.Scenarios, names); nil != err {
			log.Errorf("run error: %s", err)
			fmt.Fprintf(m.e, "run error: %s\n", err)
		}
	}

	rerun()
	if m.verbose {
		fmt.Fprintf(m.e, "watching: %s\n", m.file)
	}

	for {
		select {
		case <-channel.change:
			config, err := getConfiguration(m.file)
			if nil != err {
				// may be partly written, wait for the next event
				log.Warnf("reload: %q  error: %s", m.file, err)
				fmt.Fprintf(m.e, "reload error: %s\n", err)
				continue
			}
			log.Infof("reloaded: %q  scenarios: %d", m.file, len(config.Scenarios))
			m.config.Scenarios = config.Scenarios
			rerun()

		case <-channel.remove:
			// an editor may have replaced the file
			if _, err := os.Stat(m.file); nil == err {
				continue
			}
			log.Errorf("config file: %q removed, stop", m.file)
			return fmt.Errorf("config file: %q removed", m.file)

		case sig := <-signals:
			log.Infof("received signal: %v", sig)
			return nil
		}
	}
}
