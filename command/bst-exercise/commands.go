// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/containers/workload"
)

func runRun(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	return runScenarios(m, m.config.Scenarios, c.Args())
}

func runDemo(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)
	return runScenarios(m, m.config.Scenarios, nil)
}

func runList(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	for _, s := range m.config.Scenarios {
		fmt.Fprintf(m.w, "%-20s  unique: %-5t  insert: %d  find: %d  erase: %d\n",
			s.Name, s.Unique, len(s.Insert), len(s.Find), len(s.Erase))
	}
	return nil
}

// run the selected scenarios, output to the metadata writer
func runScenarios(m *metadata, scenarios []workload.Scenario, names []string) error {
	selected, err := workload.Select(scenarios, names)
	if nil != err {
		return err
	}

	log := logger.New(workloadLoggerPrefix)
	recorder := &outputRecorder{
		w:       m.w,
		verbose: m.verbose,
		log:     workload.NewLogRecorder(log),
	}
	runner := workload.NewRunner(log, recorder, m.w)
	return runner.RunAll(selected)
}

// outputRecorder - prints results and passes them to the log
type outputRecorder struct {
	w       io.Writer
	verbose bool
	log     workload.Recorder
}

func (r *outputRecorder) Inserted(scenario string, value int, inserted bool) {
	r.log.Inserted(scenario, value, inserted)
	if r.verbose {
		fmt.Fprintf(r.w, "%s: insert %d: %t\n", scenario, value, inserted)
	}
}

func (r *outputRecorder) Found(scenario string, value int, hit bool) {
	r.log.Found(scenario, value, hit)
	result := "miss"
	if hit {
		result = "hit"
	}
	fmt.Fprintf(r.w, "%s: find %d: %s\n", scenario, value, result)
}

func (r *outputRecorder) Erased(scenario string, value int, successor string) {
	r.log.Erased(scenario, value, successor)
	fmt.Fprintf(r.w, "%s: erase %d: next: %s\n", scenario, value, successor)
}

func (r *outputRecorder) Finished(scenario string, values []int) {
	r.log.Finished(scenario, values)
	fmt.Fprintf(r.w, "%s: %v\n", scenario, values)
}
