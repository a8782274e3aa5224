// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"github.com/bitmark-inc/logger"
)

// Recorder - receives the outcome of each operation
type Recorder interface {
	Inserted(scenario string, value int, inserted bool)
	Found(scenario string, value int, hit bool)
	Erased(scenario string, value int, successor string)
	Finished(scenario string, values []int)
}

// LogRecorder - Recorder that writes to a logger channel
type LogRecorder struct {
	log *logger.L
}

// NewLogRecorder - create a recorder for a logger channel
func NewLogRecorder(log *logger.L) *LogRecorder {
	return &LogRecorder{
		log: log,
	}
}

// Inserted - log an insert
func (r *LogRecorder) Inserted(scenario string, value int, inserted bool) {
	r.log.Debugf("%s: insert: %d  added: %t", scenario, value, inserted)
}

// Found - log a lookup
func (r *LogRecorder) Found(scenario string, value int, hit bool) {
	r.log.Infof("%s: find: %d  hit: %t", scenario, value, hit)
}

// Erased - log an erase and the successor it returned
func (r *LogRecorder) Erased(scenario string, value int, successor string) {
	r.log.Infof("%s: erase: %d  successor: %s", scenario, value, successor)
}

// Finished - log the final in-order sequence
func (r *LogRecorder) Finished(scenario string, values []int) {
	r.log.Infof("%s: finished: %d values: %v", scenario, len(values), values)
}
