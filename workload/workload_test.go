// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/containers/fault"
	"github.com/bitmark-inc/containers/workload"
	"github.com/bitmark-inc/containers/workload/mocks"
)

const (
	testingDirName = "testing"
	category       = "testing"
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

func TestRunExample(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()
	r := mocks.NewMockRecorder(ctl)

	calls := []*gomock.Call{}
	for _, v := range []int{5, 3, 8, 1, 4, 7, 9} {
		calls = append(calls, r.EXPECT().Inserted("example", v, true).Times(1))
	}
	calls = append(calls,
		r.EXPECT().Found("example", 4, true).Times(1),
		r.EXPECT().Found("example", 6, false).Times(1),
		r.EXPECT().Erased("example", 5, "7").Times(1),
		r.EXPECT().Finished("example", []int{1, 3, 4, 7, 8, 9}).Times(1),
	)
	gomock.InOrder(calls...)

	out := &bytes.Buffer{}
	runner := workload.NewRunner(logger.New(category), r, out)
	tree, err := runner.Run(workload.Example())
	assert.Nil(t, err, "run error")
	assert.Equal(t, 6, tree.Count(), "wrong count")
	assert.Contains(t, out.String(), "scenario: example\n", "missing print header")
	assert.Contains(t, out.String(), "count: 6  depth: 3\n", "missing print summary")
}

func TestRunUniqueAndMissing(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()
	r := mocks.NewMockRecorder(ctl)

	gomock.InOrder(
		r.EXPECT().Inserted("unique", 2, true).Times(1),
		r.EXPECT().Inserted("unique", 2, false).Times(1),
		r.EXPECT().Inserted("unique", 1, true).Times(1),
		r.EXPECT().Erased("unique", 6, "missing").Times(1),
		r.EXPECT().Erased("unique", 2, "end").Times(1),
		r.EXPECT().Finished("unique", []int{1}).Times(1),
	)

	s := workload.Scenario{
		Name:   "unique",
		Unique: true,
		Insert: []int{2, 2, 1},
		Erase:  []int{6, 2},
	}

	out := &bytes.Buffer{}
	runner := workload.NewRunner(logger.New(category), r, out)
	tree, err := runner.Run(s)
	assert.Nil(t, err, "run error")
	assert.Equal(t, []int{1}, tree.Values(), "wrong values")
	assert.Equal(t, 0, out.Len(), "unexpected print")
}

func TestRunDuplicates(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()
	r := mocks.NewMockRecorder(ctl)

	r.EXPECT().Inserted("dups", gomock.Any(), true).Times(5)
	r.EXPECT().Erased("dups", 4, "4").Times(1)
	r.EXPECT().Finished("dups", []int{4, 4, 4, 4}).Times(1)

	s := workload.Scenario{
		Name:   "dups",
		Insert: []int{4, 4, 4, 4, 4},
		Erase:  []int{4},
	}
	runner := workload.NewRunner(logger.New(category), r, nil)
	_, err := runner.Run(s)
	assert.Nil(t, err, "run error")
}

func TestRunMissingName(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()
	r := mocks.NewMockRecorder(ctl)

	runner := workload.NewRunner(logger.New(category), r, nil)
	tree, err := runner.Run(workload.Scenario{Insert: []int{1}})
	assert.Equal(t, fault.ErrMissingScenario, err, "wrong error")
	assert.Nil(t, tree, "unexpected tree")
}

func TestRunAll(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()
	r := mocks.NewMockRecorder(ctl)

	r.EXPECT().Inserted(gomock.Any(), gomock.Any(), true).Times(3)
	r.EXPECT().Finished("one", []int{1}).Times(1)
	r.EXPECT().Finished("two", []int{1, 2}).Times(1)

	runner := workload.NewRunner(logger.New(category), r, nil)
	err := runner.RunAll([]workload.Scenario{
		{Name: "one", Insert: []int{1}},
		{Name: "two", Insert: []int{2, 1}},
	})
	assert.Nil(t, err, "run all error")
}

func TestRunAllRejectsBadNames(t *testing.T) {
	setupTestLogger()
	defer teardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()
	r := mocks.NewMockRecorder(ctl)

	runner := workload.NewRunner(logger.New(category), r, nil)

	err := runner.RunAll([]workload.Scenario{
		{Name: "one", Insert: []int{1}},
		{Name: "one", Insert: []int{2}},
	})
	assert.Equal(t, fault.ErrDuplicateScenario, err, "wrong duplicate error")

	err = runner.RunAll([]workload.Scenario{
		{Name: "one", Insert: []int{1}},
		{Insert: []int{2}},
	})
	assert.Equal(t, fault.ErrMissingScenario, err, "wrong missing error")
}

func TestSelect(t *testing.T) {
	all := []workload.Scenario{
		{Name: "a"},
		{Name: "b"},
		{Name: "c"},
	}

	s, err := workload.Select(all, nil)
	assert.Nil(t, err, "select all error")
	assert.Equal(t, all, s, "wrong select all")

	s, err = workload.Select(all, []string{"c", "a"})
	assert.Nil(t, err, "select error")
	assert.Equal(t, []workload.Scenario{{Name: "c"}, {Name: "a"}}, s, "wrong selection")

	_, err = workload.Select(all, []string{"b", "z"})
	assert.Equal(t, fault.ErrNotFoundScenario, err, "wrong not found error")
	assert.True(t, fault.IsErrNotFound(err), "not a not found error")
}
