// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"fmt"
	"io"
	"strconv"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/containers/bst"
	"github.com/bitmark-inc/containers/fault"
)

// successor text for an erase that found nothing
const (
	successorEnd     = "end"
	successorMissing = "missing"
)

// Scenario - one sequence of operations on a fresh tree
type Scenario struct {
	Name   string `gluamapper:"name"`
	Unique bool   `gluamapper:"unique"`
	Insert []int  `gluamapper:"insert"`
	Find   []int  `gluamapper:"find"`
	Erase  []int  `gluamapper:"erase"`
	Print  bool   `gluamapper:"print"`
}

// Runner - executes scenarios
type Runner struct {
	log      *logger.L
	recorder Recorder
	out      io.Writer
}

// NewRunner - create a runner, out receives tree printouts
func NewRunner(log *logger.L, recorder Recorder, out io.Writer) *Runner {
	return &Runner{
		log:      log,
		recorder: recorder,
		out:      out,
	}
}

// RunAll - run each scenario in turn, stopping at the first failure
func (r *Runner) RunAll(scenarios []Scenario) error {
	if err := Validate(scenarios); nil != err {
		return err
	}
	for _, s := range scenarios {
		if _, err := r.Run(s); nil != err {
			return err
		}
	}
	return nil
}

// Run - execute one scenario and return the resulting tree
func (r *Runner) Run(s Scenario) (*bst.Tree[int], error) {
	if "" == s.Name {
		return nil, fault.ErrMissingScenario
	}

	r.log.Infof("%s: start  unique: %t  inserts: %d  finds: %d  erases: %d",
		s.Name, s.Unique, len(s.Insert), len(s.Find), len(s.Erase))

	tree := bst.NewOrdered[int]()

	for _, v := range s.Insert {
		_, inserted := tree.Insert(v, s.Unique)
		r.recorder.Inserted(s.Name, v, inserted)
		if err := r.check(s.Name, "insert", v, tree); nil != err {
			return tree, err
		}
	}

	for _, v := range s.Find {
		r.recorder.Found(s.Name, v, tree.Find(v).Valid())
	}

	for _, v := range s.Erase {
		it := tree.Find(v)
		if !it.Valid() {
			r.log.Warnf("%s: erase: %d not present", s.Name, v)
			r.recorder.Erased(s.Name, v, successorMissing)
			continue
		}
		next := tree.Erase(it)
		r.recorder.Erased(s.Name, v, describe(next))
		if err := r.check(s.Name, "erase", v, tree); nil != err {
			return tree, err
		}
	}

	values := tree.Values()
	r.recorder.Finished(s.Name, values)

	if s.Print && nil != r.out {
		fmt.Fprintf(r.out, "scenario: %s\n", s.Name)
		depth := tree.Print(r.out, false)
		fmt.Fprintf(r.out, "count: %d  depth: %d\n", tree.Count(), depth)
	}

	r.log.Infof("%s: done  count: %d  height: %d", s.Name, tree.Count(), tree.Height())
	return tree, nil
}

// consistency check after a mutation
func (r *Runner) check(scenario string, operation string, value int, tree *bst.Tree[int]) error {
	err := tree.Check()
	if nil != err {
		r.log.Criticalf("%s: %s: %d  tree check failed: %s", scenario, operation, value, err)
	}
	return err
}

// text form of a cursor returned by erase
func describe(it bst.Iterator[int]) string {
	v, err := it.Value()
	if nil != err {
		return successorEnd
	}
	return strconv.Itoa(v)
}

// Validate - scenario names must be present and distinct
func Validate(scenarios []Scenario) error {
	seen := make(map[string]struct{}, len(scenarios))
	for _, s := range scenarios {
		if "" == s.Name {
			return fault.ErrMissingScenario
		}
		if _, ok := seen[s.Name]; ok {
			return fault.ErrDuplicateScenario
		}
		seen[s.Name] = struct{}{}
	}
	return nil
}

// Select - the scenarios matching names in the order given, all of
// them if names is empty
func Select(scenarios []Scenario, names []string) ([]Scenario, error) {
	if 0 == len(names) {
		return scenarios, nil
	}
	selected := make([]Scenario, 0, len(names))
names:
	for _, name := range names {
		for _, s := range scenarios {
			if name == s.Name {
				selected = append(selected, s)
				continue names
			}
		}
		return nil, fault.ErrNotFoundScenario
	}
	return selected, nil
}

// Example - the standard demonstration scenario
func Example() Scenario {
	return Scenario{
		Name:   "example",
		Unique: false,
		Insert: []int{5, 3, 8, 1, 4, 7, 9},
		Find:   []int{4, 6},
		Erase:  []int{5},
		Print:  true,
	}
}
