// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrCountMismatch        = ProcessError("node count does not match tree")
	ErrDuplicateScenario    = ExistsError("duplicate scenario name")
	ErrEndOfSequence        = NotFoundError("cursor is at end of sequence")
	ErrInconsistentLinks    = ProcessError("parent and child links are inconsistent")
	ErrInvalidCursor        = InvalidError("cursor does not refer to a live node")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrMissingScenario      = InvalidError("scenario name is required")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrNotFoundScenario     = NotFoundError("scenario is not found")
	ErrOrderViolation       = ProcessError("values are out of order")
	ErrPastBegin            = InvalidError("cursor is before the first value")
	ErrPastEnd              = InvalidError("cursor cannot advance past the end")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
