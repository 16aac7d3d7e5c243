// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised         = ExistsError("already initialised")
	ErrBalanceMismatch            = InvalidError("balance tag does not match sub-tree heights")
	ErrCountMismatch              = ProcessError("tree count does not match model")
	ErrDuplicateKey               = ExistsError("duplicate key")
	ErrHeightDifference           = InvalidError("sub-tree heights differ by more than one")
	ErrInvalidCheckInterval       = InvalidError("invalid check interval")
	ErrInvalidConfigurationResult = InvalidError("configuration did not return a table")
	ErrInvalidCount               = InvalidError("invalid count")
	ErrInvalidDuration            = InvalidError("invalid duration")
	ErrInvalidKeyRange            = InvalidError("invalid key range")
	ErrInvalidLoggerChannel       = InvalidError("invalid logger channel")
	ErrInvalidOperationCount      = InvalidError("invalid operation count")
	ErrInvalidRate                = InvalidError("invalid rate")
	ErrInvalidReaderCount         = InvalidError("invalid reader count")
	ErrInvalidStructPointer       = InvalidError("invalid struct pointer")
	ErrInvalidWorkerCount         = InvalidError("invalid worker count")
	ErrKeyOrder                   = InvalidError("keys out of order")
	ErrLookupMismatch             = ProcessError("lookup does not match model")
	ErrMissingKey                 = NotFoundError("key missing from tree")
	ErrNotInitialised             = NotFoundError("not initialised")
	ErrRateLimiting               = ProcessError("rate limiting")
	ErrSizeMismatch               = InvalidError("sub-tree size is incorrect")
	ErrSnapshotChanged            = ProcessError("snapshot changed after publication")
	ErrUnexpectedKey              = ExistsError("unexpected key in tree")
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
