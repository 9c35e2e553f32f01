// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2026 the suid-go authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type InvalidError GenericError
type ProcessError GenericError
type RangeError GenericError

// common errors - keep in alphabetic order
var (
	ErrCannotScanSuid    = ProcessError("cannot scan suid from column value")
	ErrInvalidSuidString = InvalidError("invalid base-36 suid string")
	ErrSuidOutOfRange    = RangeError("suid value out of range")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e InvalidError) Error() string { return string(e) }
func (e ProcessError) Error() string { return string(e) }
func (e RangeError) Error() string   { return string(e) }

// determine the class of an error
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }
func IsErrProcess(e error) bool { _, ok := e.(ProcessError); return ok }
func IsErrRange(e error) bool   { _, ok := e.(RangeError); return ok }
