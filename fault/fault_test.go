// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2026 the suid-go authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/Download/suid-go/fault"
)

var (
	ErrInvalidOne = fault.InvalidError("invalid one")
	ErrInvalidTwo = fault.InvalidError("invalid two")
	ErrProcessOne = fault.ProcessError("process one")
	ErrProcessTwo = fault.ProcessError("process two")
	ErrRangeOne   = fault.RangeError("range one")
	ErrRangeTwo   = fault.RangeError("range two")
)

// test that the error classes can be told apart
func TestClassify(t *testing.T) {
	errorList := []struct {
		err     error
		invalid bool
		process bool
		rng     bool
	}{
		{ErrInvalidOne, true, false, false},
		{ErrInvalidTwo, true, false, false},
		{ErrProcessOne, false, true, false},
		{ErrProcessTwo, false, true, false},
		{ErrRangeOne, false, false, true},
		{ErrRangeTwo, false, false, true},
		{fault.ErrInvalidSuidString, true, false, false},
		{fault.ErrCannotScanSuid, false, true, false},
		{fault.ErrSuidOutOfRange, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrRange(err) != e.rng {
			t.Errorf("%d: expected 'range' == %v for err = %v", i, e.rng, err)
		}
	}
}

// singleton instances must compare equal by identity
func TestIdentity(t *testing.T) {
	var err error = fault.ErrInvalidSuidString
	if fault.ErrInvalidSuidString != err {
		t.Errorf("identity comparison failed for: %v", err)
	}
	if fault.InvalidError("invalid base-36 suid string") != err {
		t.Errorf("value comparison failed for: %v", err)
	}
}
