// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2026 the suid-go authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package suid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Download/suid-go/fault"
	"github.com/Download/suid-go/suid"
)

var (
	testIDs     = []suid.Suid{1903154, 1903155, 1903156}
	testValues  = []int64{1903154, 1903155, 1903156}
	testStrings = []string{"14she", "14shf", "14shg"}
)

func TestToInt64s(t *testing.T) {
	assert.Equal(t, testValues, suid.ToInt64s(testIDs), "wrong values")
	assert.Equal(t, []int64{}, suid.ToInt64s(nil), "wrong empty result")
}

func TestToStrings(t *testing.T) {
	assert.Equal(t, testStrings, suid.ToStrings(testIDs), "wrong strings")
	assert.Equal(t, []string{}, suid.ToStrings(nil), "wrong empty result")
}

func TestFromInt64s(t *testing.T) {
	assert.Equal(t, testIDs, suid.FromInt64s(testValues), "wrong suids")
	assert.Equal(t, []suid.Suid{}, suid.FromInt64s(nil), "wrong empty result")
}

func TestFromStrings(t *testing.T) {
	ids, err := suid.FromStrings(testStrings)
	assert.NoError(t, err, "conversion failed")
	assert.Equal(t, testIDs, ids, "wrong suids")

	ids, err = suid.FromStrings(nil)
	assert.NoError(t, err, "empty conversion failed")
	assert.Equal(t, []suid.Suid{}, ids, "wrong empty result")
}

// one bad element aborts the whole conversion
func TestFromStringsInvalid(t *testing.T) {
	ids, err := suid.FromStrings([]string{"14she", "not-base36!", "14shg"})
	assert.Equal(t, fault.ErrInvalidSuidString, err, "wrong error")
	assert.Nil(t, ids, "partial result returned")
}

// each call must allocate a fresh output slice
func TestFreshOutput(t *testing.T) {
	first := suid.ToInt64s(testIDs)
	second := suid.ToInt64s(testIDs)
	first[0] = 0
	assert.Equal(t, int64(1903154), second[0], "output slices share storage")
	assert.Equal(t, suid.Suid(1903154), testIDs[0], "input modified")
}
