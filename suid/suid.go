// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2026 the suid-go authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package suid

import (
	"strconv"
	"strings"

	"github.com/Download/suid-go/fault"
)

// Alphabet - digits of the base-36 string form, in value order
const Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// number of bits in each field
const (
	BitsID       = 4
	BitsBlock    = 48
	BitsReserved = 12
)

// offset of each field from the least significant bit
const (
	OffsetID       = 0
	OffsetBlock    = BitsID
	OffsetReserved = BitsID + BitsBlock
)

// masks that single out each field
const (
	MaskID       int64 = (1<<BitsID - 1) << OffsetID
	MaskBlock    int64 = (1<<BitsBlock - 1) << OffsetBlock
	MaskReserved int64 = ^(MaskID | MaskBlock)
)

const (
	// BlockSize - the number of block numbers available
	BlockSize int64 = 1 << BitsBlock

	// IDSize - the number of ids available in each block
	IDSize = 1 << BitsID

	// MaxStringLength - longest possible base-36 form of a valid suid
	MaxStringLength = 11
)

// Suid - a scoped unique identifier
//
// immutable value; equality, ordering and map hashing operate
// directly on the underlying integer
type Suid int64

// New - pack a block number and an id into a suid
//
// block bits beyond 48 and id bits beyond 4 are silently masked off,
// never rejected; the reserved bits of the result are always zero
func New(block int64, id byte) Suid {
	return Suid(^MaskReserved & (MaskBlock&(block<<OffsetBlock) | MaskID&int64(id)))
}

// FromInt64 - wrap a raw 64-bit value verbatim
//
// no masking is performed; even set reserved bits are kept as
// supplied, the caller is trusted
func FromInt64(value int64) Suid {
	return Suid(value)
}

// FromString - parse a base-36 string into a suid
//
// an empty string yields the zero suid; upper case letters are
// accepted on input although the canonical form is lower case
func FromString(s string) (Suid, error) {
	if "" == s {
		return 0, nil
	}
	value, err := strconv.ParseInt(s, 36, 64)
	if nil != err {
		if e, ok := err.(*strconv.NumError); ok && strconv.ErrRange == e.Err {
			return 0, fault.ErrSuidOutOfRange
		}
		return 0, fault.ErrInvalidSuidString
	}
	return Suid(value), nil
}

// Int64 - the raw 64-bit value, exact
func (suid Suid) Int64() int64 {
	return int64(suid)
}

// Block - the 48-bit block number
func (suid Suid) Block() int64 {
	return (int64(suid) & MaskBlock) >> OffsetBlock
}

// ID - the 4-bit id number
func (suid Suid) ID() byte {
	return byte(int64(suid) & MaskID)
}

// Int32 - narrowing view for numeric interop, loses the high bits
//
// use Int64 instead wherever possible
func (suid Suid) Int32() int32 {
	return int32(suid)
}

// Float32 - narrowing view for numeric interop, loses precision
//
// use Float64 if a floating point number is unavoidable
func (suid Suid) Float32() float32 {
	return float32(suid)
}

// Float64 - the value as a double precision float
//
// exact: suids are limited to 52 significant bits, the same width
// as a double's mantissa
func (suid Suid) Float64() float64 {
	return float64(suid)
}

// String - the canonical lowercase base-36 form
//
// between 1 and 11 characters for any suid within the valid range;
// a negative raw value renders with a leading minus
func (suid Suid) String() string {
	return strconv.FormatInt(int64(suid), 36)
}

// Len - the length of the base-36 form
func (suid Suid) Len() int {
	return len(suid.String())
}

// Cmp - compare two suids for order by raw value
//
// returns -1, 0 or +1
func (suid Suid) Cmp(other Suid) int {
	switch {
	case suid < other:
		return -1
	case suid > other:
		return 1
	default:
		return 0
	}
}

// LooksValid - indicate whether a string looks like a valid suid
//
// a true result only means probably valid: strings of the maximum
// length are range checked on their first character only, so a few
// out-of-range strings are approved. never fails, false positives
// only occur near the top of the range
func LooksValid(s string) bool {
	n := len(s)
	if 0 == n || n > MaxStringLength {
		return false
	}
	if MaxStringLength == n && strings.IndexByte(Alphabet, s[0]) > 2 {
		return false
	}
	for i := 0; i < n; i += 1 {
		if -1 == strings.IndexByte(Alphabet, s[i]) {
			return false
		}
	}
	return true
}
