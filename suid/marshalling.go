// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2026 the suid-go authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package suid

import (
	"fmt"
)

// convert a suid into its canonical base-36 text, e.g. for JSON
//
// a suid always crosses serialization boundaries as a string,
// never as a bare number
func (suid Suid) MarshalText() ([]byte, error) {
	return []byte(suid.String()), nil
}

// convert base-36 text into a suid, e.g. from JSON
func (suid *Suid) UnmarshalText(s []byte) error {
	parsed, err := FromString(string(s))
	if nil != err {
		return err
	}
	*suid = parsed
	return nil
}

// show raw value and string form, for debugging (for %#v)
func (suid Suid) GoString() string {
	return fmt.Sprintf("<Suid#%d:%q>", int64(suid), suid.String())
}

// parse a base-36 token for use by the fmt package scan routines
func (suid *Suid) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'a' && c <= 'z' {
			return true
		}
		if c >= 'A' && c <= 'Z' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	parsed, err := FromString(string(token))
	if nil != err {
		return err
	}
	*suid = parsed
	return nil
}
