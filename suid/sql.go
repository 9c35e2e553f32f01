// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2026 the suid-go authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package suid

import (
	"database/sql/driver"

	"github.com/Download/suid-go/fault"
)

// convert a suid to its database column form
//
// the storage boundary is the one place where the raw 64-bit
// integer, not the base-36 string, is the exchange form
func (suid Suid) Value() (driver.Value, error) {
	return int64(suid), nil
}

// NullSuid - a suid that may be SQL NULL
//
// implements the sql.Scanner and driver.Valuer interfaces in the
// manner of the database/sql Null types
type NullSuid struct {
	Suid  Suid
	Valid bool // false when the column is NULL
}

// read a suid from its database column value
//
// only 64-bit integer columns are supported
func (n *NullSuid) Scan(value interface{}) error {
	if nil == value {
		n.Suid = 0
		n.Valid = false
		return nil
	}
	v, ok := value.(int64)
	if !ok {
		return fault.ErrCannotScanSuid
	}
	n.Suid = Suid(v)
	n.Valid = true
	return nil
}

// convert back to the database column form, NULL when not valid
func (n NullSuid) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return int64(n.Suid), nil
}
