// SPDX-License-Identifier: ISC
// Copyright (c) 2016-2026 the suid-go authors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package suid

// ToInt64s - convert a slice of suids to their raw values
//
// always allocates a fresh slice; element order is preserved
func ToInt64s(ids []Suid) []int64 {
	results := make([]int64, len(ids))
	for i, id := range ids {
		results[i] = id.Int64()
	}
	return results
}

// ToStrings - convert a slice of suids to their base-36 forms
//
// always allocates a fresh slice; element order is preserved
func ToStrings(ids []Suid) []string {
	results := make([]string, len(ids))
	for i, id := range ids {
		results[i] = id.String()
	}
	return results
}

// FromInt64s - convert a slice of raw values to suids
//
// always allocates a fresh slice; element order is preserved
func FromInt64s(values []int64) []Suid {
	results := make([]Suid, len(values))
	for i, value := range values {
		results[i] = FromInt64(value)
	}
	return results
}

// FromStrings - convert a slice of base-36 strings to suids
//
// the first string that fails to parse aborts the whole conversion;
// its error is returned and no partial result is kept
func FromStrings(values []string) ([]Suid, error) {
	results := make([]Suid, len(values))
	for i, value := range values {
		id, err := FromString(value)
		if nil != err {
			return nil, err
		}
		results[i] = id
	}
	return results, nil
}
